package repository

// CreateOperatorOptions holds the values for a new operator.
type CreateOperatorOptions struct {
	ID           string
	Username     string
	PasswordHash string
}

// GetOneOperatorOptions holds filter parameters for fetching a single Operator.
// All non-empty fields are applied as AND conditions.
type GetOneOperatorOptions struct {
	ID       string
	Username string
}
