package operator

import "time"

// Operator is a back-office user.
type Operator struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

type RegisterInput struct {
	Username string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

type RegisterOutput struct {
	Operator Operator
}

type LoginOutput struct {
	Token    string
	Operator Operator
}
