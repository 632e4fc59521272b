package repository

// BookingFields are the values written on create and upsert.
type BookingFields struct {
	Reference        string
	CustomerName     string
	CustomerEmail    string
	Hotel            string
	CheckIn          string
	CheckOut         string
	Total            string
	Currency         string
	CompletionStatus string
}

// CreateBookingOptions holds the values for a new booking.
// Returns ErrDuplicate when the reference is taken.
type CreateBookingOptions struct {
	ID string
	BookingFields
}

// UpsertBookingOptions writes a booking keyed by Reference. ID is used only on insert.
type UpsertBookingOptions struct {
	ID string
	BookingFields
}

// GetOneBookingOptions holds filter parameters for fetching a single Booking.
// All non-empty fields are applied as AND conditions.
type GetOneBookingOptions struct {
	ID        string
	Reference string
}

// ListBookingsOptions holds filter and pagination parameters for listing Bookings.
// CheckInPrefix matches the leading characters of the stored check-in, e.g. "2024-03".
// Limit <= 0 returns every match.
type ListBookingsOptions struct {
	Status        string
	Hotel         string
	CheckInPrefix string
	Limit         int
	Offset        int
}
