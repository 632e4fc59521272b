// Package stay computes month-bounded night and revenue figures per hotel.
//
// Inputs are taken as received from storage. Records with unparseable dates,
// an empty hotel or a bad total are dropped rather than reported.
package stay

// CompletionComplete is the only completion status that counts towards any figure.
const CompletionComplete = "complete"

// Booking is the subset of a booking record the aggregations read.
type Booking struct {
	CheckIn          string
	CheckOut         string
	Hotel            string
	Total            string
	CompletionStatus string
}

// HotelNights is the number of nights spent at one hotel inside a month.
type HotelNights struct {
	Hotel  string `json:"hotel"`
	Nights int    `json:"nights"`
}

// HotelTotal is the amount billed at one hotel for bookings checking in during a month.
type HotelTotal struct {
	Hotel string  `json:"hotel"`
	Total float64 `json:"total"`
}
