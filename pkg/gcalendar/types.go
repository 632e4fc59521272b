package gcalendar

import "time"

// DefaultTokenPath is where the desktop OAuth flow stores and reads its token.
const DefaultTokenPath = "token.json"

// StayEvent describes a hotel stay mirrored as an all-day calendar event.
// CheckOut is exclusive, matching the calendar's own end-date semantics.
type StayEvent struct {
	EventID   string // set to update an existing event
	Reference string
	Hotel     string
	Customer  string
	CheckIn   time.Time
	CheckOut  time.Time
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
}
