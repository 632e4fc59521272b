package assistant

import (
	"time"

	"travel-backoffice/pkg/chatbackend"
	"travel-backoffice/pkg/taskstack"
)

// Session is a point-in-time copy of one assistant conversation.
type Session struct {
	ID        string
	OwnerID   string
	Messages  []chatbackend.Message
	Stack     []taskstack.StackItem
	History   []taskstack.StackItem
	Options   []chatbackend.TravelOption
	Loading   bool
	Busy      bool
	Active    bool
	Draft     string
	UpdatedAt time.Time
}

// StartOutput is the result of opening a session.
type StartOutput struct {
	SessionID string
}

// SubmitInput carries one operator message.
type SubmitInput struct {
	SessionID string
	Text      string
}
