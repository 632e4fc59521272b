package http

import (
	"time"

	"travel-backoffice/internal/assistant"
	"travel-backoffice/pkg/chatbackend"
	"travel-backoffice/pkg/response"
	"travel-backoffice/pkg/taskstack"
)

// --- Request DTOs ---

type submitReq struct {
	Text string `json:"text" binding:"required"`
}

func (r submitReq) toInput(sessionID string) assistant.SubmitInput {
	return assistant.SubmitInput{SessionID: sessionID, Text: r.Text}
}

// --- Response DTOs ---

type startResp struct {
	SessionID string `json:"session_id"`
}

type messageResp struct {
	Role    chatbackend.Role  `json:"role"`
	Content string            `json:"content"`
	SentAt  response.DateTime `json:"sent_at"`
}

// sessionResp is shared by the REST endpoints and the websocket stream.
type sessionResp struct {
	ID        string                     `json:"id"`
	Messages  []messageResp              `json:"messages"`
	Stack     []taskstack.StackItem      `json:"stack"`
	History   []taskstack.StackItem      `json:"history"`
	Options   []chatbackend.TravelOption `json:"options"`
	Pending   int                        `json:"pending"`
	Busy      bool                       `json:"busy"`
	Loading   bool                       `json:"loading"`
	Active    bool                       `json:"active"`
	Draft     string                     `json:"draft"`
	UpdatedAt response.DateTime          `json:"updated_at"`
}

func newSessionResp(s assistant.Session) sessionResp {
	messages := make([]messageResp, len(s.Messages))
	for i, m := range s.Messages {
		messages[i] = messageResp{Role: m.Role, Content: m.Content, SentAt: response.DateTime(m.SentAt)}
	}
	return sessionResp{
		ID:        s.ID,
		Messages:  messages,
		Stack:     nonNil(s.Stack),
		History:   nonNil(s.History),
		Options:   nonNil(s.Options),
		Pending:   taskstack.Pending(s.Stack),
		Busy:      s.Busy,
		Loading:   s.Loading,
		Active:    s.Active,
		Draft:     s.Draft,
		UpdatedAt: response.DateTime(s.UpdatedAt),
	}
}

// streamEvent is the frame pushed to websocket subscribers.
type streamEvent struct {
	Type   string      `json:"type"`
	SentAt time.Time   `json:"sent_at"`
	Data   sessionResp `json:"data"`
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
