// Package taskstack reconciles the stack of assistant actions reported by the chat backend.
package taskstack

import "encoding/json"

// Status is the lifecycle state of a StackItem.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusQueued, StatusLoading, StatusSuccess, StatusError:
		return true
	}
	return false
}

// Terminal reports whether the item has finished, successfully or not.
func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusError
}

// StackItem is one assistant action as last reported by the backend.
// Args is carried through untouched.
type StackItem struct {
	ID            string          `json:"id"`
	Status        Status          `json:"status"`
	TaskName      string          `json:"task_name"`
	AssistantName string          `json:"assistant_name"`
	Args          json.RawMessage `json:"args,omitempty"`
	Resolution    *string         `json:"resolution,omitempty"`
}
