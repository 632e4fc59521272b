package usecase

import (
	"slices"
	"sync"
	"time"

	"travel-backoffice/internal/assistant"
	"travel-backoffice/pkg/chatbackend"
	"travel-backoffice/pkg/taskstack"
)

// session is the mutable state behind assistant.Session. All fields are guarded by mu.
type session struct {
	mu        sync.Mutex
	id        string
	ownerID   string
	messages  []chatbackend.Message
	stack     []taskstack.StackItem
	history   []taskstack.StackItem
	options   []chatbackend.TravelOption
	loading   bool
	active    bool
	draft     string
	updatedAt time.Time
}

// busy reports whether a new submission must be refused.
func (s *session) busy() bool {
	return s.loading || !taskstack.Settled(s.stack)
}

// merge folds a backend stack into the session and settles it.
func (s *session) merge(incoming []taskstack.StackItem) {
	s.stack = taskstack.Merge(s.stack, incoming)
	s.settle()
}

// settle moves a fully terminal stack into history and ends the operation.
func (s *session) settle() {
	if !taskstack.Settled(s.stack) {
		return
	}
	s.history = append(s.history, s.stack...)
	s.stack = nil
	s.active = false
}

func (s *session) snapshot() assistant.Session {
	return assistant.Session{
		ID:        s.id,
		OwnerID:   s.ownerID,
		Messages:  slices.Clone(s.messages),
		Stack:     slices.Clone(s.stack),
		History:   slices.Clone(s.history),
		Options:   slices.Clone(s.options),
		Loading:   s.loading,
		Busy:      s.busy(),
		Active:    s.active,
		Draft:     s.draft,
		UpdatedAt: s.updatedAt,
	}
}
