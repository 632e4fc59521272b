package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"travel-backoffice/internal/assistant"
	"travel-backoffice/pkg/chatbackend"
	"travel-backoffice/pkg/log"
)

// Backend is the remote assistant. *chatbackend.Client satisfies it.
type Backend interface {
	Send(ctx context.Context, req chatbackend.SendRequest) (chatbackend.Reply, error)
	Poll(ctx context.Context, sessionID string) (chatbackend.Reply, error)
}

// implUseCase is the private implementation of assistant.UseCase.
type implUseCase struct {
	backend  Backend
	notifier assistant.Notifier
	sessions *expirable.LRU[string, *session]
	l        log.Logger
	newID    func() string
	now      func() time.Time
}

// New creates a new assistant UseCase. Sessions idle for longer than sessionTTL are dropped,
// as is the least recently used one once maxSessions is reached. notifier may be nil.
func New(
	backend Backend,
	notifier assistant.Notifier,
	sessionTTL time.Duration,
	maxSessions int,
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		backend:  backend,
		notifier: notifier,
		sessions: expirable.NewLRU[string, *session](maxSessions, nil, sessionTTL),
		l:        l,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}
