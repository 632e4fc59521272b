package usecase

import (
	"context"
	"fmt"
	"strings"

	"travel-backoffice/internal/assistant"
	"travel-backoffice/internal/model"
	"travel-backoffice/pkg/chatbackend"
)

// Start opens a new session owned by the calling operator.
func (uc *implUseCase) Start(ctx context.Context, sc model.Scope) (assistant.StartOutput, error) {
	s := &session{
		id:        uc.newID(),
		ownerID:   sc.OperatorID,
		updatedAt: uc.now(),
	}
	uc.sessions.Add(s.id, s)
	uc.l.Debugf(ctx, "assistant.usecase.Start: session %s for operator %s", s.id, sc.OperatorID)
	return assistant.StartOutput{SessionID: s.id}, nil
}

// Session returns the current state of one of the operator's sessions.
func (uc *implUseCase) Session(ctx context.Context, sc model.Scope, id string) (assistant.Session, error) {
	s, err := uc.get(sc, id)
	if err != nil {
		return assistant.Session{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(), nil
}

// Submit sends an operator message to the backend.
// While the previous request is unresolved the text is parked as the draft and ErrBusy is returned.
func (uc *implUseCase) Submit(ctx context.Context, sc model.Scope, in assistant.SubmitInput) (assistant.Session, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return assistant.Session{}, assistant.ErrEmptyMessage
	}

	s, err := uc.get(sc, in.SessionID)
	if err != nil {
		return assistant.Session{}, err
	}

	s.mu.Lock()
	if s.busy() {
		s.draft = in.Text
		s.updatedAt = uc.now()
		state := s.snapshot()
		s.mu.Unlock()
		uc.publish(state)
		return state, assistant.ErrBusy
	}

	history := s.messages
	s.messages = append(s.messages, chatbackend.Message{Role: chatbackend.RoleUser, Content: text, SentAt: uc.now()})
	s.draft = ""
	s.loading = true
	s.active = true
	s.updatedAt = uc.now()
	req := chatbackend.SendRequest{SessionID: s.id, Message: text, History: history[:len(history):len(history)]}
	state := s.snapshot()
	s.mu.Unlock()
	uc.publish(state)

	reply, sendErr := uc.backend.Send(ctx, req)

	s.mu.Lock()
	s.loading = false
	s.updatedAt = uc.now()
	if sendErr != nil {
		// The message never reached the assistant: hand it back as the draft.
		s.messages = s.messages[:len(s.messages)-1]
		s.draft = in.Text
		if len(s.stack) == 0 {
			s.active = false
		}
		state = s.snapshot()
		s.mu.Unlock()
		uc.publish(state)
		uc.l.Warnf(ctx, "assistant.usecase.Submit.backend.Send: %v", sendErr)
		return state, fmt.Errorf("%w: %v", assistant.ErrBackendUnavailable, sendErr)
	}

	if reply.Message != "" {
		s.messages = append(s.messages, chatbackend.Message{Role: chatbackend.RoleAssistant, Content: reply.Message, SentAt: uc.now()})
	}
	if len(reply.Options) > 0 {
		s.options = reply.Options
	}
	s.merge(reply.Stack)
	state = s.snapshot()
	s.mu.Unlock()

	uc.sessions.Add(s.id, s)
	uc.publish(state)
	return state, nil
}

// Refresh polls the backend for stack progress. A session without pending stack is returned as is.
func (uc *implUseCase) Refresh(ctx context.Context, sc model.Scope, id string) (assistant.Session, error) {
	s, err := uc.get(sc, id)
	if err != nil {
		return assistant.Session{}, err
	}

	s.mu.Lock()
	if len(s.stack) == 0 {
		state := s.snapshot()
		s.mu.Unlock()
		return state, nil
	}
	s.mu.Unlock()

	reply, err := uc.backend.Poll(ctx, id)
	if err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.Refresh.backend.Poll: %v", err)
		return assistant.Session{}, fmt.Errorf("%w: %v", assistant.ErrBackendUnavailable, err)
	}

	s.mu.Lock()
	s.merge(reply.Stack)
	s.updatedAt = uc.now()
	state := s.snapshot()
	s.mu.Unlock()

	uc.sessions.Add(s.id, s)
	uc.publish(state)
	return state, nil
}

// Clear drops the stack without recording it and ends the operation.
func (uc *implUseCase) Clear(ctx context.Context, sc model.Scope, id string) (assistant.Session, error) {
	s, err := uc.get(sc, id)
	if err != nil {
		return assistant.Session{}, err
	}

	s.mu.Lock()
	s.stack = nil
	s.active = false
	s.updatedAt = uc.now()
	state := s.snapshot()
	s.mu.Unlock()

	uc.publish(state)
	return state, nil
}

// get loads a session and refreshes its expiry. Sessions of other operators are reported as missing.
func (uc *implUseCase) get(sc model.Scope, id string) (*session, error) {
	s, ok := uc.sessions.Get(id)
	if !ok || s.ownerID != sc.OperatorID {
		return nil, assistant.ErrSessionNotFound
	}
	uc.sessions.Add(id, s)
	return s, nil
}

func (uc *implUseCase) publish(state assistant.Session) {
	if uc.notifier != nil {
		uc.notifier.Publish(state)
	}
}
