package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-backoffice/internal/assistant"
	"travel-backoffice/internal/model"
	"travel-backoffice/pkg/chatbackend"
	"travel-backoffice/pkg/log"
	"travel-backoffice/pkg/taskstack"
)

type fakeBackend struct {
	mu      sync.Mutex
	sent    []chatbackend.SendRequest
	reply   chatbackend.Reply
	poll    chatbackend.Reply
	err     error
	polls   int
	release chan struct{}
	entered chan struct{}
}

func (f *fakeBackend) Send(_ context.Context, req chatbackend.SendRequest) (chatbackend.Reply, error) {
	f.mu.Lock()
	f.sent = append(f.sent, req)
	f.mu.Unlock()
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	return f.reply, f.err
}

func (f *fakeBackend) Poll(context.Context, string) (chatbackend.Reply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.polls++
	return f.poll, f.err
}

type recorder struct {
	mu     sync.Mutex
	states []assistant.Session
}

func (r *recorder) Publish(state assistant.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, state)
}

func item(id string, status taskstack.Status) taskstack.StackItem {
	return taskstack.StackItem{ID: id, Status: status, TaskName: "search_hotels"}
}

var (
	alice = model.Scope{OperatorID: "op-alice", Username: "alice"}
	bob   = model.Scope{OperatorID: "op-bob", Username: "bob"}
)

func newTestUseCase(b Backend, n assistant.Notifier) *implUseCase {
	uc := New(b, n, time.Hour, 10, log.NewNop())
	uc.now = func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) }
	return uc
}

func start(t *testing.T, uc *implUseCase, sc model.Scope) string {
	t.Helper()
	out, err := uc.Start(context.Background(), sc)
	require.NoError(t, err)
	require.NotEmpty(t, out.SessionID)
	return out.SessionID
}

func TestSessionOwnership(t *testing.T) {
	uc := newTestUseCase(&fakeBackend{}, nil)
	id := start(t, uc, alice)

	state, err := uc.Session(context.Background(), alice, id)
	require.NoError(t, err)
	assert.Equal(t, id, state.ID)
	assert.False(t, state.Busy)

	_, err = uc.Session(context.Background(), bob, id)
	assert.ErrorIs(t, err, assistant.ErrSessionNotFound)

	_, err = uc.Session(context.Background(), alice, "missing")
	assert.ErrorIs(t, err, assistant.ErrSessionNotFound)
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("empty message", func(t *testing.T) {
		uc := newTestUseCase(&fakeBackend{}, nil)
		id := start(t, uc, alice)
		_, err := uc.Submit(ctx, alice, assistant.SubmitInput{SessionID: id, Text: "   "})
		assert.ErrorIs(t, err, assistant.ErrEmptyMessage)
	})

	t.Run("pending stack keeps session busy", func(t *testing.T) {
		b := &fakeBackend{reply: chatbackend.Reply{
			Message: "Searching hotels",
			Stack:   []taskstack.StackItem{item("t1", taskstack.StatusLoading)},
			Options: []chatbackend.TravelOption{{Type: chatbackend.OptionHotel, Hotel: &chatbackend.HotelOption{Name: "Ritz"}}},
		}}
		rec := &recorder{}
		uc := newTestUseCase(b, rec)
		id := start(t, uc, alice)

		state, err := uc.Submit(ctx, alice, assistant.SubmitInput{SessionID: id, Text: "Hotels in Rome"})
		require.NoError(t, err)
		assert.True(t, state.Busy)
		assert.True(t, state.Active)
		assert.False(t, state.Loading)
		require.Len(t, state.Messages, 2)
		assert.Equal(t, chatbackend.RoleUser, state.Messages[0].Role)
		assert.Equal(t, "Searching hotels", state.Messages[1].Content)
		assert.Len(t, state.Options, 1)

		state, err = uc.Submit(ctx, alice, assistant.SubmitInput{SessionID: id, Text: "And flights?"})
		assert.ErrorIs(t, err, assistant.ErrBusy)
		assert.Equal(t, "And flights?", state.Draft)
		assert.Len(t, state.Messages, 2)
		assert.Len(t, b.sent, 1)

		// loading, reply and busy rejection were all pushed
		assert.Len(t, rec.states, 3)
		assert.True(t, rec.states[0].Loading)
	})

	t.Run("settled reply moves stack to history", func(t *testing.T) {
		b := &fakeBackend{reply: chatbackend.Reply{
			Stack: []taskstack.StackItem{item("t1", taskstack.StatusSuccess), item("t2", taskstack.StatusError)},
		}}
		uc := newTestUseCase(b, nil)
		id := start(t, uc, alice)

		state, err := uc.Submit(ctx, alice, assistant.SubmitInput{SessionID: id, Text: "Book it"})
		require.NoError(t, err)
		assert.Empty(t, state.Stack)
		assert.Len(t, state.History, 2)
		assert.False(t, state.Busy)
		assert.False(t, state.Active)

		b.reply = chatbackend.Reply{Message: "Done"}
		state, err = uc.Submit(ctx, alice, assistant.SubmitInput{SessionID: id, Text: "Thanks"})
		require.NoError(t, err)
		require.Len(t, b.sent, 2)
		assert.Len(t, b.sent[1].History, 1, "history excludes the message being sent")
		assert.Len(t, state.Messages, 3)
	})

	t.Run("backend failure restores draft", func(t *testing.T) {
		b := &fakeBackend{err: errors.New("connection refused")}
		uc := newTestUseCase(b, nil)
		id := start(t, uc, alice)

		state, err := uc.Submit(ctx, alice, assistant.SubmitInput{SessionID: id, Text: "Hotels in Rome"})
		assert.ErrorIs(t, err, assistant.ErrBackendUnavailable)
		assert.Equal(t, "Hotels in Rome", state.Draft)
		assert.Empty(t, state.Messages)
		assert.False(t, state.Loading)
		assert.False(t, state.Busy)
		assert.False(t, state.Active)
	})

	t.Run("in-flight call keeps session busy", func(t *testing.T) {
		b := &fakeBackend{release: make(chan struct{}), entered: make(chan struct{})}
		uc := newTestUseCase(b, nil)
		id := start(t, uc, alice)

		done := make(chan error, 1)
		go func() {
			_, err := uc.Submit(ctx, alice, assistant.SubmitInput{SessionID: id, Text: "first"})
			done <- err
		}()
		<-b.entered

		state, err := uc.Submit(ctx, alice, assistant.SubmitInput{SessionID: id, Text: "second"})
		assert.ErrorIs(t, err, assistant.ErrBusy)
		assert.True(t, state.Loading)
		assert.Equal(t, "second", state.Draft)

		close(b.release)
		require.NoError(t, <-done)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	b := &fakeBackend{reply: chatbackend.Reply{
		Stack: []taskstack.StackItem{item("t1", taskstack.StatusLoading), item("t2", taskstack.StatusQueued)},
	}}
	uc := newTestUseCase(b, nil)
	id := start(t, uc, alice)

	_, err := uc.Refresh(ctx, alice, id)
	require.NoError(t, err)
	assert.Zero(t, b.polls, "empty stack is not polled")

	_, err = uc.Submit(ctx, alice, assistant.SubmitInput{SessionID: id, Text: "Hotels in Rome"})
	require.NoError(t, err)

	b.poll = chatbackend.Reply{Stack: []taskstack.StackItem{item("t2", taskstack.StatusSuccess)}}
	state, err := uc.Refresh(ctx, alice, id)
	require.NoError(t, err)
	require.Len(t, state.Stack, 2)
	assert.Equal(t, "t1", state.Stack[0].ID)
	assert.Equal(t, taskstack.StatusSuccess, state.Stack[1].Status)
	assert.True(t, state.Busy)

	b.poll = chatbackend.Reply{Stack: []taskstack.StackItem{item("t1", taskstack.StatusSuccess)}}
	state, err = uc.Refresh(ctx, alice, id)
	require.NoError(t, err)
	assert.Empty(t, state.Stack)
	assert.Len(t, state.History, 2)
	assert.False(t, state.Busy)

	_, err = uc.Refresh(ctx, bob, id)
	assert.ErrorIs(t, err, assistant.ErrSessionNotFound)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	b := &fakeBackend{reply: chatbackend.Reply{Stack: []taskstack.StackItem{item("t1", taskstack.StatusLoading)}}}
	uc := newTestUseCase(b, nil)
	id := start(t, uc, alice)

	_, err := uc.Submit(ctx, alice, assistant.SubmitInput{SessionID: id, Text: "Hotels in Rome"})
	require.NoError(t, err)

	state, err := uc.Clear(ctx, alice, id)
	require.NoError(t, err)
	assert.Empty(t, state.Stack)
	assert.Empty(t, state.History)
	assert.False(t, state.Busy)
	assert.False(t, state.Active)
}
