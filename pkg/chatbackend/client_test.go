package chatbackend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-backoffice/pkg/chatbackend"
	"travel-backoffice/pkg/taskstack"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *chatbackend.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	c, err := chatbackend.New(chatbackend.Config{URL: ts.URL + "/", APIKey: "key", Timeout: time.Second})
	require.NoError(t, err)
	return c
}

func TestSend(t *testing.T) {
	var got chatbackend.SendRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Write([]byte(`{
			"message": "Here are some hotels",
			"stack": [
				{"id": "t1", "status": "loading", "task_name": "search_hotels", "assistant_name": "hotels", "args": {"city": "Rome"}},
				{"id": "", "status": "queued"},
				{"id": "t2", "status": "paused"}
			],
			"options": [
				{"type": "hotel", "hotel": {"name": "Ritz", "price_per_night": "320.00", "currency": "EUR"}},
				{"type": "flight"},
				{"type": "train", "hotel": {"name": "x"}},
				{"type": "car_rental", "car_rental": {"company": "Hertz", "price": "45"}}
			]
		}`))
	})

	reply, err := c.Send(context.Background(), chatbackend.SendRequest{
		SessionID: "s1",
		Message:   "Hotels in Rome",
		History:   []chatbackend.Message{{Role: chatbackend.RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "s1", got.SessionID)
	assert.Len(t, got.History, 1)

	assert.Equal(t, "Here are some hotels", reply.Message)
	require.Len(t, reply.Stack, 1, "items without id or with unknown status are dropped")
	assert.Equal(t, taskstack.StatusLoading, reply.Stack[0].Status)
	assert.JSONEq(t, `{"city": "Rome"}`, string(reply.Stack[0].Args))

	require.Len(t, reply.Options, 2)
	assert.Equal(t, "Ritz", reply.Options[0].Hotel.Name)
	assert.Equal(t, chatbackend.OptionCarRental, reply.Options[1].Type)
}

func TestPoll(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/chat/s%2F1/stack", r.URL.EscapedPath())
		w.Write([]byte(`{"stack": [{"id": "t1", "status": "success", "resolution": "booked"}]}`))
	})

	reply, err := c.Poll(context.Background(), "s/1")
	require.NoError(t, err)
	require.Len(t, reply.Stack, 1)
	require.NotNil(t, reply.Stack[0].Resolution)
	assert.Equal(t, "booked", *reply.Stack[0].Resolution)
	assert.Empty(t, reply.Options)
}

func TestUnavailable(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
		})
		_, err := c.Send(context.Background(), chatbackend.SendRequest{Message: "hi"})
		assert.ErrorIs(t, err, chatbackend.ErrUnavailable)
		assert.Contains(t, err.Error(), "overloaded")
	})

	t.Run("garbage body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>`))
		})
		_, err := c.Poll(context.Background(), "s1")
		assert.ErrorIs(t, err, chatbackend.ErrUnavailable)
	})

	t.Run("transport", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		ts.Close()
		c, err := chatbackend.New(chatbackend.Config{URL: ts.URL})
		require.NoError(t, err)
		_, err = c.Send(context.Background(), chatbackend.SendRequest{Message: "hi"})
		assert.ErrorIs(t, err, chatbackend.ErrUnavailable)
	})

	t.Run("missing url", func(t *testing.T) {
		_, err := chatbackend.New(chatbackend.Config{})
		assert.Error(t, err)
	})
}
