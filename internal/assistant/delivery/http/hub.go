package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"travel-backoffice/internal/assistant"
	"travel-backoffice/pkg/log"
)

const (
	eventSession = "session"
	writeWait    = 10 * time.Second
)

// Hub fans session state out to websocket subscribers, keyed by session id.
// It implements assistant.Notifier.
type Hub struct {
	l        log.Logger
	upgrader websocket.Upgrader
	mu       sync.RWMutex
	subs     map[string]map[string]*subscriber
}

type subscriber struct {
	id   string
	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *subscriber) send(ev streamEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(ev)
}

// NewHub creates an empty Hub.
func NewHub(l log.Logger) *Hub {
	return &Hub{
		l: l,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		subs: map[string]map[string]*subscriber{},
	}
}

// Publish pushes state to every subscriber of its session.
func (h *Hub) Publish(state assistant.Session) {
	h.mu.RLock()
	subs := make([]*subscriber, 0, len(h.subs[state.ID]))
	for _, s := range h.subs[state.ID] {
		subs = append(subs, s)
	}
	h.mu.RUnlock()
	if len(subs) == 0 {
		return
	}

	ev := streamEvent{Type: eventSession, SentAt: time.Now().UTC(), Data: newSessionResp(state)}
	for _, s := range subs {
		if err := s.send(ev); err != nil {
			h.l.Debugf(context.Background(), "assistant.Hub.Publish: subscriber %s: %v", s.id, err)
			go h.remove(state.ID, s)
		}
	}
}

// Subscribers returns the number of open streams for a session.
func (h *Hub) Subscribers(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[sessionID])
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	all := h.subs
	h.subs = map[string]map[string]*subscriber{}
	h.mu.Unlock()

	for _, subs := range all {
		for _, s := range subs {
			_ = s.conn.Close()
		}
	}
}

// serve upgrades the request, sends the initial state and keeps the subscriber until the peer leaves.
func (h *Hub) serve(w http.ResponseWriter, r *http.Request, initial assistant.Session) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	s := &subscriber{id: uuid.NewString(), conn: conn}
	h.mu.Lock()
	if h.subs[initial.ID] == nil {
		h.subs[initial.ID] = map[string]*subscriber{}
	}
	h.subs[initial.ID][s.id] = s
	h.mu.Unlock()

	if err := s.send(streamEvent{Type: eventSession, SentAt: time.Now().UTC(), Data: newSessionResp(initial)}); err != nil {
		h.remove(initial.ID, s)
		return err
	}

	go h.readLoop(initial.ID, s)
	return nil
}

// readLoop discards client frames and unregisters the subscriber once the connection drops.
func (h *Hub) readLoop(sessionID string, s *subscriber) {
	defer h.remove(sessionID, s)
	for {
		if _, _, err := s.conn.NextReader(); err != nil {
			return
		}
	}
}

func (h *Hub) remove(sessionID string, s *subscriber) {
	_ = s.conn.Close()
	h.mu.Lock()
	if subs, ok := h.subs[sessionID]; ok {
		delete(subs, s.id)
		if len(subs) == 0 {
			delete(h.subs, sessionID)
		}
	}
	h.mu.Unlock()
}
