package ws

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rahuljangu01/NEXUS/internal/delivery"
)

const writeWait = 10 * time.Second

// session adapts one websocket connection to delivery.Session. The
// write mutex keeps concurrent pushes from interleaving frames and
// preserves per-session event order.
type session struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex
}

func newSession(id string, conn *websocket.Conn) *session {
	return &session{id: id, conn: conn}
}

func (s *session) ID() string { return s.id }

func (s *session) Send(event delivery.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return s.conn.WriteJSON(event)
}
