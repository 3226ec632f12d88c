package ws

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rahuljangu01/NEXUS/internal/presence"
	"github.com/rahuljangu01/NEXUS/pkg/logger"
)

// Handler upgrades an authenticated request to a live session and keeps
// it registered with the presence service for its lifetime. The wire
// format of outbound events is JSON; inbound commands go through the
// REST surface, the socket only has to stay open.
type Handler struct {
	presence *presence.Service
	upgrader websocket.Upgrader
	logger   logger.Logger
}

func NewHandler(presence *presence.Service, logger logger.Logger) *Handler {
	return &Handler{
		presence: presence,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Identity is verified upstream; the gateway forwards it here.
	userID, err := uuid.Parse(r.Header.Get("X-User-ID"))
	if err != nil {
		http.Error(w, "missing or invalid user identity", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "user_id", userID, "err", err)
		return
	}

	s := newSession(uuid.NewString(), conn)
	h.presence.Connect(context.Background(), userID, s)

	defer func() {
		// The request context dies with the hijacked connection; the
		// disconnect bookkeeping must still run.
		h.presence.Disconnect(context.Background(), userID, s.ID())
		conn.Close()
	}()

	// Read loop exists to notice the close; clients do not send
	// commands over the socket.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
