package delivery

import (
	"github.com/google/uuid"

	"github.com/rahuljangu01/NEXUS/pkg/logger"
)

// Router fans an event out to every live session of the target user.
// Users with no live session simply miss the event; persisted entities
// stay retrievable by a later fetch.
type Router struct {
	sessions SessionSource
	logger   logger.Logger
}

func NewRouter(sessions SessionSource, logger logger.Logger) *Router {
	return &Router{sessions: sessions, logger: logger}
}

func (r *Router) Push(userID uuid.UUID, event Event) {
	r.PushExcept(userID, "", event)
}

func (r *Router) PushExcept(userID uuid.UUID, exceptSessionID string, event Event) {
	for _, s := range r.sessions.SessionsFor(userID) {
		if s.ID() == exceptSessionID {
			continue
		}
		if err := s.Send(event); err != nil {
			// Dead handle: prune it and keep delivering to the rest.
			r.logger.Warn("dropping dead session", "user_id", userID, "session_id", s.ID(), "event", event.Type, "err", err)
			r.sessions.Drop(userID, s.ID())
		}
	}
}
