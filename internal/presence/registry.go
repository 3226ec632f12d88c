package presence

import (
	"sync"

	"github.com/google/uuid"

	"github.com/rahuljangu01/NEXUS/internal/delivery"
)

// Registry is the process-local map of user -> live sessions. It is
// rebuilt from zero on restart; clients re-register on reconnect.
// All mutation goes through Register/Unregister/Drop.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]map[string]delivery.Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[uuid.UUID]map[string]delivery.Session)}
}

// Register adds a session handle to the user's set and reports whether
// the user just came online (set was empty before).
func (r *Registry) Register(userID uuid.UUID, s delivery.Session) (wentOnline bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.sessions[userID]
	if !ok {
		set = make(map[string]delivery.Session)
		r.sessions[userID] = set
	}
	wentOnline = len(set) == 0
	set[s.ID()] = s
	return wentOnline
}

// Unregister removes a session handle and reports whether the user just
// went offline (set became empty). Removing an unknown handle is a no-op.
func (r *Registry) Unregister(userID uuid.UUID, sessionID string) (wentOffline bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.sessions[userID]
	if !ok {
		return false
	}
	if _, ok := set[sessionID]; !ok {
		return false
	}
	delete(set, sessionID)
	if len(set) == 0 {
		delete(r.sessions, userID)
		return true
	}
	return false
}

func (r *Registry) SessionsFor(userID uuid.UUID) []delivery.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.sessions[userID]
	if len(set) == 0 {
		return nil
	}
	out := make([]delivery.Session, 0, len(set))
	for _, s := range set {
		out = append(out, s)
	}
	return out
}

func (r *Registry) IsOnline(userID uuid.UUID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions[userID]) > 0
}

// Reset clears every entry. Called once at shutdown.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = make(map[uuid.UUID]map[string]delivery.Session)
}
