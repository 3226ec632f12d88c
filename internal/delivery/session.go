package delivery

import "github.com/google/uuid"

// Session is one live transport connection for a user. A user may hold
// several at once (multiple devices/tabs). Send must be safe for
// concurrent use and must preserve the order of calls made from a
// single goroutine.
type Session interface {
	ID() string
	Send(event Event) error
}

// SessionSource is the read side of the presence registry, plus the
// hook the router uses to drop a handle whose Send failed.
type SessionSource interface {
	SessionsFor(userID uuid.UUID) []Session
	Drop(userID uuid.UUID, sessionID string)
}

// Pusher is the capability usecases depend on. Delivery is best-effort:
// Push never returns an error to the command issuer. PushExcept skips
// one session handle, for echoes that must not bounce back to the
// originating device.
type Pusher interface {
	Push(userID uuid.UUID, event Event)
	PushExcept(userID uuid.UUID, exceptSessionID string, event Event)
}
