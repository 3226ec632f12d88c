package model

import (
	"bytes"
	"time"

	"github.com/google/uuid"
)

type ConnectionStatus string

const (
	StatusPending  ConnectionStatus = "pending"
	StatusAccepted ConnectionStatus = "accepted"
	StatusRejected ConnectionStatus = "rejected"
	StatusBlocked  ConnectionStatus = "blocked"
)

type Connection struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// The pair is always persisted in canonical sorted order so a lookup
	// never depends on who asked first.
	// Unique index in migration:
	// CREATE UNIQUE INDEX idx_connection_pair ON connections(user_low, user_high);
	UserLow  uuid.UUID `bun:",notnull,type:uuid"`
	UserHigh uuid.UUID `bun:",notnull,type:uuid"`

	Status ConnectionStatus `bun:",notnull,default:'pending'"`

	// Directional actors of the original request; the pair above is
	// unordered, these record who may accept/reject.
	RequestedBy uuid.UUID `bun:",notnull,type:uuid"`
	RequestedTo uuid.UUID `bun:",notnull,type:uuid"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// CanonicalPair returns the two ids in stored order.
func CanonicalPair(a, b uuid.UUID) (low, high uuid.UUID) {
	if bytes.Compare(a[:], b[:]) <= 0 {
		return a, b
	}
	return b, a
}

func NewConnection(requester, target uuid.UUID) *Connection {
	low, high := CanonicalPair(requester, target)
	return &Connection{
		UserLow:     low,
		UserHigh:    high,
		Status:      StatusPending,
		RequestedBy: requester,
		RequestedTo: target,
	}
}

func (c *Connection) HasParticipant(id uuid.UUID) bool {
	return c.UserLow == id || c.UserHigh == id
}

// OtherParticipant assumes id is a participant.
func (c *Connection) OtherParticipant(id uuid.UUID) uuid.UUID {
	if c.UserLow == id {
		return c.UserHigh
	}
	return c.UserLow
}
