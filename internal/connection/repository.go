package connection

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rahuljangu01/NEXUS/internal/connection/model"
)

type ConnectionRepository interface {
	// Create persists a new record with the pair in canonical order.
	// Returns ErrDuplicatePair if any record for the pair already exists,
	// whatever its status or original direction.
	Create(ctx context.Context, conn *model.Connection) error

	GetByID(ctx context.Context, id uuid.UUID) (*model.Connection, error)

	// Find looks the pair up direction-independently. Returns (nil, nil)
	// when no record exists.
	Find(ctx context.Context, a, b uuid.UUID) (*model.Connection, error)

	// UpdateStatus applies from -> to as one atomic conditional update.
	// Returns ErrStaleStatus when the stored status no longer matches
	// from, so the loser of a race observes the conflict instead of
	// clobbering state.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.ConnectionStatus) error

	// Delete removes the record only while its status still matches
	// expect. Returns ErrStaleStatus otherwise.
	Delete(ctx context.Context, id uuid.UUID, expect model.ConnectionStatus) error

	// ListForUser returns the user's pending and accepted records,
	// newest activity first.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*model.Connection, error)

	// AcceptedPartnerIDs is the presence audience: everyone holding an
	// accepted connection with userID.
	AcceptedPartnerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// PresenceReader is what the connection listing needs from the presence
// side; injected to keep this feature transport-free.
type PresenceReader interface {
	IsOnline(userID uuid.UUID) bool
	LastSeen(ctx context.Context, userID uuid.UUID) (time.Time, error)
}
