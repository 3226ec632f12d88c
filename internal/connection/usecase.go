package connection

import (
	"context"

	"github.com/google/uuid"
)

type ConnectionUsecase interface {
	// Request creates a pending connection from requester to target and
	// notifies the target's live sessions.
	Request(ctx context.Context, requester, target uuid.UUID) (*ConnectionDTO, error)

	// Accept/Reject may only be called by the requested user while the
	// record is still pending. Replays fail with an invalid-transition
	// error instead of silently succeeding.
	Accept(ctx context.Context, connectionID, actor uuid.UUID) (*ConnectionDTO, error)
	Reject(ctx context.Context, connectionID, actor uuid.UUID) (*ConnectionDTO, error)

	// Block is allowed to either participant from any prior state.
	Block(ctx context.Context, connectionID, actor uuid.UUID) (*ConnectionDTO, error)

	// Remove unfriends: the record is deleted, not demoted. Accepted only.
	Remove(ctx context.Context, connectionID, actor uuid.UUID) error

	// ListMine returns the user's connections enriched with the other
	// participant's profile, presence and unread state.
	ListMine(ctx context.Context, userID uuid.UUID) ([]ConnectionEntryDTO, error)
}
