package chat

import (
	"context"

	"github.com/google/uuid"
)

type ChatUsecase interface {
	// Send persists the message, bumps the recipient's unread state and
	// best-effort pushes it to both parties' live sessions. Only
	// participants of an accepted connection may send.
	Send(ctx context.Context, cmd SendMessageCommand) (*MessageDTO, error)

	// History returns the connection's messages for a participant.
	History(ctx context.Context, connectionID, actor uuid.UUID, limit int) ([]*MessageDTO, error)

	// MarkRead resets the reader's unread count on the connection and
	// notifies the other participant (read receipt).
	MarkRead(ctx context.Context, connectionID, reader uuid.UUID) error

	// TogglePin flips the pinned flag; both participants are notified.
	TogglePin(ctx context.Context, messageID, actor uuid.UUID) (*MessageDTO, error)

	// Forward copies a message the actor can read onto another accepted
	// connection the actor participates in.
	Forward(ctx context.Context, messageID, actor, targetConnectionID uuid.UUID) (*MessageDTO, error)

	// DeleteMultiple deletes each message the actor authored; ids that
	// fail authorization are reported individually, not aborted on.
	DeleteMultiple(ctx context.Context, messageIDs []uuid.UUID, actor uuid.UUID) (*DeleteReport, error)
}
