package chat

import (
	"context"

	"github.com/google/uuid"

	"github.com/rahuljangu01/NEXUS/internal/chat/model"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *model.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Message, error)

	// ListForConnection returns messages in creation order (oldest first).
	ListForConnection(ctx context.Context, connectionID uuid.UUID, limit int) ([]*model.Message, error)

	LatestForConnection(ctx context.Context, connectionID uuid.UUID) (*model.Message, error)

	// UnreadCount counts messages addressed to userID that they have not
	// yet marked read.
	UnreadCount(ctx context.Context, connectionID, userID uuid.UUID) (int, error)

	// MarkConversationRead flips every unread message addressed to
	// userID on the connection, in one statement.
	MarkConversationRead(ctx context.Context, connectionID, userID uuid.UUID) error

	SetPinned(ctx context.Context, id uuid.UUID, pinned bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}
