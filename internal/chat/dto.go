package chat

import (
	"time"

	"github.com/google/uuid"

	"github.com/rahuljangu01/NEXUS/internal/chat/model"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler

// Input commands
type SendMessageCommand struct {
	SenderID      uuid.UUID
	ConnectionID  uuid.UUID
	Content       string
	AttachmentURL string

	// OriginSessionID, when set, is skipped by the sender-side echo so
	// the sending device does not receive its own message back.
	OriginSessionID string

	// Forwarded is set by the forward path, never by handlers.
	Forwarded bool
}

// Output DTOs
type MessageDTO struct {
	ID            uuid.UUID `json:"id"`
	ConnectionID  uuid.UUID `json:"connectionId"`
	SenderID      uuid.UUID `json:"senderId"`
	RecipientID   uuid.UUID `json:"recipientId"`
	Content       string    `json:"content,omitempty"`
	AttachmentURL string    `json:"attachmentUrl,omitempty"`
	Pinned        bool      `json:"pinned"`
	Forwarded     bool      `json:"forwarded"`
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"createdAt"`
}

// DeleteReport is the batch outcome of DeleteMultiple: every id lands in
// exactly one of the two buckets.
type DeleteReport struct {
	Deleted []uuid.UUID          `json:"deleted"`
	Failed  map[uuid.UUID]string `json:"failed,omitempty"`
}

// Event payloads
type ReadPayload struct {
	ConnectionID uuid.UUID `json:"connectionId"`
	ReaderID     uuid.UUID `json:"readerId"`
}

type PinnedPayload struct {
	MessageID    uuid.UUID `json:"messageId"`
	ConnectionID uuid.UUID `json:"connectionId"`
	Pinned       bool      `json:"pinned"`
}

func ToDTO(m *model.Message) *MessageDTO {
	return &MessageDTO{
		ID:            m.ID,
		ConnectionID:  m.ConnectionID,
		SenderID:      m.SenderID,
		RecipientID:   m.RecipientID,
		Content:       m.Content,
		AttachmentURL: m.AttachmentURL,
		Pinned:        m.Pinned,
		Forwarded:     m.Forwarded,
		Read:          m.Read,
		CreatedAt:     m.CreatedAt,
	}
}
