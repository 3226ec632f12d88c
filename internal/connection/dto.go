package connection

import (
	"time"

	"github.com/google/uuid"

	"github.com/rahuljangu01/NEXUS/internal/connection/model"
	"github.com/rahuljangu01/NEXUS/internal/user"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler

// Output DTOs
type ConnectionDTO struct {
	ID          uuid.UUID              `json:"id"`
	Status      model.ConnectionStatus `json:"status"`
	RequestedBy uuid.UUID              `json:"requestedBy"`
	RequestedTo uuid.UUID              `json:"requestedTo"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// LastMessagePreview is the sidebar preview line, not the full message.
type LastMessagePreview struct {
	SenderID  uuid.UUID `json:"senderId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// ConnectionEntryDTO is one row of "my connections": the relationship
// plus everything the chat list renders about the other participant.
type ConnectionEntryDTO struct {
	Connection  ConnectionDTO       `json:"connection"`
	User        *user.ProfileDTO    `json:"user"`
	Online      bool                `json:"online"`
	LastSeen    *time.Time          `json:"lastSeen,omitempty"`
	UnreadCount int                 `json:"unreadCount"`
	LastMessage *LastMessagePreview `json:"lastMessage,omitempty"`
}

// Event payloads
type RequestedPayload struct {
	ConnectionID uuid.UUID `json:"connectionId"`
	From         uuid.UUID `json:"from"`
}

type AnswerPayload struct {
	ConnectionID uuid.UUID `json:"connectionId"`
	By           uuid.UUID `json:"by"`
}

// BlockedPayload deliberately omits who blocked.
type BlockedPayload struct {
	ConnectionID uuid.UUID `json:"connectionId"`
}

type RemovedPayload struct {
	ConnectionID uuid.UUID `json:"connectionId"`
}

// ToDTO maps the stored record to its outward shape.
func ToDTO(c *model.Connection) *ConnectionDTO {
	return &ConnectionDTO{
		ID:          c.ID,
		Status:      c.Status,
		RequestedBy: c.RequestedBy,
		RequestedTo: c.RequestedTo,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
