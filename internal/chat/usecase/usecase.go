package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rahuljangu01/NEXUS/internal/chat"
	"github.com/rahuljangu01/NEXUS/internal/chat/model"
	chatRepo "github.com/rahuljangu01/NEXUS/internal/chat/repository"
	"github.com/rahuljangu01/NEXUS/internal/connection"
	connModel "github.com/rahuljangu01/NEXUS/internal/connection/model"
	connRepo "github.com/rahuljangu01/NEXUS/internal/connection/repository"
	"github.com/rahuljangu01/NEXUS/internal/delivery"
	appErrors "github.com/rahuljangu01/NEXUS/pkg/errors"
	"github.com/rahuljangu01/NEXUS/pkg/logger"
)

const storeTimeout = 5 * time.Second

type ChatUsecase struct {
	messages    chat.MessageRepository
	connections connection.ConnectionRepository
	pusher      delivery.Pusher
	logger      logger.Logger
}

func NewChatUsecase(
	messages chat.MessageRepository,
	connections connection.ConnectionRepository,
	pusher delivery.Pusher,
	logger logger.Logger,
) *ChatUsecase {
	return &ChatUsecase{
		messages:    messages,
		connections: connections,
		pusher:      pusher,
		logger:      logger,
	}
}

func (uc *ChatUsecase) Send(ctx context.Context, cmd chat.SendMessageCommand) (*chat.MessageDTO, error) {
	if strings.TrimSpace(cmd.Content) == "" && cmd.AttachmentURL == "" {
		return nil, appErrors.ErrEmptyMessage
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	conn, err := uc.acceptedFor(ctx, cmd.ConnectionID, cmd.SenderID)
	if err != nil {
		return nil, err
	}

	msg := &model.Message{
		ConnectionID:  conn.ID,
		SenderID:      cmd.SenderID,
		RecipientID:   conn.OtherParticipant(cmd.SenderID),
		Content:       cmd.Content,
		AttachmentURL: cmd.AttachmentURL,
		Forwarded:     cmd.Forwarded,
	}
	if err := uc.messages.Create(ctx, msg); err != nil {
		uc.logger.Error("message persist failed", "connection_id", conn.ID, "err", err)
		return nil, appErrors.ErrMessageStoreFailed(err)
	}

	// Persistence succeeded; everything below is best-effort fan-out.
	dto := chat.ToDTO(msg)
	event := delivery.Event{Type: delivery.EventMessageNew, Payload: dto}
	uc.pusher.Push(msg.RecipientID, event)
	uc.pusher.PushExcept(msg.SenderID, cmd.OriginSessionID, event)

	return dto, nil
}

func (uc *ChatUsecase) History(ctx context.Context, connectionID, actor uuid.UUID, limit int) ([]*chat.MessageDTO, error) {
	conn, err := uc.getConnection(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if !conn.HasParticipant(actor) {
		return nil, appErrors.ErrNotParticipant
	}

	msgs, err := uc.messages.ListForConnection(ctx, connectionID, limit)
	if err != nil {
		uc.logger.Error("message history failed", "connection_id", connectionID, "err", err)
		return nil, appErrors.ErrMessageStoreFailed(err)
	}

	dtos := make([]*chat.MessageDTO, 0, len(msgs))
	for _, m := range msgs {
		dtos = append(dtos, chat.ToDTO(m))
	}
	return dtos, nil
}

func (uc *ChatUsecase) MarkRead(ctx context.Context, connectionID, reader uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	conn, err := uc.getConnection(ctx, connectionID)
	if err != nil {
		return err
	}
	if !conn.HasParticipant(reader) {
		return appErrors.ErrNotParticipant
	}

	if err := uc.messages.MarkConversationRead(ctx, connectionID, reader); err != nil {
		uc.logger.Error("mark read failed", "connection_id", connectionID, "err", err)
		return appErrors.ErrMessageStoreFailed(err)
	}

	uc.pusher.Push(conn.OtherParticipant(reader), delivery.Event{
		Type:    delivery.EventMessageRead,
		Payload: chat.ReadPayload{ConnectionID: connectionID, ReaderID: reader},
	})

	return nil
}

func (uc *ChatUsecase) TogglePin(ctx context.Context, messageID, actor uuid.UUID) (*chat.MessageDTO, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	msg, err := uc.getMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}

	conn, err := uc.getConnection(ctx, msg.ConnectionID)
	if err != nil {
		return nil, err
	}
	if !conn.HasParticipant(actor) {
		return nil, appErrors.ErrNotParticipant
	}

	msg.Pinned = !msg.Pinned
	if err := uc.messages.SetPinned(ctx, messageID, msg.Pinned); err != nil {
		uc.logger.Error("pin toggle failed", "message_id", messageID, "err", err)
		return nil, appErrors.ErrMessageStoreFailed(err)
	}

	event := delivery.Event{
		Type:    delivery.EventMessagePinned,
		Payload: chat.PinnedPayload{MessageID: msg.ID, ConnectionID: conn.ID, Pinned: msg.Pinned},
	}
	uc.pusher.Push(conn.UserLow, event)
	uc.pusher.Push(conn.UserHigh, event)

	return chat.ToDTO(msg), nil
}

func (uc *ChatUsecase) Forward(ctx context.Context, messageID, actor, targetConnectionID uuid.UUID) (*chat.MessageDTO, error) {
	src, err := uc.getMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}

	srcConn, err := uc.getConnection(ctx, src.ConnectionID)
	if err != nil {
		return nil, err
	}
	if !srcConn.HasParticipant(actor) {
		return nil, appErrors.ErrNotParticipant
	}

	// Send re-checks the target connection is accepted and the actor is
	// a participant there; a forward is a copy, never a move.
	return uc.Send(ctx, chat.SendMessageCommand{
		SenderID:      actor,
		ConnectionID:  targetConnectionID,
		Content:       src.Content,
		AttachmentURL: src.AttachmentURL,
		Forwarded:     true,
	})
}

func (uc *ChatUsecase) DeleteMultiple(ctx context.Context, messageIDs []uuid.UUID, actor uuid.UUID) (*chat.DeleteReport, error) {
	report := &chat.DeleteReport{
		Deleted: make([]uuid.UUID, 0, len(messageIDs)),
		Failed:  make(map[uuid.UUID]string),
	}

	for _, id := range messageIDs {
		msg, err := uc.messages.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, chatRepo.ErrMessageNotFound) {
				report.Failed[id] = "message not found"
			} else {
				report.Failed[id] = "message store unavailable"
			}
			continue
		}
		if msg.SenderID != actor {
			report.Failed[id] = "only the author can delete a message"
			continue
		}
		if err := uc.messages.Delete(ctx, id); err != nil {
			uc.logger.Warn("batch delete entry failed", "message_id", id, "err", err)
			report.Failed[id] = "delete failed"
			continue
		}
		report.Deleted = append(report.Deleted, id)
	}

	return report, nil
}

// acceptedFor authorizes message exchange: connection exists, is
// accepted, actor participates.
func (uc *ChatUsecase) acceptedFor(ctx context.Context, connectionID, actor uuid.UUID) (*connModel.Connection, error) {
	conn, err := uc.getConnection(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if !conn.HasParticipant(actor) {
		return nil, appErrors.ErrNotParticipant
	}
	if conn.Status != connModel.StatusAccepted {
		return nil, appErrors.ErrNotAccepted
	}
	return conn, nil
}

func (uc *ChatUsecase) getConnection(ctx context.Context, id uuid.UUID) (*connModel.Connection, error) {
	conn, err := uc.connections.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, connRepo.ErrConnectionNotFound) {
			return nil, appErrors.ErrConnectionNotFound
		}
		uc.logger.Error("connection fetch failed", "connection_id", id, "err", err)
		return nil, appErrors.ErrConnectionStoreFailed(err)
	}
	return conn, nil
}

func (uc *ChatUsecase) getMessage(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	msg, err := uc.messages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, chatRepo.ErrMessageNotFound) {
			return nil, appErrors.ErrMessageNotFound
		}
		uc.logger.Error("message fetch failed", "message_id", id, "err", err)
		return nil, appErrors.ErrMessageStoreFailed(err)
	}
	return msg, nil
}
