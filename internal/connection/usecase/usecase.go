package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rahuljangu01/NEXUS/internal/chat"
	"github.com/rahuljangu01/NEXUS/internal/connection"
	"github.com/rahuljangu01/NEXUS/internal/connection/model"
	"github.com/rahuljangu01/NEXUS/internal/connection/repository"
	"github.com/rahuljangu01/NEXUS/internal/delivery"
	"github.com/rahuljangu01/NEXUS/internal/user"
	appErrors "github.com/rahuljangu01/NEXUS/pkg/errors"
	"github.com/rahuljangu01/NEXUS/pkg/logger"
)

// Bounded wait on the durable store; a slower store surfaces as a
// transient error with no partial mutation.
const storeTimeout = 5 * time.Second

type ConnectionUsecase struct {
	repo     connection.ConnectionRepository
	users    user.UserRepository
	messages chat.MessageRepository
	presence connection.PresenceReader
	pusher   delivery.Pusher
	logger   logger.Logger
}

func NewConnectionUsecase(
	repo connection.ConnectionRepository,
	users user.UserRepository,
	messages chat.MessageRepository,
	presence connection.PresenceReader,
	pusher delivery.Pusher,
	logger logger.Logger,
) *ConnectionUsecase {
	return &ConnectionUsecase{
		repo:     repo,
		users:    users,
		messages: messages,
		presence: presence,
		pusher:   pusher,
		logger:   logger,
	}
}

func (uc *ConnectionUsecase) Request(ctx context.Context, requester, target uuid.UUID) (*connection.ConnectionDTO, error) {
	if requester == target {
		return nil, appErrors.ErrSelfConnection
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	// A retained record of any status blocks a new request: rejected and
	// blocked pairs stay closed until the record is gone.
	existing, err := uc.repo.Find(ctx, requester, target)
	if err != nil {
		uc.logger.Error("connection lookup failed", "err", err)
		return nil, appErrors.ErrConnectionStoreFailed(err)
	}
	if existing != nil {
		return nil, appErrors.ErrDuplicateConnection
	}

	conn := model.NewConnection(requester, target)
	if err := uc.repo.Create(ctx, conn); err != nil {
		// Lost the insert race: someone created the pair between our
		// Find and Create. Same outcome as finding it up front.
		if errors.Is(err, repository.ErrDuplicatePair) {
			return nil, appErrors.ErrDuplicateConnection
		}
		uc.logger.Error("connection create failed", "err", err)
		return nil, appErrors.ErrConnectionStoreFailed(err)
	}

	uc.pusher.Push(target, delivery.Event{
		Type:    delivery.EventConnectionRequested,
		Payload: connection.RequestedPayload{ConnectionID: conn.ID, From: requester},
	})

	return connection.ToDTO(conn), nil
}

func (uc *ConnectionUsecase) Accept(ctx context.Context, connectionID, actor uuid.UUID) (*connection.ConnectionDTO, error) {
	return uc.answer(ctx, connectionID, actor, model.StatusAccepted, delivery.EventConnectionAccepted)
}

func (uc *ConnectionUsecase) Reject(ctx context.Context, connectionID, actor uuid.UUID) (*connection.ConnectionDTO, error) {
	return uc.answer(ctx, connectionID, actor, model.StatusRejected, delivery.EventConnectionRejected)
}

// answer is the shared accept/reject path: requestedTo only, pending
// only, applied as a conditional update so a concurrent answer loses
// cleanly.
func (uc *ConnectionUsecase) answer(ctx context.Context, connectionID, actor uuid.UUID, to model.ConnectionStatus, event delivery.EventType) (*connection.ConnectionDTO, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	conn, err := uc.getByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if conn.RequestedTo != actor {
		return nil, appErrors.ErrNotRequestedTo
	}
	if conn.Status != model.StatusPending {
		return nil, appErrors.ErrInvalidTransition
	}

	if err := uc.repo.UpdateStatus(ctx, connectionID, model.StatusPending, to); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, appErrors.ErrInvalidTransition
		}
		uc.logger.Error("connection transition failed", "connection_id", connectionID, "to", to, "err", err)
		return nil, appErrors.ErrConnectionStoreFailed(err)
	}
	conn.Status = to

	uc.pusher.Push(conn.RequestedBy, delivery.Event{
		Type:    event,
		Payload: connection.AnswerPayload{ConnectionID: conn.ID, By: actor},
	})

	return connection.ToDTO(conn), nil
}

func (uc *ConnectionUsecase) Block(ctx context.Context, connectionID, actor uuid.UUID) (*connection.ConnectionDTO, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	conn, err := uc.getByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if !conn.HasParticipant(actor) {
		return nil, appErrors.ErrNotParticipant
	}
	if conn.Status == model.StatusBlocked {
		return nil, appErrors.ErrInvalidTransition
	}

	if err := uc.repo.UpdateStatus(ctx, connectionID, conn.Status, model.StatusBlocked); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, appErrors.ErrInvalidTransition
		}
		uc.logger.Error("connection block failed", "connection_id", connectionID, "err", err)
		return nil, appErrors.ErrConnectionStoreFailed(err)
	}
	conn.Status = model.StatusBlocked

	// The payload never says who blocked.
	uc.pusher.Push(conn.OtherParticipant(actor), delivery.Event{
		Type:    delivery.EventConnectionBlocked,
		Payload: connection.BlockedPayload{ConnectionID: conn.ID},
	})

	return connection.ToDTO(conn), nil
}

func (uc *ConnectionUsecase) Remove(ctx context.Context, connectionID, actor uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	conn, err := uc.getByID(ctx, connectionID)
	if err != nil {
		return err
	}
	if !conn.HasParticipant(actor) {
		return appErrors.ErrNotParticipant
	}
	if conn.Status != model.StatusAccepted {
		return appErrors.ErrInvalidTransition
	}

	if err := uc.repo.Delete(ctx, connectionID, model.StatusAccepted); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return appErrors.ErrInvalidTransition
		}
		uc.logger.Error("connection remove failed", "connection_id", connectionID, "err", err)
		return appErrors.ErrConnectionStoreFailed(err)
	}

	uc.pusher.Push(conn.OtherParticipant(actor), delivery.Event{
		Type:    delivery.EventConnectionRemoved,
		Payload: connection.RemovedPayload{ConnectionID: conn.ID},
	})

	return nil
}

func (uc *ConnectionUsecase) ListMine(ctx context.Context, userID uuid.UUID) ([]connection.ConnectionEntryDTO, error) {
	conns, err := uc.repo.ListForUser(ctx, userID)
	if err != nil {
		uc.logger.Error("connection list failed", "user_id", userID, "err", err)
		return nil, appErrors.ErrConnectionStoreFailed(err)
	}

	entries := make([]connection.ConnectionEntryDTO, 0, len(conns))
	for _, conn := range conns {
		other := conn.OtherParticipant(userID)

		entry := connection.ConnectionEntryDTO{
			Connection: *connection.ToDTO(conn),
			Online:     uc.presence.IsOnline(other),
		}

		if u, err := uc.users.GetUserByID(ctx, other); err == nil {
			entry.User = user.ToProfileDTO(u)
		} else {
			uc.logger.Warn("profile lookup failed for connection entry", "user_id", other, "err", err)
		}

		if !entry.Online {
			if seen, err := uc.presence.LastSeen(ctx, other); err == nil && !seen.IsZero() {
				entry.LastSeen = &seen
			}
		}

		// Unread/preview only make sense once messaging is open.
		if conn.Status == model.StatusAccepted {
			if n, err := uc.messages.UnreadCount(ctx, conn.ID, userID); err == nil {
				entry.UnreadCount = n
			}
			if last, err := uc.messages.LatestForConnection(ctx, conn.ID); err == nil && last != nil {
				entry.LastMessage = &connection.LastMessagePreview{
					SenderID:  last.SenderID,
					Content:   last.Content,
					CreatedAt: last.CreatedAt,
				}
			}
		}

		entries = append(entries, entry)
	}
	return entries, nil
}

func (uc *ConnectionUsecase) getByID(ctx context.Context, id uuid.UUID) (*model.Connection, error) {
	conn, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrConnectionNotFound) {
			return nil, appErrors.ErrConnectionNotFound
		}
		uc.logger.Error("connection fetch failed", "connection_id", id, "err", err)
		return nil, appErrors.ErrConnectionStoreFailed(err)
	}
	return conn, nil
}
