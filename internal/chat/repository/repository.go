package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/rahuljangu01/NEXUS/internal/chat/model"
	"github.com/rahuljangu01/NEXUS/pkg/logger"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewMessageRepository(db *bun.DB, logger logger.Logger) *MessageRepository {
	return &MessageRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *MessageRepository) Create(ctx context.Context, msg *model.Message) error {

	_, err := r.db.NewInsert().Model(msg).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "messageRepo.Create.Insert: ")
	}
	return nil
}

func (r *MessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Message, error) {

	msg := new(model.Message)
	err := r.db.NewSelect().Model(msg).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		return nil, errors.Wrap(err, "messageRepo.GetByID.Scan: ")
	}
	return msg, nil
}

func (r *MessageRepository) ListForConnection(ctx context.Context, connectionID uuid.UUID, limit int) ([]*model.Message, error) {
	var msgs []*model.Message
	q := r.db.NewSelect().
		Model(&msgs).
		Where("connection_id = ?", connectionID).
		Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "messageRepo.ListForConnection.Scan: ")
	}
	return msgs, nil
}

func (r *MessageRepository) LatestForConnection(ctx context.Context, connectionID uuid.UUID) (*model.Message, error) {
	msg := new(model.Message)
	err := r.db.NewSelect().
		Model(msg).
		Where("connection_id = ?", connectionID).
		Order("created_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "messageRepo.LatestForConnection.Scan: ")
	}
	return msg, nil
}

func (r *MessageRepository) UnreadCount(ctx context.Context, connectionID, userID uuid.UUID) (int, error) {
	count, err := r.db.NewSelect().
		Model((*model.Message)(nil)).
		Where("connection_id = ? AND recipient_id = ? AND read = false", connectionID, userID).
		Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "messageRepo.UnreadCount.Count: ")
	}
	return count, nil
}

func (r *MessageRepository) MarkConversationRead(ctx context.Context, connectionID, userID uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model((*model.Message)(nil)).
		Set("read = true").
		Where("connection_id = ? AND recipient_id = ? AND read = false", connectionID, userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "messageRepo.MarkConversationRead.Update: ")
	}
	return nil
}

func (r *MessageRepository) SetPinned(ctx context.Context, id uuid.UUID, pinned bool) error {
	res, err := r.db.NewUpdate().
		Model((*model.Message)(nil)).
		Set("pinned = ?", pinned).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "messageRepo.SetPinned.Update: ")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "messageRepo.SetPinned.RowsAffected: ")
	}
	if affected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *MessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*model.Message)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "messageRepo.Delete.Exec: ")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "messageRepo.Delete.RowsAffected: ")
	}
	if affected == 0 {
		return ErrMessageNotFound
	}
	return nil
}
