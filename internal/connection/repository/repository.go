package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/rahuljangu01/NEXUS/internal/connection/model"
	"github.com/rahuljangu01/NEXUS/pkg/logger"
)

var (
	ErrConnectionNotFound = errors.New("connection not found")
	// ErrDuplicatePair maps the unique index over (user_low, user_high).
	ErrDuplicatePair = errors.New("connection already exists for this pair")
	// ErrStaleStatus means a conditional write matched zero rows: the
	// stored status changed underneath the caller.
	ErrStaleStatus = errors.New("stored status does not match expected status")
)

type ConnectionRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewConnectionRepository(db *bun.DB, logger logger.Logger) *ConnectionRepository {
	return &ConnectionRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *ConnectionRepository) Create(ctx context.Context, conn *model.Connection) error {
	// Canonicalize at the write boundary; the unique index is the real
	// race-safe enforcement.
	conn.UserLow, conn.UserHigh = model.CanonicalPair(conn.UserLow, conn.UserHigh)

	_, err := r.db.NewInsert().Model(conn).Returning("*").Exec(ctx)
	if err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.IntegrityViolation() {
			return ErrDuplicatePair
		}
		return errors.Wrap(err, "connectionRepo.Create.Insert: ")
	}
	return nil
}

func (r *ConnectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Connection, error) {

	conn := new(model.Connection)
	err := r.db.NewSelect().Model(conn).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConnectionNotFound
		}
		return nil, errors.Wrap(err, "connectionRepo.GetByID.Scan: ")
	}
	return conn, nil
}

func (r *ConnectionRepository) Find(ctx context.Context, a, b uuid.UUID) (*model.Connection, error) {
	low, high := model.CanonicalPair(a, b)

	conn := new(model.Connection)
	err := r.db.NewSelect().
		Model(conn).
		Where("user_low = ? AND user_high = ?", low, high).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "connectionRepo.Find.Scan: ")
	}
	return conn, nil
}

func (r *ConnectionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.ConnectionStatus) error {
	res, err := r.db.NewUpdate().
		Model((*model.Connection)(nil)).
		Set("status = ?", to).
		Set("updated_at = current_timestamp").
		Where("id = ? AND status = ?", id, from).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "connectionRepo.UpdateStatus.Update: ")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "connectionRepo.UpdateStatus.RowsAffected: ")
	}
	if affected == 0 {
		return ErrStaleStatus
	}
	return nil
}

func (r *ConnectionRepository) Delete(ctx context.Context, id uuid.UUID, expect model.ConnectionStatus) error {
	res, err := r.db.NewDelete().
		Model((*model.Connection)(nil)).
		Where("id = ? AND status = ?", id, expect).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "connectionRepo.Delete.Exec: ")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "connectionRepo.Delete.RowsAffected: ")
	}
	if affected == 0 {
		return ErrStaleStatus
	}
	return nil
}

func (r *ConnectionRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]*model.Connection, error) {
	var conns []*model.Connection
	err := r.db.NewSelect().
		Model(&conns).
		Where("user_low = ? OR user_high = ?", userID, userID).
		Where("status IN (?)", bun.In([]model.ConnectionStatus{model.StatusPending, model.StatusAccepted})).
		Order("updated_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "connectionRepo.ListForUser.Scan: ")
	}
	return conns, nil
}

func (r *ConnectionRepository) AcceptedPartnerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var conns []*model.Connection
	err := r.db.NewSelect().
		Model(&conns).
		Column("user_low", "user_high").
		Where("user_low = ? OR user_high = ?", userID, userID).
		Where("status = ?", model.StatusAccepted).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "connectionRepo.AcceptedPartnerIDs.Scan: ")
	}

	partners := make([]uuid.UUID, 0, len(conns))
	for _, c := range conns {
		partners = append(partners, c.OtherParticipant(userID))
	}
	return partners, nil
}
