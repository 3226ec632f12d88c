package presence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const lastSeenPrefix = "presence:last_seen:"

// LastSeenStore survives the process-local registry: last-seen stamps
// are still meaningful after a restart wipes the session sets.
type LastSeenStore interface {
	Record(ctx context.Context, userID uuid.UUID, at time.Time) error
	Get(ctx context.Context, userID uuid.UUID) (time.Time, error)
}

type RedisLastSeenStore struct {
	rdb *redis.Client
}

func NewRedisLastSeenStore(rdb *redis.Client) *RedisLastSeenStore {
	return &RedisLastSeenStore{rdb: rdb}
}

func (s *RedisLastSeenStore) Record(ctx context.Context, userID uuid.UUID, at time.Time) error {
	err := s.rdb.Set(ctx, lastSeenPrefix+userID.String(), at.UTC().Format(time.RFC3339Nano), 0).Err()
	if err != nil {
		return errors.Wrap(err, "lastSeenStore.Record.Set")
	}
	return nil
}

// Get returns the zero time for users never seen offline.
func (s *RedisLastSeenStore) Get(ctx context.Context, userID uuid.UUID) (time.Time, error) {
	raw, err := s.rdb.Get(ctx, lastSeenPrefix+userID.String()).Result()
	if err == redis.Nil {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, errors.Wrap(err, "lastSeenStore.Get")
	}
	at, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "lastSeenStore.Get.Parse")
	}
	return at, nil
}
