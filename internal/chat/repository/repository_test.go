package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/rahuljangu01/NEXUS/internal/chat/model"
	"github.com/rahuljangu01/NEXUS/pkg/logger"
)

var testDB *bun.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("nexus"),
		postgres.WithUsername("nexus"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}

	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connection string: %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	if _, err := testDB.NewCreateTable().Model((*model.Message)(nil)).IfNotExists().Exec(ctx); err != nil {
		testDB.Close()
		log.Fatalf("failed to create messages table: %v", err)
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func truncateMessages(t *testing.T) {
	t.Cleanup(func() {
		_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE messages RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
	})
}

func seedMessage(t *testing.T, repo *MessageRepository, connID, sender, recipient uuid.UUID, content string, at time.Time) *model.Message {
	t.Helper()
	msg := &model.Message{
		ConnectionID: connID,
		SenderID:     sender,
		RecipientID:  recipient,
		Content:      content,
		CreatedAt:    at,
	}
	require.NoError(t, repo.Create(context.Background(), msg))
	return msg
}

func Test_CreateAndGet(t *testing.T) {
	truncateMessages(t)

	repo := NewMessageRepository(testDB, logger.Logger{})
	connID, sender, recipient := uuid.New(), uuid.New(), uuid.New()

	msg := &model.Message{
		ConnectionID: connID,
		SenderID:     sender,
		RecipientID:  recipient,
		Content:      "hello",
	}
	require.NoError(t, repo.Create(context.Background(), msg))
	assert.NotEqual(t, uuid.Nil, msg.ID)
	assert.False(t, msg.Read)

	got, err := repo.GetByID(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Content)

	_, err = repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func Test_ListForConnection(t *testing.T) {
	truncateMessages(t)

	repo := NewMessageRepository(testDB, logger.Logger{})
	connID, a, b := uuid.New(), uuid.New(), uuid.New()
	base := time.Now().UTC().Truncate(time.Second)

	seedMessage(t, repo, connID, a, b, "first", base)
	seedMessage(t, repo, connID, b, a, "second", base.Add(time.Second))
	seedMessage(t, repo, uuid.New(), a, b, "other conversation", base)

	msgs, err := repo.ListForConnection(context.Background(), connID, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Content)
	assert.Equal(t, "second", msgs[1].Content)

	limited, err := repo.ListForConnection(context.Background(), connID, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "first", limited[0].Content)
}

func Test_LatestForConnection(t *testing.T) {
	truncateMessages(t)

	repo := NewMessageRepository(testDB, logger.Logger{})
	connID, a, b := uuid.New(), uuid.New(), uuid.New()
	base := time.Now().UTC().Truncate(time.Second)

	seedMessage(t, repo, connID, a, b, "older", base)
	seedMessage(t, repo, connID, b, a, "newest", base.Add(time.Second))

	latest, err := repo.LatestForConnection(context.Background(), connID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "newest", latest.Content)

	// Empty conversation yields nil, not an error.
	latest, err = repo.LatestForConnection(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func Test_UnreadAccounting(t *testing.T) {
	truncateMessages(t)

	repo := NewMessageRepository(testDB, logger.Logger{})
	connID, a, b := uuid.New(), uuid.New(), uuid.New()
	base := time.Now().UTC().Truncate(time.Second)

	seedMessage(t, repo, connID, a, b, "one", base)
	seedMessage(t, repo, connID, a, b, "two", base.Add(time.Second))
	seedMessage(t, repo, connID, b, a, "reply", base.Add(2*time.Second))

	// Each side counts only messages addressed to them.
	n, err := repo.UnreadCount(context.Background(), connID, b)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.UnreadCount(context.Background(), connID, a)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// b acknowledges; a's unread is untouched.
	require.NoError(t, repo.MarkConversationRead(context.Background(), connID, b))

	n, err = repo.UnreadCount(context.Background(), connID, b)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = repo.UnreadCount(context.Background(), connID, a)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Marking an already-read conversation again is harmless.
	require.NoError(t, repo.MarkConversationRead(context.Background(), connID, b))
}

func Test_SetPinned(t *testing.T) {
	truncateMessages(t)

	repo := NewMessageRepository(testDB, logger.Logger{})
	msg := seedMessage(t, repo, uuid.New(), uuid.New(), uuid.New(), "pin me", time.Now().UTC())

	require.NoError(t, repo.SetPinned(context.Background(), msg.ID, true))

	got, err := repo.GetByID(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.True(t, got.Pinned)

	err = repo.SetPinned(context.Background(), uuid.New(), true)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func Test_Delete(t *testing.T) {
	truncateMessages(t)

	repo := NewMessageRepository(testDB, logger.Logger{})
	msg := seedMessage(t, repo, uuid.New(), uuid.New(), uuid.New(), "bye", time.Now().UTC())

	require.NoError(t, repo.Delete(context.Background(), msg.ID))

	_, err := repo.GetByID(context.Background(), msg.ID)
	assert.ErrorIs(t, err, ErrMessageNotFound)

	err = repo.Delete(context.Background(), msg.ID)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}
