package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahuljangu01/NEXUS/config"
	"github.com/rahuljangu01/NEXUS/internal/chat"
	"github.com/rahuljangu01/NEXUS/internal/chat/mocks"
	"github.com/rahuljangu01/NEXUS/internal/chat/model"
	chatRepo "github.com/rahuljangu01/NEXUS/internal/chat/repository"
	connMocks "github.com/rahuljangu01/NEXUS/internal/connection/mocks"
	connModel "github.com/rahuljangu01/NEXUS/internal/connection/model"
	connRepo "github.com/rahuljangu01/NEXUS/internal/connection/repository"
	"github.com/rahuljangu01/NEXUS/internal/delivery"
	deliveryMocks "github.com/rahuljangu01/NEXUS/internal/delivery/mocks"
	appErrors "github.com/rahuljangu01/NEXUS/pkg/errors"
	"github.com/rahuljangu01/NEXUS/pkg/logger"
)

type chatUsecaseMocks struct {
	messages    *mocks.MockMessageRepository
	connections *connMocks.MockConnectionRepository
	pusher      *deliveryMocks.MockPusher
}

func newTestChatUsecase(t *testing.T) (*ChatUsecase, chatUsecaseMocks) {
	ctrl := gomock.NewController(t)
	m := chatUsecaseMocks{
		messages:    mocks.NewMockMessageRepository(ctrl),
		connections: connMocks.NewMockConnectionRepository(ctrl),
		pusher:      deliveryMocks.NewMockPusher(ctrl),
	}

	cfg := config.Config{}
	log, _ := logger.NewLogger(&cfg)
	uc := &ChatUsecase{
		messages:    m.messages,
		connections: m.connections,
		pusher:      m.pusher,
		logger:      *log,
	}
	return uc, m
}

func acceptedConnection(a, b uuid.UUID) *connModel.Connection {
	conn := connModel.NewConnection(a, b)
	conn.ID = uuid.New()
	conn.Status = connModel.StatusAccepted
	return conn
}

func TestChatUsecase_Send(t *testing.T) {
	sender := uuid.New()
	recipient := uuid.New()
	msgID := uuid.New()

	t.Run("happy path - message persisted and pushed to both parties", func(t *testing.T) {
		uc, m := newTestChatUsecase(t)

		conn := acceptedConnection(sender, recipient)
		m.connections.EXPECT().GetByID(gomock.Any(), conn.ID).Return(conn, nil)
		m.messages.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *model.Message) error {
				assert.Equal(t, sender, msg.SenderID)
				assert.Equal(t, recipient, msg.RecipientID)
				assert.False(t, msg.Read)
				msg.ID = msgID
				return nil
			})
		m.pusher.EXPECT().Push(recipient, gomock.Any()).
			Do(func(_ uuid.UUID, event delivery.Event) {
				assert.Equal(t, delivery.EventMessageNew, event.Type)
			})
		m.pusher.EXPECT().PushExcept(sender, "tab-1", gomock.Any())

		dto, err := uc.Send(context.Background(), chat.SendMessageCommand{
			SenderID:        sender,
			ConnectionID:    conn.ID,
			Content:         "hello",
			OriginSessionID: "tab-1",
		})
		require.NoError(t, err)
		assert.Equal(t, msgID, dto.ID)
		assert.Equal(t, "hello", dto.Content)
	})

	t.Run("happy path - attachment-only message is allowed", func(t *testing.T) {
		uc, m := newTestChatUsecase(t)

		conn := acceptedConnection(sender, recipient)
		m.connections.EXPECT().GetByID(gomock.Any(), conn.ID).Return(conn, nil)
		m.messages.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.pusher.EXPECT().Push(recipient, gomock.Any())
		m.pusher.EXPECT().PushExcept(sender, "", gomock.Any())

		_, err := uc.Send(context.Background(), chat.SendMessageCommand{
			SenderID:      sender,
			ConnectionID:  conn.ID,
			AttachmentURL: "https://files.example/doc.pdf",
		})
		require.NoError(t, err)
	})

	t.Run("sad path - blank content", func(t *testing.T) {
		uc, _ := newTestChatUsecase(t)

		_, err := uc.Send(context.Background(), chat.SendMessageCommand{
			SenderID:     sender,
			ConnectionID: uuid.New(),
			Content:      "   ",
		})
		assert.ErrorIs(t, err, appErrors.ErrEmptyMessage)
	})

	t.Run("sad path - connection still pending", func(t *testing.T) {
		uc, m := newTestChatUsecase(t)

		conn := connModel.NewConnection(sender, recipient)
		conn.ID = uuid.New()
		m.connections.EXPECT().GetByID(gomock.Any(), conn.ID).Return(conn, nil)

		_, err := uc.Send(context.Background(), chat.SendMessageCommand{
			SenderID:     sender,
			ConnectionID: conn.ID,
			Content:      "hello",
		})
		assert.ErrorIs(t, err, appErrors.ErrNotAccepted)
	})

	t.Run("sad path - sender is not a participant", func(t *testing.T) {
		uc, m := newTestChatUsecase(t)

		conn := acceptedConnection(uuid.New(), recipient)
		m.connections.EXPECT().GetByID(gomock.Any(), conn.ID).Return(conn, nil)

		_, err := uc.Send(context.Background(), chat.SendMessageCommand{
			SenderID:     sender,
			ConnectionID: conn.ID,
			Content:      "hello",
		})
		assert.ErrorIs(t, err, appErrors.ErrNotParticipant)
	})

	t.Run("sad path - unknown connection", func(t *testing.T) {
		uc, m := newTestChatUsecase(t)

		connID := uuid.New()
		m.connections.EXPECT().GetByID(gomock.Any(), connID).Return(nil, connRepo.ErrConnectionNotFound)

		_, err := uc.Send(context.Background(), chat.SendMessageCommand{
			SenderID:     sender,
			ConnectionID: connID,
			Content:      "hello",
		})
		assert.ErrorIs(t, err, appErrors.ErrConnectionNotFound)
	})
}

func TestChatUsecase_History(t *testing.T) {
	me := uuid.New()
	other := uuid.New()

	t.Run("happy path - messages in creation order", func(t *testing.T) {
		uc, m := newTestChatUsecase(t)

		conn := acceptedConnection(me, other)
		m.connections.EXPECT().GetByID(gomock.Any(), conn.ID).Return(conn, nil)
		m.messages.EXPECT().ListForConnection(gomock.Any(), conn.ID, 50).
			Return([]*model.Message{
				{ID: uuid.New(), Content: "first"},
				{ID: uuid.New(), Content: "second"},
			}, nil)

		msgs, err := uc.History(context.Background(), conn.ID, me, 50)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "first", msgs[0].Content)
	})

	t.Run("sad path - outsider cannot read", func(t *testing.T) {
		uc, m := newTestChatUsecase(t)

		conn := acceptedConnection(me, other)
		m.connections.EXPECT().GetByID(gomock.Any(), conn.ID).Return(conn, nil)

		_, err := uc.History(context.Background(), conn.ID, uuid.New(), 50)
		assert.ErrorIs(t, err, appErrors.ErrNotParticipant)
	})
}

func TestChatUsecase_MarkRead(t *testing.T) {
	reader := uuid.New()
	other := uuid.New()

	t.Run("happy path - unread cleared and read receipt pushed", func(t *testing.T) {
		uc, m := newTestChatUsecase(t)

		conn := acceptedConnection(reader, other)
		m.connections.EXPECT().GetByID(gomock.Any(), conn.ID).Return(conn, nil)
		m.messages.EXPECT().MarkConversationRead(gomock.Any(), conn.ID, reader).Return(nil)
		m.pusher.EXPECT().Push(other, delivery.Event{
			Type:    delivery.EventMessageRead,
			Payload: chat.ReadPayload{ConnectionID: conn.ID, ReaderID: reader},
		})

		err := uc.MarkRead(context.Background(), conn.ID, reader)
		require.NoError(t, err)
	})

	t.Run("sad path - outsider cannot mark read", func(t *testing.T) {
		uc, m := newTestChatUsecase(t)

		conn := acceptedConnection(reader, other)
		m.connections.EXPECT().GetByID(gomock.Any(), conn.ID).Return(conn, nil)

		err := uc.MarkRead(context.Background(), conn.ID, uuid.New())
		assert.ErrorIs(t, err, appErrors.ErrNotParticipant)
	})
}

func TestChatUsecase_TogglePin(t *testing.T) {
	me := uuid.New()
	other := uuid.New()

	t.Run("happy path - pin flips and both participants are notified", func(t *testing.T) {
		uc, m := newTestChatUsecase(t)

		conn := acceptedConnection(me, other)
		msg := &model.Message{ID: uuid.New(), ConnectionID: conn.ID, SenderID: other, Pinned: false}

		m.messages.EXPECT().GetByID(gomock.Any(), msg.ID).Return(msg, nil)
		m.connections.EXPECT().GetByID(gomock.Any(), conn.ID).Return(conn, nil)
		m.messages.EXPECT().SetPinned(gomock.Any(), msg.ID, true).Return(nil)

		event := delivery.Event{
			Type:    delivery.EventMessagePinned,
			Payload: chat.PinnedPayload{MessageID: msg.ID, ConnectionID: conn.ID, Pinned: true},
		}
		m.pusher.EXPECT().Push(conn.UserLow, event)
		m.pusher.EXPECT().Push(conn.UserHigh, event)

		dto, err := uc.TogglePin(context.Background(), msg.ID, me)
		require.NoError(t, err)
		assert.True(t, dto.Pinned)
	})

	t.Run("happy path - a pinned message unpins", func(t *testing.T) {
		uc, m := newTestChatUsecase(t)

		conn := acceptedConnection(me, other)
		msg := &model.Message{ID: uuid.New(), ConnectionID: conn.ID, SenderID: me, Pinned: true}

		m.messages.EXPECT().GetByID(gomock.Any(), msg.ID).Return(msg, nil)
		m.connections.EXPECT().GetByID(gomock.Any(), conn.ID).Return(conn, nil)
		m.messages.EXPECT().SetPinned(gomock.Any(), msg.ID, false).Return(nil)
		m.pusher.EXPECT().Push(conn.UserLow, gomock.Any())
		m.pusher.EXPECT().Push(conn.UserHigh, gomock.Any())

		dto, err := uc.TogglePin(context.Background(), msg.ID, me)
		require.NoError(t, err)
		assert.False(t, dto.Pinned)
	})

	t.Run("sad path - unknown message", func(t *testing.T) {
		uc, m := newTestChatUsecase(t)

		msgID := uuid.New()
		m.messages.EXPECT().GetByID(gomock.Any(), msgID).Return(nil, chatRepo.ErrMessageNotFound)

		_, err := uc.TogglePin(context.Background(), msgID, me)
		assert.ErrorIs(t, err, appErrors.ErrMessageNotFound)
	})
}

func TestChatUsecase_Forward(t *testing.T) {
	me := uuid.New()
	friendA := uuid.New()
	friendB := uuid.New()

	t.Run("happy path - copy lands on the target connection", func(t *testing.T) {
		uc, m := newTestChatUsecase(t)

		srcConn := acceptedConnection(me, friendA)
		targetConn := acceptedConnection(me, friendB)
		src := &model.Message{
			ID:           uuid.New(),
			ConnectionID: srcConn.ID,
			SenderID:     friendA,
			Content:      "check this out",
		}

		m.messages.EXPECT().GetByID(gomock.Any(), src.ID).Return(src, nil)
		m.connections.EXPECT().GetByID(gomock.Any(), srcConn.ID).Return(srcConn, nil)
		m.connections.EXPECT().GetByID(gomock.Any(), targetConn.ID).Return(targetConn, nil)
		m.messages.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *model.Message) error {
				assert.Equal(t, targetConn.ID, msg.ConnectionID)
				assert.Equal(t, me, msg.SenderID)
				assert.Equal(t, friendB, msg.RecipientID)
				assert.Equal(t, "check this out", msg.Content)
				assert.True(t, msg.Forwarded)
				return nil
			})
		m.pusher.EXPECT().Push(friendB, gomock.Any())
		m.pusher.EXPECT().PushExcept(me, "", gomock.Any())

		dto, err := uc.Forward(context.Background(), src.ID, me, targetConn.ID)
		require.NoError(t, err)
		assert.True(t, dto.Forwarded)
	})

	t.Run("sad path - cannot forward a message you cannot read", func(t *testing.T) {
		uc, m := newTestChatUsecase(t)

		srcConn := acceptedConnection(friendA, friendB)
		src := &model.Message{ID: uuid.New(), ConnectionID: srcConn.ID, SenderID: friendA, Content: "private"}

		m.messages.EXPECT().GetByID(gomock.Any(), src.ID).Return(src, nil)
		m.connections.EXPECT().GetByID(gomock.Any(), srcConn.ID).Return(srcConn, nil)

		_, err := uc.Forward(context.Background(), src.ID, me, uuid.New())
		assert.ErrorIs(t, err, appErrors.ErrNotParticipant)
	})

	t.Run("sad path - target connection not accepted", func(t *testing.T) {
		uc, m := newTestChatUsecase(t)

		srcConn := acceptedConnection(me, friendA)
		targetConn := connModel.NewConnection(me, friendB)
		targetConn.ID = uuid.New()
		src := &model.Message{ID: uuid.New(), ConnectionID: srcConn.ID, SenderID: me, Content: "hi"}

		m.messages.EXPECT().GetByID(gomock.Any(), src.ID).Return(src, nil)
		m.connections.EXPECT().GetByID(gomock.Any(), srcConn.ID).Return(srcConn, nil)
		m.connections.EXPECT().GetByID(gomock.Any(), targetConn.ID).Return(targetConn, nil)

		_, err := uc.Forward(context.Background(), src.ID, me, targetConn.ID)
		assert.ErrorIs(t, err, appErrors.ErrNotAccepted)
	})
}

func TestChatUsecase_DeleteMultiple(t *testing.T) {
	me := uuid.New()
	other := uuid.New()

	t.Run("happy path - partial success is reported per id", func(t *testing.T) {
		uc, m := newTestChatUsecase(t)

		mine := uuid.New()
		theirs := uuid.New()
		missing := uuid.New()

		m.messages.EXPECT().GetByID(gomock.Any(), mine).
			Return(&model.Message{ID: mine, SenderID: me}, nil)
		m.messages.EXPECT().Delete(gomock.Any(), mine).Return(nil)

		m.messages.EXPECT().GetByID(gomock.Any(), theirs).
			Return(&model.Message{ID: theirs, SenderID: other}, nil)

		m.messages.EXPECT().GetByID(gomock.Any(), missing).
			Return(nil, chatRepo.ErrMessageNotFound)

		report, err := uc.DeleteMultiple(context.Background(), []uuid.UUID{mine, theirs, missing}, me)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{mine}, report.Deleted)
		assert.Len(t, report.Failed, 2)
		assert.Contains(t, report.Failed[theirs], "author")
		assert.Contains(t, report.Failed[missing], "not found")
	})

	t.Run("happy path - delete failure does not abort the batch", func(t *testing.T) {
		uc, m := newTestChatUsecase(t)

		broken := uuid.New()
		fine := uuid.New()

		m.messages.EXPECT().GetByID(gomock.Any(), broken).
			Return(&model.Message{ID: broken, SenderID: me}, nil)
		m.messages.EXPECT().Delete(gomock.Any(), broken).Return(chatRepo.ErrMessageNotFound)

		m.messages.EXPECT().GetByID(gomock.Any(), fine).
			Return(&model.Message{ID: fine, SenderID: me}, nil)
		m.messages.EXPECT().Delete(gomock.Any(), fine).Return(nil)

		report, err := uc.DeleteMultiple(context.Background(), []uuid.UUID{broken, fine}, me)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{fine}, report.Deleted)
		assert.Len(t, report.Failed, 1)
	})
}
