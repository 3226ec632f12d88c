package presence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rahuljangu01/NEXUS/internal/delivery"
	"github.com/rahuljangu01/NEXUS/pkg/logger"
)

// AudienceSource answers "who may see this user's presence". Presence is
// scoped to accepted connections only, so strangers and pending
// requesters never learn whether a user is online.
type AudienceSource interface {
	AcceptedPartnerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type OnlinePayload struct {
	UserID uuid.UUID `json:"userId"`
}

type OfflinePayload struct {
	UserID   uuid.UUID `json:"userId"`
	LastSeen time.Time `json:"lastSeen"`
}

// Service owns the presence lifecycle: session registration, the
// online/offline broadcasts, and last-seen bookkeeping. It also serves
// as the delivery router's session source, so a dead handle detected
// mid-push goes through the same disconnect path as a closed socket.
type Service struct {
	registry *Registry
	audience AudienceSource
	lastSeen LastSeenStore
	pusher   delivery.Pusher
	logger   logger.Logger
}

func NewService(registry *Registry, audience AudienceSource, lastSeen LastSeenStore, logger logger.Logger) *Service {
	return &Service{
		registry: registry,
		audience: audience,
		lastSeen: lastSeen,
		logger:   logger,
	}
}

// AttachPusher completes the wiring. The router needs the service as its
// session source and the service needs the router to broadcast, so the
// pusher is attached once at startup, before any session registers.
func (s *Service) AttachPusher(p delivery.Pusher) { s.pusher = p }

// Connect registers a live session. The presence.online broadcast fires
// only on the empty -> non-empty transition, so a second tab is silent.
func (s *Service) Connect(ctx context.Context, userID uuid.UUID, session delivery.Session) {
	wentOnline := s.registry.Register(userID, session)
	s.logger.Info("session registered", "user_id", userID, "session_id", session.ID(), "went_online", wentOnline)
	if !wentOnline {
		return
	}
	s.broadcast(ctx, userID, delivery.Event{
		Type:    delivery.EventPresenceOnline,
		Payload: OnlinePayload{UserID: userID},
	})
}

// Disconnect unregisters a session. presence.offline fires only when the
// last session goes; other devices keep the user online (no eager
// offline on a single disconnect).
func (s *Service) Disconnect(ctx context.Context, userID uuid.UUID, sessionID string) {
	wentOffline := s.registry.Unregister(userID, sessionID)
	if !wentOffline {
		return
	}

	now := time.Now().UTC()
	if err := s.lastSeen.Record(ctx, userID, now); err != nil {
		s.logger.Warn("failed to record last seen", "user_id", userID, "err", err)
	}

	s.broadcast(ctx, userID, delivery.Event{
		Type:    delivery.EventPresenceOffline,
		Payload: OfflinePayload{UserID: userID, LastSeen: now},
	})
}

// SessionsFor implements delivery.SessionSource.
func (s *Service) SessionsFor(userID uuid.UUID) []delivery.Session {
	return s.registry.SessionsFor(userID)
}

// Drop implements delivery.SessionSource: the implicit unregister for a
// handle whose send failed.
func (s *Service) Drop(userID uuid.UUID, sessionID string) {
	s.Disconnect(context.Background(), userID, sessionID)
}

func (s *Service) IsOnline(userID uuid.UUID) bool { return s.registry.IsOnline(userID) }

func (s *Service) LastSeen(ctx context.Context, userID uuid.UUID) (time.Time, error) {
	return s.lastSeen.Get(ctx, userID)
}

// Shutdown clears the registry; clients must re-register on reconnect.
func (s *Service) Shutdown() { s.registry.Reset() }

func (s *Service) broadcast(ctx context.Context, about uuid.UUID, event delivery.Event) {
	partners, err := s.audience.AcceptedPartnerIDs(ctx, about)
	if err != nil {
		s.logger.Error("failed to resolve presence audience", "user_id", about, "err", err)
		return
	}
	for _, partner := range partners {
		s.pusher.Push(partner, event)
	}
}
