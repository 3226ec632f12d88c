package presence

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/rahuljangu01/NEXUS/internal/delivery"
)

type stubSession struct{ id string }

func (s stubSession) ID() string                { return s.id }
func (s stubSession) Send(delivery.Event) error { return nil }

func TestRegistry_Transitions(t *testing.T) {
	userID := uuid.New()

	t.Run("first session brings the user online", func(t *testing.T) {
		r := NewRegistry()

		assert.True(t, r.Register(userID, stubSession{id: "a"}))
		assert.True(t, r.IsOnline(userID))
	})

	t.Run("second session is silent, user stays online", func(t *testing.T) {
		r := NewRegistry()
		r.Register(userID, stubSession{id: "a"})

		assert.False(t, r.Register(userID, stubSession{id: "b"}))
		assert.Len(t, r.SessionsFor(userID), 2)
	})

	t.Run("closing one of two sessions keeps the user online", func(t *testing.T) {
		r := NewRegistry()
		r.Register(userID, stubSession{id: "a"})
		r.Register(userID, stubSession{id: "b"})

		assert.False(t, r.Unregister(userID, "a"))
		assert.True(t, r.IsOnline(userID))
	})

	t.Run("closing the last session takes the user offline", func(t *testing.T) {
		r := NewRegistry()
		r.Register(userID, stubSession{id: "a"})

		assert.True(t, r.Unregister(userID, "a"))
		assert.False(t, r.IsOnline(userID))
		assert.Nil(t, r.SessionsFor(userID))
	})

	t.Run("unknown handle is a no-op", func(t *testing.T) {
		r := NewRegistry()
		r.Register(userID, stubSession{id: "a"})

		assert.False(t, r.Unregister(userID, "never-registered"))
		assert.False(t, r.Unregister(uuid.New(), "a"))
		assert.True(t, r.IsOnline(userID))
	})

	t.Run("re-registering the same id replaces, not duplicates", func(t *testing.T) {
		r := NewRegistry()
		r.Register(userID, stubSession{id: "a"})
		r.Register(userID, stubSession{id: "a"})

		assert.Len(t, r.SessionsFor(userID), 1)
		assert.True(t, r.Unregister(userID, "a"))
	})
}

func TestRegistry_Concurrent(t *testing.T) {
	r := NewRegistry()
	userID := uuid.New()

	const n = 64
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("session-%d", i)
			r.Register(userID, stubSession{id: id})
			r.SessionsFor(userID)
			r.Unregister(userID, id)
		}(i)
	}
	wg.Wait()

	assert.False(t, r.IsOnline(userID))
}

func TestRegistry_Reset(t *testing.T) {
	r := NewRegistry()
	a, b := uuid.New(), uuid.New()
	r.Register(a, stubSession{id: "a"})
	r.Register(b, stubSession{id: "b"})

	r.Reset()

	assert.False(t, r.IsOnline(a))
	assert.False(t, r.IsOnline(b))
}
