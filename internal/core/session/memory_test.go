package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	s := New(3, "trainer", time.Hour)

	require.NoError(t, m.Save(ctx, s))
	got, err := m.Load(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(3), got.ActorID)
	assert.Equal(t, "trainer", got.Role)

	require.NoError(t, m.Delete(ctx, s.ID))
	_, err = m.Load(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	s := New(3, "trainer", time.Minute)
	require.NoError(t, m.Save(ctx, s))

	m.now = func() time.Time { return s.ExpiresAt.Add(time.Second) }
	_, err := m.Load(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreSaveSweepsExpired(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	stale := New(1, "client", time.Minute)
	require.NoError(t, m.Save(ctx, stale))

	// Within the sweep interval nothing is scanned.
	m.now = func() time.Time { return stale.ExpiresAt.Add(-30 * time.Second) }
	require.NoError(t, m.Save(ctx, New(2, "client", time.Hour)))
	assert.Len(t, m.sessions, 2)

	m.now = func() time.Time { return stale.ExpiresAt.Add(time.Second) }
	fresh := New(3, "hr", time.Hour)
	require.NoError(t, m.Save(ctx, fresh))

	assert.NotContains(t, m.sessions, stale.ID)
	assert.Contains(t, m.sessions, fresh.ID)
	assert.Len(t, m.sessions, 2)
}

func TestSessionIDsAreUnique(t *testing.T) {
	a, b := New(1, "hr", time.Hour), New(1, "hr", time.Hour)
	assert.NotEqual(t, a.ID, b.ID)
}
