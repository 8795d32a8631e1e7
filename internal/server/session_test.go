package server

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func TestManagerLifecycle(t *testing.T) {
	m := NewManager(ManagerOptions{InitialTiles: 2})

	s, err := m.Create(1)
	require.NoError(t, err)
	assert.Len(t, s.ID, 12)
	assert.Equal(t, 1, m.Len())

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, m.Delete(s.ID))
	_, err = m.Get(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, m.Delete(s.ID), ErrSessionNotFound)
}

func TestManagerMaxSessions(t *testing.T) {
	m := NewManager(ManagerOptions{MaxSessions: 1})

	_, err := m.Create(1)
	require.NoError(t, err)
	_, err = m.Create(2)
	assert.ErrorIs(t, err, ErrTooManySessions)
}

func TestSessionCooldownWrapsSentinel(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	m := NewManager(ManagerOptions{Cooldown: 200 * time.Millisecond, Now: clock.Now})
	s, err := m.Create(5)
	require.NoError(t, err)

	_, _, err = s.Move(t2048.DirLeft)
	require.NoError(t, err)

	_, _, err = s.Move(t2048.DirLeft)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCooldown))
	assert.Equal(t, 200*time.Millisecond, s.RetryAfter())
}

func TestSessionZeroSeedUsesClock(t *testing.T) {
	clock := &fakeClock{now: time.Unix(42, 0)}
	m := NewManager(ManagerOptions{Now: clock.Now})

	s, err := m.Create(0)
	require.NoError(t, err)
	assert.Equal(t, time.Unix(42, 0).UnixNano(), s.Seed)
}
