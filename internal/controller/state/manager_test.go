package state

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_SetGetClear(t *testing.T) {
	m := NewManager(time.Hour)
	artist := uuid.New()

	_, ok := m.Get(1)
	assert.False(t, ok)

	m.Set(1, Query{ArtistID: artist, Duration: 90})

	q, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, artist, q.ArtistID)
	assert.Equal(t, 90, q.Duration)
	assert.False(t, q.SetAt.IsZero())

	m.Clear(1)
	_, ok = m.Get(1)
	assert.False(t, ok)
}

func TestManager_Expires(t *testing.T) {
	m := NewManager(time.Minute)
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	m.Set(7, Query{ArtistID: uuid.New()})

	now = now.Add(2 * time.Minute)
	_, ok := m.Get(7)
	assert.False(t, ok)
}
