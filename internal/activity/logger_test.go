package activity

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uturns/booking-agent/internal/localstore"
)

func TestLoggerAppendsAndLists(t *testing.T) {
	l := New(localstore.NewMemory())

	require.NoError(t, l.Log("session", "login", map[string]string{"user_id": "u1"}))
	require.NoError(t, l.Log("realtime", "booking_cancelled_remote", nil))

	entries := l.List()
	require.Len(t, entries, 2)
	assert.Equal(t, "login", entries[0].Action)
	assert.Equal(t, "booking_cancelled_remote", entries[1].Action)
	assert.False(t, entries[0].At.IsZero())
}

func TestLoggerCapsHistory(t *testing.T) {
	l := New(localstore.NewMemory())

	for i := 0; i < maxEntries+20; i++ {
		require.NoError(t, l.Log("test", fmt.Sprintf("a%d", i), nil))
	}

	entries := l.List()
	require.Len(t, entries, maxEntries)

	// sobrevivem as mais recentes
	assert.Equal(t, "a20", entries[0].Action)
	assert.Equal(t, fmt.Sprintf("a%d", maxEntries+19), entries[len(entries)-1].Action)
}

func TestLoggerRestartsOnCorruptedHistory(t *testing.T) {
	kv := localstore.NewMemory()
	require.NoError(t, kv.Put(context.Background(), key, []byte("{broken")))

	l := New(kv)
	assert.Empty(t, l.List())

	require.NoError(t, l.Log("test", "primeiro", nil))
	assert.Len(t, l.List(), 1)
}
