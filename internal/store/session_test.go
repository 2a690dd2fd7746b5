package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uturns/booking-agent/internal/localstore"
	"github.com/uturns/booking-agent/internal/models"
)

func TestSessionPersistsAndReseeds(t *testing.T) {
	kv := localstore.NewMemory()

	first := NewSession(kv)
	first.SetLogged(models.User{ID: "u1", Email: "dona@salao.com"}, "tok-123")

	raw, err := kv.Get(context.Background(), KeyIsLogged)
	require.NoError(t, err)
	assert.Equal(t, "true", string(raw))

	// um agente novo sobre o mesmo armazenamento recupera a sessão
	second := NewSession(kv)
	st := second.Get()

	assert.True(t, st.IsLogged)
	assert.Equal(t, "u1", st.User.ID)
	assert.Equal(t, "tok-123", st.Token)
	assert.False(t, st.Loading)
	assert.Empty(t, st.Error)
}

func TestSessionClearResetsPersistedState(t *testing.T) {
	kv := localstore.NewMemory()

	s := NewSession(kv)
	s.SetLogged(models.User{ID: "u1"}, "tok")
	s.Clear()

	assert.False(t, s.Get().IsLogged)
	assert.Empty(t, s.Get().Token)

	raw, err := kv.Get(context.Background(), KeyIsLogged)
	require.NoError(t, err)
	assert.Equal(t, "false", string(raw))

	blob, err := kv.Get(context.Background(), KeySession)
	require.NoError(t, err)
	assert.Nil(t, blob)
}

func TestSessionSeedIgnoresCorruptedBlob(t *testing.T) {
	kv := localstore.NewMemory()
	require.NoError(t, kv.Put(context.Background(), KeySession, []byte("{broken")))

	s := NewSession(kv)

	assert.False(t, s.Get().IsLogged)
	assert.Empty(t, s.Get().User.ID)
}

func TestSessionFailClearsLoading(t *testing.T) {
	s := NewSession(localstore.NewMemory())

	s.SetLoading()
	assert.True(t, s.Get().Loading)

	s.Fail("E-mail ou senha incorretos.")

	st := s.Get()
	assert.False(t, st.Loading)
	assert.Equal(t, "E-mail ou senha incorretos.", st.Error)
	assert.False(t, st.IsLogged)
}
