package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uturns/booking-agent/internal/localstore"
)

func TestLoginFormRemembersEmailAcrossRestarts(t *testing.T) {
	kv := localstore.NewMemory()

	first := NewLoginForm(kv)
	first.SetFields("dona@salao.com", "123", true)
	first.Reset()

	second := NewLoginForm(kv)
	st := second.Get()

	assert.Equal(t, "dona@salao.com", st.Email)
	assert.True(t, st.Remember)
	assert.Empty(t, st.Password)
}

func TestLoginFormWithoutRememberPersistsNothing(t *testing.T) {
	kv := localstore.NewMemory()

	form := NewLoginForm(kv)
	form.SetFields("dona@salao.com", "123", false)

	raw, err := kv.Get(context.Background(), KeyRemember)
	require.NoError(t, err)
	assert.Nil(t, raw)

	second := NewLoginForm(kv)
	assert.Empty(t, second.Get().Email)
}

func TestLoginFormResetClearsErrorAndPassword(t *testing.T) {
	form := NewLoginForm(localstore.NewMemory())
	form.SetFields("dona@salao.com", "123", false)
	form.Fail("E-mail ou senha incorretos.")

	form.Reset()

	st := form.Get()
	assert.Empty(t, st.Email)
	assert.Empty(t, st.Password)
	assert.Empty(t, st.Error)
	assert.False(t, st.Submitting)
}
