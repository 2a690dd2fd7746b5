package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uturns/booking-agent/internal/localstore"
	"github.com/uturns/booking-agent/internal/models"
)

func TestCompanyApplyProfileUpdateMatchesIdentity(t *testing.T) {
	c := NewCompany(localstore.NewMemory())
	c.SetCompany(models.Company{ID: "c1", Name: "Salón Luna"})

	applied := c.ApplyProfileUpdate(models.Company{ID: "c1", Name: "Salón Sol"})

	assert.True(t, applied)
	assert.Equal(t, "Salón Sol", c.Get().Company.Name)
}

func TestCompanyApplyProfileUpdateIgnoresOtherCompany(t *testing.T) {
	c := NewCompany(localstore.NewMemory())
	c.SetCompany(models.Company{ID: "c1", Name: "Salón Luna"})

	applied := c.ApplyProfileUpdate(models.Company{ID: "c2", Name: "Otro"})

	assert.False(t, applied)
	assert.Equal(t, "Salón Luna", c.Get().Company.Name)
}

func TestCompanyApplyProfileUpdateNeedsLoadedCompany(t *testing.T) {
	c := NewCompany(localstore.NewMemory())

	applied := c.ApplyProfileUpdate(models.Company{ID: "c1"})

	assert.False(t, applied)
	assert.False(t, c.Get().Loaded)
}

func TestCompanyPersistStripsPaymentAccount(t *testing.T) {
	kv := localstore.NewMemory()
	c := NewCompany(kv)

	c.SetCompany(models.Company{
		ID:   "c1",
		Name: "Salón Luna",
		MercadoPago: &models.MPAccount{
			UserID:      "mp-1",
			AccessToken: "secreto",
			Linked:      true,
		},
	})

	raw, err := kv.Get(context.Background(), KeyCompany)
	require.NoError(t, err)
	require.NotNil(t, raw)

	var persisted models.Company
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Nil(t, persisted.MercadoPago)
	assert.Equal(t, "Salón Luna", persisted.Name)

	// o sub-objeto continua no estado em memória
	assert.NotNil(t, c.Get().Company.MercadoPago)
}

func TestCompanyReseedsFromLocalStore(t *testing.T) {
	kv := localstore.NewMemory()

	first := NewCompany(kv)
	first.SetCompany(models.Company{ID: "c1", Name: "Salón Luna"})

	second := NewCompany(kv)
	st := second.Get()

	assert.True(t, st.Loaded)
	assert.Equal(t, "c1", st.Company.ID)
}
