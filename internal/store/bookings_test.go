package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uturns/booking-agent/internal/models"
)

func TestBookingsRemoveByIDHitsBothLists(t *testing.T) {
	b := NewBookings()
	b.SetCompanyBookings([]models.Booking{{ID: "b1"}, {ID: "b2"}})
	b.SetMine([]models.Booking{{ID: "b2"}, {ID: "b3"}})

	b.RemoveByID("b2")

	st := b.Get()
	assert.Equal(t, []models.Booking{{ID: "b1"}}, st.Company)
	assert.Equal(t, []models.Booking{{ID: "b3"}}, st.Mine)
}

func TestBookingsRemoveByIDIsIdempotent(t *testing.T) {
	b := NewBookings()
	b.SetCompanyBookings([]models.Booking{{ID: "b1"}})

	b.RemoveByID("b1")
	// entrega duplicada do mesmo evento
	b.RemoveByID("b1")
	b.RemoveByID("nunca-existiu")

	st := b.Get()
	assert.Empty(t, st.Company)
	assert.Empty(t, st.Mine)
	assert.Empty(t, st.Error)
}

func TestBookingsAppend(t *testing.T) {
	b := NewBookings()
	b.Append(models.Booking{ID: "b1", Status: models.StatusPending})

	st := b.Get()
	assert.Len(t, st.Company, 1)
	assert.Equal(t, models.StatusPending, st.Company[0].Status)
	assert.False(t, st.Loading)
}

func TestBookingsFailClearsLoading(t *testing.T) {
	b := NewBookings()
	b.SetLoading()

	b.Fail("Não foi possível carregar o painel.")

	st := b.Get()
	assert.False(t, st.Loading)
	assert.Equal(t, "Não foi possível carregar o painel.", st.Error)
}
