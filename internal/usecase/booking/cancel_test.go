package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uturns/booking-agent/internal/activity"
	"github.com/uturns/booking-agent/internal/config"
	"github.com/uturns/booking-agent/internal/gateway"
	"github.com/uturns/booking-agent/internal/httperr"
	"github.com/uturns/booking-agent/internal/localstore"
	"github.com/uturns/booking-agent/internal/models"
	"github.com/uturns/booking-agent/internal/store"
)

func newGateway(t *testing.T, handler http.HandlerFunc) *gateway.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{APIBaseURL: srv.URL, GatewayTimeout: 5 * time.Second}
	return gateway.NewClient(cfg, nil, nil)
}

func newActivity() *activity.Dispatcher {
	return activity.NewDispatcher(activity.New(localstore.NewMemory()))
}

func TestCancelRemovesFromLocalLists(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/b1/cancel", r.URL.Path)
		json.NewEncoder(w).Encode(models.Booking{ID: "b1", Status: models.StatusCancelled})
	})

	bookings := store.NewBookings()
	bookings.SetCompanyBookings([]models.Booking{{ID: "b1"}})
	bookings.SetMine([]models.Booking{{ID: "b1"}})

	uc := NewCancel(gw, bookings, newActivity())
	require.NoError(t, uc.Execute(context.Background(), "b1"))

	st := bookings.Get()
	assert.Empty(t, st.Company)
	assert.Empty(t, st.Mine)
}

func TestCancelBackendFailureKeepsBooking(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	bookings := store.NewBookings()
	bookings.SetCompanyBookings([]models.Booking{{ID: "b1"}})

	uc := NewCancel(gw, bookings, newActivity())
	err := uc.Execute(context.Background(), "b1")

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "booking_cancel_failed"))

	st := bookings.Get()
	assert.Len(t, st.Company, 1)
	assert.NotEmpty(t, st.Error)
}

func TestCreateAppendsOnSuccess(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Booking{ID: "b1", Status: models.StatusPending})
	})

	bookings := store.NewBookings()
	uc := NewCreate(gw, bookings, newActivity())

	bk, err := uc.Execute(context.Background(), gateway.CreateBookingParams{
		CompanyID: "c1",
		ServiceID: "s1",
	})

	require.NoError(t, err)
	assert.Equal(t, "b1", bk.ID)
	assert.Len(t, bookings.Get().Company, 1)
}

func TestCreateBackendFailure(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	bookings := store.NewBookings()
	uc := NewCreate(gw, bookings, newActivity())

	bk, err := uc.Execute(context.Background(), gateway.CreateBookingParams{CompanyID: "c1"})

	require.Error(t, err)
	assert.Nil(t, bk)
	assert.True(t, httperr.IsBusiness(err, "booking_create_failed"))
	assert.Empty(t, bookings.Get().Company)
}
