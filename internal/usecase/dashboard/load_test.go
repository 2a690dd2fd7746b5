package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uturns/booking-agent/internal/config"
	"github.com/uturns/booking-agent/internal/dto"
	"github.com/uturns/booking-agent/internal/gateway"
	"github.com/uturns/booking-agent/internal/httperr"
	"github.com/uturns/booking-agent/internal/models"
	"github.com/uturns/booking-agent/internal/store"
)

func newLoad(t *testing.T, handler http.HandlerFunc) (*Load, *store.BookingsStore, *store.ServicesStore, *store.SchedulesStore) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{APIBaseURL: srv.URL, GatewayTimeout: 5 * time.Second}
	gw := gateway.NewClient(cfg, nil, nil)

	bookings := store.NewBookings()
	services := store.NewServices()
	schedules := store.NewSchedules()

	return NewLoad(gw, bookings, services, schedules), bookings, services, schedules
}

func TestLoadFailureMarksAllStores(t *testing.T) {
	uc, bookings, services, schedules := newLoad(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := uc.Execute(context.Background(), "c1", "u1")

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "dashboard_load_failed"))

	for _, st := range []struct {
		loading bool
		errMsg  string
	}{
		{bookings.Get().Loading, bookings.Get().Error},
		{services.Get().Loading, services.Get().Error},
		{schedules.Get().Loading, schedules.Get().Error},
	} {
		assert.False(t, st.loading)
		assert.NotEmpty(t, st.errMsg)
	}
}

func TestLoadPopulatesStoresFromAggregate(t *testing.T) {
	agg := dto.DashboardAggregate{
		Bookings:  []models.Booking{{ID: "b1"}},
		Services:  []models.Service{{ID: "s1"}},
		Employees: []models.Employee{{ID: "e1"}},
	}
	mine := []models.Booking{{ID: "b9"}}

	uc, bookings, services, schedules := newLoad(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/companies/c1/dashboard":
			json.NewEncoder(w).Encode(agg)
		case "/users/u1/bookings":
			json.NewEncoder(w).Encode(mine)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	require.NoError(t, uc.Execute(context.Background(), "c1", "u1"))

	assert.Equal(t, agg.Bookings, bookings.Get().Company)
	assert.Equal(t, mine, bookings.Get().Mine)
	assert.Equal(t, agg.Services, services.Get().Items)
	assert.Equal(t, agg.Employees, schedules.Get().Employees)
	assert.False(t, bookings.Get().Loading)
}

func TestLoadKeepsCompanyDataWhenMineFetchFails(t *testing.T) {
	uc, bookings, _, _ := newLoad(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/companies/c1/dashboard" {
			json.NewEncoder(w).Encode(dto.DashboardAggregate{
				Bookings: []models.Booking{{ID: "b1"}},
			})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	})

	require.NoError(t, uc.Execute(context.Background(), "c1", "u1"))

	st := bookings.Get()
	assert.Len(t, st.Company, 1)
	assert.Empty(t, st.Mine)
	assert.Empty(t, st.Error)
}
