package dashboard

import (
	"context"

	"github.com/uturns/booking-agent/internal/gateway"
	"github.com/uturns/booking-agent/internal/httperr"
	"github.com/uturns/booking-agent/internal/store"
)

// Load é o agregador da entrada do dashboard: um fetch só e o payload
// abastece reservas, serviços e agenda de uma vez. Duas chamadas
// concorrentes não são deduplicadas: a que terminar por último vence.
type Load struct {
	gw        *gateway.Client
	bookings  *store.BookingsStore
	services  *store.ServicesStore
	schedules *store.SchedulesStore
}

func NewLoad(
	gw *gateway.Client,
	bookings *store.BookingsStore,
	services *store.ServicesStore,
	schedules *store.SchedulesStore,
) *Load {
	return &Load{
		gw:        gw,
		bookings:  bookings,
		services:  services,
		schedules: schedules,
	}
}

func (uc *Load) Execute(ctx context.Context, companyID, userID string) error {
	uc.bookings.SetLoading()
	uc.services.SetLoading()
	uc.schedules.SetLoading()

	agg := uc.gw.Aggregate(ctx, companyID)
	if agg == nil {
		const msg = "Não foi possível carregar o painel."
		uc.bookings.Fail(msg)
		uc.services.Fail(msg)
		uc.schedules.Fail(msg)
		return httperr.ErrBusiness("dashboard_load_failed")
	}

	uc.bookings.SetCompanyBookings(agg.Bookings)
	uc.services.SetItems(agg.Services)
	uc.schedules.SetEmployees(agg.Employees)

	// reservas do próprio usuário vêm num fetch à parte
	if userID != "" {
		if mine := uc.gw.ListUserBookings(ctx, userID); mine != nil {
			uc.bookings.SetMine(mine)
		}
	}

	return nil
}
