package booking

import (
	"context"

	"github.com/uturns/booking-agent/internal/activity"
	"github.com/uturns/booking-agent/internal/gateway"
	"github.com/uturns/booking-agent/internal/httperr"
	"github.com/uturns/booking-agent/internal/models"
	"github.com/uturns/booking-agent/internal/store"
)

type Create struct {
	gw       *gateway.Client
	bookings *store.BookingsStore
	activity *activity.Dispatcher
}

func NewCreate(
	gw *gateway.Client,
	bookings *store.BookingsStore,
	act *activity.Dispatcher,
) *Create {
	return &Create{
		gw:       gw,
		bookings: bookings,
		activity: act,
	}
}

func (uc *Create) Execute(ctx context.Context, params gateway.CreateBookingParams) (*models.Booking, error) {
	uc.bookings.SetLoading()

	// gateway engole a falha: nil = não aconteceu
	bk := uc.gw.CreateBooking(ctx, params)
	if bk == nil {
		uc.bookings.Fail("Não foi possível criar a reserva.")
		return nil, httperr.ErrBusiness("booking_create_failed")
	}

	uc.bookings.Append(*bk)

	uc.activity.Dispatch(activity.Event{
		Kind:   "booking",
		Action: "booking_created",
		Metadata: map[string]string{
			"booking_id": bk.ID,
		},
	})

	return bk, nil
}
