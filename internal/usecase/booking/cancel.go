package booking

import (
	"context"

	"github.com/uturns/booking-agent/internal/activity"
	"github.com/uturns/booking-agent/internal/gateway"
	"github.com/uturns/booking-agent/internal/httperr"
	"github.com/uturns/booking-agent/internal/store"
)

type Cancel struct {
	gw       *gateway.Client
	bookings *store.BookingsStore
	activity *activity.Dispatcher
}

func NewCancel(
	gw *gateway.Client,
	bookings *store.BookingsStore,
	act *activity.Dispatcher,
) *Cancel {
	return &Cancel{
		gw:       gw,
		bookings: bookings,
		activity: act,
	}
}

// Execute cancela no backend e tira das listas locais. O evento
// cancel_book que o backend empurra de volta encontra o id já ausente
// e vira no-op; por isso a remoção é idempotente.
func (uc *Cancel) Execute(ctx context.Context, bookingID string) error {
	bk := uc.gw.CancelBooking(ctx, bookingID)
	if bk == nil {
		uc.bookings.Fail("Não foi possível cancelar a reserva.")
		return httperr.ErrBusiness("booking_cancel_failed")
	}

	uc.bookings.RemoveByID(bookingID)

	uc.activity.Dispatch(activity.Event{
		Kind:   "booking",
		Action: "booking_cancelled",
		Metadata: map[string]string{
			"booking_id": bookingID,
		},
	})

	return nil
}
