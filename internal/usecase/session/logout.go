package session

import (
	"github.com/uturns/booking-agent/internal/activity"
	"github.com/uturns/booking-agent/internal/store"
)

type Logout struct {
	stores   *store.Stores
	activity *activity.Dispatcher
}

func NewLogout(stores *store.Stores, act *activity.Dispatcher) *Logout {
	return &Logout{stores: stores, activity: act}
}

// Execute encerra a sessão: limpa o que está persistido e zera os
// stores voláteis. O canal realtime continua como está.
func (uc *Logout) Execute() {
	userID := uc.stores.Session.Get().User.ID

	uc.stores.Session.Clear()
	uc.stores.Company.Clear()
	uc.stores.PaymentAccount.Clear()

	uc.stores.Bookings.Replace(store.BookingsState{})
	uc.stores.Services.Replace(store.ServicesState{})
	uc.stores.Schedules.Replace(store.SchedulesState{})
	uc.stores.LoginForm.Reset()

	uc.activity.Dispatch(activity.Event{
		Kind:   "session",
		Action: "logout",
		Metadata: map[string]string{
			"user_id": userID,
		},
	})
}
