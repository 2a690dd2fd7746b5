package store

import "github.com/uturns/booking-agent/internal/localstore"

// Stores agrupa todos os contêineres do agente para injeção.
type Stores struct {
	Session        *Session
	Company        *CompanyStore
	Bookings       *BookingsStore
	Services       *ServicesStore
	Schedules      *SchedulesStore
	LoginForm      *LoginForm
	PaymentAccount *PaymentAccountStore
}

func NewStores(kv localstore.KV) *Stores {
	return &Stores{
		Session:        NewSession(kv),
		Company:        NewCompany(kv),
		Bookings:       NewBookings(),
		Services:       NewServices(),
		Schedules:      NewSchedules(),
		LoginForm:      NewLoginForm(kv),
		PaymentAccount: NewPaymentAccount(kv),
	}
}
