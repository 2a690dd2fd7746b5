package store

import "github.com/uturns/booking-agent/internal/models"

type BookingsState struct {
	// Agenda da empresa e reservas feitas pelo usuário logado.
	Company []models.Booking `json:"company"`
	Mine    []models.Booking `json:"mine"`

	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// BookingsStore é volátil: vive só na memória da sessão do agente.
type BookingsStore struct {
	*Container[BookingsState]
}

func NewBookings() *BookingsStore {
	return &BookingsStore{Container: New(BookingsState{})}
}

func (b *BookingsStore) SetLoading() {
	b.Update(func(st BookingsState) BookingsState {
		st.Loading = true
		st.Error = ""
		return st
	})
}

func (b *BookingsStore) SetCompanyBookings(items []models.Booking) {
	b.Update(func(st BookingsState) BookingsState {
		st.Company = items
		st.Loading = false
		st.Error = ""
		return st
	})
}

func (b *BookingsStore) SetMine(items []models.Booking) {
	b.Update(func(st BookingsState) BookingsState {
		st.Mine = items
		st.Loading = false
		st.Error = ""
		return st
	})
}

func (b *BookingsStore) Append(bk models.Booking) {
	b.Update(func(st BookingsState) BookingsState {
		st.Company = append(st.Company, bk)
		st.Loading = false
		st.Error = ""
		return st
	})
}

// RemoveByID tira a reserva das duas listas numa passada só.
// Remover um id ausente é no-op: eventos duplicados chegam.
func (b *BookingsStore) RemoveByID(id string) {
	b.Update(func(st BookingsState) BookingsState {
		st.Company = withoutBooking(st.Company, id)
		st.Mine = withoutBooking(st.Mine, id)
		return st
	})
}

func (b *BookingsStore) Fail(msg string) {
	b.Update(func(st BookingsState) BookingsState {
		st.Loading = false
		st.Error = msg
		return st
	})
}

func withoutBooking(items []models.Booking, id string) []models.Booking {
	out := items[:0:0]
	for _, bk := range items {
		if bk.ID != id {
			out = append(out, bk)
		}
	}
	if out == nil {
		return []models.Booking{}
	}
	return out
}
