package store

import "github.com/uturns/booking-agent/internal/models"

type SchedulesState struct {
	Employees []models.Employee `json:"employees"`

	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// SchedulesStore carrega funcionários e janelas em bloco, junto do
// agregado do dashboard.
type SchedulesStore struct {
	*Container[SchedulesState]
}

func NewSchedules() *SchedulesStore {
	return &SchedulesStore{Container: New(SchedulesState{})}
}

func (s *SchedulesStore) SetLoading() {
	s.Update(func(st SchedulesState) SchedulesState {
		st.Loading = true
		st.Error = ""
		return st
	})
}

func (s *SchedulesStore) SetEmployees(items []models.Employee) {
	s.Update(func(st SchedulesState) SchedulesState {
		st.Employees = items
		st.Loading = false
		st.Error = ""
		return st
	})
}

func (s *SchedulesStore) Fail(msg string) {
	s.Update(func(st SchedulesState) SchedulesState {
		st.Loading = false
		st.Error = msg
		return st
	})
}
