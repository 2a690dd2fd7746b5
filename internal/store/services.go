package store

import "github.com/uturns/booking-agent/internal/models"

type ServicesState struct {
	Items []models.Service `json:"items"`

	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// ServicesStore é volátil e sem política de invalidação: cada tela
// dispara um novo fetch e o resultado substitui o que havia.
type ServicesStore struct {
	*Container[ServicesState]
}

func NewServices() *ServicesStore {
	return &ServicesStore{Container: New(ServicesState{})}
}

func (s *ServicesStore) SetLoading() {
	s.Update(func(st ServicesState) ServicesState {
		st.Loading = true
		st.Error = ""
		return st
	})
}

func (s *ServicesStore) SetItems(items []models.Service) {
	s.Update(func(st ServicesState) ServicesState {
		st.Items = items
		st.Loading = false
		st.Error = ""
		return st
	})
}

func (s *ServicesStore) Upsert(svc models.Service) {
	s.Update(func(st ServicesState) ServicesState {
		for i, it := range st.Items {
			if it.ID == svc.ID {
				st.Items[i] = svc
				return st
			}
		}
		st.Items = append(st.Items, svc)
		return st
	})
}

func (s *ServicesStore) RemoveByID(id string) {
	s.Update(func(st ServicesState) ServicesState {
		out := st.Items[:0:0]
		for _, it := range st.Items {
			if it.ID != id {
				out = append(out, it)
			}
		}
		st.Items = out
		return st
	})
}

func (s *ServicesStore) Fail(msg string) {
	s.Update(func(st ServicesState) ServicesState {
		st.Loading = false
		st.Error = msg
		return st
	})
}
