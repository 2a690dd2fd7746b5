package store

import (
	"context"
	"encoding/json"
	"log"

	"github.com/uturns/booking-agent/internal/localstore"
	"github.com/uturns/booking-agent/internal/models"
)

type CompanyState struct {
	Company models.Company `json:"company"`
	Loaded  bool           `json:"loaded"`

	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// CompanyStore guarda a empresa ativa. Persiste o registro sem o
// sub-objeto de pagamento. Só o gateway de perfil e o canal realtime
// escrevem aqui.
type CompanyStore struct {
	*Container[CompanyState]
	kv localstore.KV
}

func NewCompany(kv localstore.KV) *CompanyStore {
	c := &CompanyStore{
		Container: New(seedCompany(kv)),
		kv:        kv,
	}
	c.SetMirror(c.persist)
	return c
}

func seedCompany(kv localstore.KV) CompanyState {
	var st CompanyState

	raw, err := kv.Get(context.Background(), KeyCompany)
	if err != nil || raw == nil {
		return st
	}

	var company models.Company
	if err := json.Unmarshal(raw, &company); err != nil {
		log.Printf("company: blob persistido inválido, ignorando: %v", err)
		return st
	}

	st.Company = company
	st.Loaded = company.ID != ""
	return st
}

func (c *CompanyStore) persist(st CompanyState) {
	if !st.Loaded {
		return
	}

	raw, err := json.Marshal(st.Company.StripSensitive())
	if err != nil {
		return
	}
	if err := c.kv.Put(context.Background(), KeyCompany, raw); err != nil {
		log.Printf("company: falha ao persistir: %v", err)
	}
}

func (c *CompanyStore) SetLoading() {
	c.Update(func(st CompanyState) CompanyState {
		st.Loading = true
		st.Error = ""
		return st
	})
}

func (c *CompanyStore) SetCompany(company models.Company) {
	c.Update(func(st CompanyState) CompanyState {
		st.Company = company
		st.Loaded = true
		st.Loading = false
		st.Error = ""
		return st
	})
}

// ApplyProfileUpdate troca a empresa ativa se a identidade do payload
// bater. Payload de outra empresa é ignorado.
func (c *CompanyStore) ApplyProfileUpdate(company models.Company) bool {
	applied := false
	c.Update(func(st CompanyState) CompanyState {
		if !st.Loaded || st.Company.ID != company.ID {
			return st
		}
		st.Company = company
		applied = true
		return st
	})
	return applied
}

func (c *CompanyStore) Fail(msg string) {
	c.Update(func(st CompanyState) CompanyState {
		st.Loading = false
		st.Error = msg
		return st
	})
}

func (c *CompanyStore) Clear() {
	c.Replace(CompanyState{})
	if err := c.kv.Delete(context.Background(), KeyCompany); err != nil {
		log.Printf("company: falha ao limpar blob: %v", err)
	}
}
