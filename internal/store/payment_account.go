package store

import (
	"context"
	"encoding/json"
	"log"

	"github.com/uturns/booking-agent/internal/localstore"
	"github.com/uturns/booking-agent/internal/models"
)

type PaymentAccountState struct {
	Account models.MPAccount `json:"account"`
	Loaded  bool             `json:"loaded"`

	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// PaymentAccountStore guarda o perfil de vínculo MercadoPago do
// vendedor, persistido em chave própria.
type PaymentAccountStore struct {
	*Container[PaymentAccountState]
	kv localstore.KV
}

func NewPaymentAccount(kv localstore.KV) *PaymentAccountStore {
	p := &PaymentAccountStore{
		Container: New(seedPaymentAccount(kv)),
		kv:        kv,
	}
	p.SetMirror(p.persist)
	return p
}

func seedPaymentAccount(kv localstore.KV) PaymentAccountState {
	var st PaymentAccountState

	raw, err := kv.Get(context.Background(), KeyMPAccount)
	if err != nil || raw == nil {
		return st
	}

	var acc models.MPAccount
	if err := json.Unmarshal(raw, &acc); err != nil {
		log.Printf("payment_account: blob persistido inválido, ignorando: %v", err)
		return st
	}

	st.Account = acc
	st.Loaded = acc.UserID != ""
	return st
}

func (p *PaymentAccountStore) persist(st PaymentAccountState) {
	if !st.Loaded {
		return
	}

	raw, err := json.Marshal(st.Account)
	if err != nil {
		return
	}
	if err := p.kv.Put(context.Background(), KeyMPAccount, raw); err != nil {
		log.Printf("payment_account: falha ao persistir: %v", err)
	}
}

func (p *PaymentAccountStore) SetAccount(acc models.MPAccount) {
	p.Update(func(st PaymentAccountState) PaymentAccountState {
		st.Account = acc
		st.Loaded = true
		st.Loading = false
		st.Error = ""
		return st
	})
}

func (p *PaymentAccountStore) Fail(msg string) {
	p.Update(func(st PaymentAccountState) PaymentAccountState {
		st.Loading = false
		st.Error = msg
		return st
	})
}

func (p *PaymentAccountStore) Clear() {
	p.Replace(PaymentAccountState{})
	if err := p.kv.Delete(context.Background(), KeyMPAccount); err != nil {
		log.Printf("payment_account: falha ao limpar blob: %v", err)
	}
}
