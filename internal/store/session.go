package store

import (
	"context"
	"encoding/json"
	"log"
	"strconv"

	"github.com/uturns/booking-agent/internal/localstore"
	"github.com/uturns/booking-agent/internal/models"
)

type SessionState struct {
	User     models.User `json:"user"`
	Token    string      `json:"token"`
	IsLogged bool        `json:"is_logged"`

	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// Session guarda a sessão ativa. Persiste o blob da sessão e o flag de
// login em chaves separadas, e é semeado delas na construção.
type Session struct {
	*Container[SessionState]
	kv localstore.KV
}

func NewSession(kv localstore.KV) *Session {
	s := &Session{
		Container: New(seedSession(kv)),
		kv:        kv,
	}
	s.SetMirror(s.persist)
	return s
}

// seedSession lê o estado persistido. Qualquer falha cai no default vazio.
func seedSession(kv localstore.KV) SessionState {
	var st SessionState

	ctx := context.Background()

	if raw, err := kv.Get(ctx, KeySession); err == nil && raw != nil {
		if err := json.Unmarshal(raw, &st); err != nil {
			log.Printf("session: blob persistido inválido, ignorando: %v", err)
			st = SessionState{}
		}
	}

	if raw, err := kv.Get(ctx, KeyIsLogged); err == nil && raw != nil {
		if logged, err := strconv.ParseBool(string(raw)); err == nil {
			st.IsLogged = logged
		}
	}

	st.Loading = false
	st.Error = ""
	return st
}

func (s *Session) persist(st SessionState) {
	ctx := context.Background()

	blob := SessionState{User: st.User, Token: st.Token, IsLogged: st.IsLogged}
	if raw, err := json.Marshal(blob); err == nil {
		if err := s.kv.Put(ctx, KeySession, raw); err != nil {
			log.Printf("session: falha ao persistir: %v", err)
		}
	}

	if err := s.kv.Put(ctx, KeyIsLogged, []byte(strconv.FormatBool(st.IsLogged))); err != nil {
		log.Printf("session: falha ao persistir flag: %v", err)
	}
}

func (s *Session) SetLoading() {
	s.Update(func(st SessionState) SessionState {
		st.Loading = true
		st.Error = ""
		return st
	})
}

func (s *Session) SetLogged(user models.User, token string) {
	s.Update(func(st SessionState) SessionState {
		st.User = user
		st.Token = token
		st.IsLogged = true
		st.Loading = false
		st.Error = ""
		return st
	})
}

func (s *Session) Fail(msg string) {
	s.Update(func(st SessionState) SessionState {
		st.Loading = false
		st.Error = msg
		return st
	})
}

// Clear encerra a sessão e remove o que estava persistido.
func (s *Session) Clear() {
	s.Replace(SessionState{})

	ctx := context.Background()
	if err := s.kv.Delete(ctx, KeySession); err != nil {
		log.Printf("session: falha ao limpar blob: %v", err)
	}
}
