package store

import (
	"context"
	"encoding/json"
	"log"

	"github.com/uturns/booking-agent/internal/localstore"
)

type LoginFormState struct {
	Email      string `json:"email"`
	Password   string `json:"-"`
	Remember   bool   `json:"remember"`
	Submitting bool   `json:"submitting"`
	Error      string `json:"error,omitempty"`
}

// rememberBlob é a única parte do formulário que sobrevive ao restart:
// e-mail pré-preenchido quando o usuário marcou "lembrar".
type rememberBlob struct {
	Email    string `json:"email"`
	Remember bool   `json:"remember"`
}

// LoginForm é o estado do formulário de login. Senha nunca persiste.
type LoginForm struct {
	*Container[LoginFormState]
	kv localstore.KV
}

func NewLoginForm(kv localstore.KV) *LoginForm {
	l := &LoginForm{
		Container: New(seedLoginForm(kv)),
		kv:        kv,
	}
	l.SetMirror(l.persist)
	return l
}

func seedLoginForm(kv localstore.KV) LoginFormState {
	var st LoginFormState

	raw, err := kv.Get(context.Background(), KeyRemember)
	if err != nil || raw == nil {
		return st
	}

	var blob rememberBlob
	if err := json.Unmarshal(raw, &blob); err != nil {
		return st
	}
	if blob.Remember {
		st.Email = blob.Email
		st.Remember = true
	}
	return st
}

func (l *LoginForm) persist(st LoginFormState) {
	ctx := context.Background()

	if !st.Remember {
		if err := l.kv.Delete(ctx, KeyRemember); err != nil {
			log.Printf("login_form: falha ao limpar remember: %v", err)
		}
		return
	}

	raw, err := json.Marshal(rememberBlob{Email: st.Email, Remember: true})
	if err != nil {
		return
	}
	if err := l.kv.Put(ctx, KeyRemember, raw); err != nil {
		log.Printf("login_form: falha ao persistir remember: %v", err)
	}
}

func (l *LoginForm) SetFields(email, password string, remember bool) {
	l.Update(func(st LoginFormState) LoginFormState {
		st.Email = email
		st.Password = password
		st.Remember = remember
		return st
	})
}

func (l *LoginForm) SetSubmitting() {
	l.Update(func(st LoginFormState) LoginFormState {
		st.Submitting = true
		st.Error = ""
		return st
	})
}

func (l *LoginForm) Fail(msg string) {
	l.Update(func(st LoginFormState) LoginFormState {
		st.Submitting = false
		st.Error = msg
		return st
	})
}

// Reset zera o formulário, preservando o e-mail lembrado.
func (l *LoginForm) Reset() {
	l.Update(func(st LoginFormState) LoginFormState {
		next := LoginFormState{}
		if st.Remember {
			next.Email = st.Email
			next.Remember = true
		}
		return next
	})
}
