package session

import (
	"context"
	"errors"

	"github.com/uturns/booking-agent/internal/activity"
	"github.com/uturns/booking-agent/internal/gateway"
	sessiontoken "github.com/uturns/booking-agent/internal/session"
	"github.com/uturns/booking-agent/internal/store"
	"github.com/uturns/booking-agent/internal/validators"
)

type Login struct {
	gw       *gateway.Client
	sessions *store.Session
	company  *store.CompanyStore
	form     *store.LoginForm
	activity *activity.Dispatcher
}

func NewLogin(
	gw *gateway.Client,
	sessions *store.Session,
	company *store.CompanyStore,
	form *store.LoginForm,
	act *activity.Dispatcher,
) *Login {
	return &Login{
		gw:       gw,
		sessions: sessions,
		company:  company,
		form:     form,
		activity: act,
	}
}

func (uc *Login) Execute(ctx context.Context, email, password string, remember bool) error {
	uc.form.SetFields(email, password, remember)

	if field, missing := validators.MissingField(
		validators.Field{Name: "email", Value: email},
		validators.Field{Name: "password", Value: password},
	); missing {
		msg := "Preencha o campo " + field + "."
		uc.form.Fail(msg)
		return errors.New(msg)
	}

	uc.form.SetSubmitting()
	uc.sessions.SetLoading()

	resp, err := uc.gw.Login(ctx, email, password)
	if err != nil {
		msg := gateway.AuthMessage("")

		var authErr gateway.AuthError
		if errors.As(err, &authErr) {
			msg = authErr.Message()
		}

		uc.form.Fail(msg)
		uc.sessions.Fail(msg)
		return err
	}

	// o token completa o que o payload não trouxe (companyId, role)
	user := sessiontoken.Merge(resp.User, resp.Token)

	uc.sessions.SetLogged(user, resp.Token)
	if resp.Company != nil {
		uc.company.SetCompany(*resp.Company)
	}
	uc.form.Reset()

	uc.activity.Dispatch(activity.Event{
		Kind:   "session",
		Action: "login",
		Metadata: map[string]string{
			"user_id": user.ID,
		},
	})

	return nil
}
