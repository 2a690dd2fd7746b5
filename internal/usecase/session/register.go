package session

import (
	"context"
	"errors"
	"log"

	"github.com/uturns/booking-agent/internal/activity"
	"github.com/uturns/booking-agent/internal/catalog"
	"github.com/uturns/booking-agent/internal/gateway"
	sessiontoken "github.com/uturns/booking-agent/internal/session"
	"github.com/uturns/booking-agent/internal/store"
	"github.com/uturns/booking-agent/internal/upload"
	"github.com/uturns/booking-agent/internal/validators"
)

type Register struct {
	gw       *gateway.Client
	sessions *store.Session
	company  *store.CompanyStore
	activity *activity.Dispatcher
}

func NewRegister(
	gw *gateway.Client,
	sessions *store.Session,
	company *store.CompanyStore,
	act *activity.Dispatcher,
) *Register {
	return &Register{
		gw:       gw,
		sessions: sessions,
		company:  company,
		activity: act,
	}
}

// Execute cadastra o negócio (multipart, logo opcional) e já deixa a
// sessão logada com o que o backend devolveu.
func (uc *Register) Execute(
	ctx context.Context,
	params gateway.RegisterBusinessParams,
	logo []byte,
) error {

	if field, missing := validators.MissingField(
		validators.Field{Name: "company_name", Value: params.CompanyName},
		validators.Field{Name: "owner_name", Value: params.OwnerName},
		validators.Field{Name: "email", Value: params.Email},
		validators.Field{Name: "password", Value: params.Password},
	); missing {
		return errors.New("campo obrigatório vazio: " + field)
	}

	if !validators.IsEmailShapeValid(params.Email) {
		return errors.New("e-mail inválido")
	}

	if params.Category != "" && !catalog.IsValidCategory(params.Category) {
		return errors.New("categoria desconhecida")
	}

	logoName := ""
	if len(logo) > 0 {
		normalized, err := upload.NormalizeLogo(logo)
		if err != nil {
			// cadastro segue sem logo; o perfil sobe depois
			log.Printf("register: logo descartado: %v", err)
			logo = nil
		} else {
			logo = normalized
			logoName = "logo.webp"
		}
	}

	resp, err := uc.gw.RegisterBusiness(ctx, params, logo, logoName)
	if err != nil {
		return err
	}

	user := sessiontoken.Merge(resp.User, resp.Token)
	uc.sessions.SetLogged(user, resp.Token)
	if resp.Company != nil {
		uc.company.SetCompany(*resp.Company)
	}

	uc.activity.Dispatch(activity.Event{
		Kind:   "session",
		Action: "business_registered",
		Metadata: map[string]string{
			"user_id": user.ID,
		},
	})

	return nil
}
