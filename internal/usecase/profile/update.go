package profile

import (
	"context"
	"log"

	"github.com/uturns/booking-agent/internal/activity"
	"github.com/uturns/booking-agent/internal/gateway"
	"github.com/uturns/booking-agent/internal/httperr"
	"github.com/uturns/booking-agent/internal/models"
	"github.com/uturns/booking-agent/internal/realtime"
	"github.com/uturns/booking-agent/internal/store"
	"github.com/uturns/booking-agent/internal/upload"
)

type Update struct {
	gw       *gateway.Client
	company  *store.CompanyStore
	uploader *upload.Uploader
	channel  *realtime.Channel
	activity *activity.Dispatcher
}

func NewUpdate(
	gw *gateway.Client,
	company *store.CompanyStore,
	uploader *upload.Uploader,
	channel *realtime.Channel,
	act *activity.Dispatcher,
) *Update {
	return &Update{
		gw:       gw,
		company:  company,
		uploader: uploader,
		channel:  channel,
		activity: act,
	}
}

// Execute atualiza o perfil da empresa ativa. Logo novo sobe antes pro
// bucket e entra na chamada como URL. Depois da escrita confirmada, o
// agente reemite update_profile no canal para as outras sessões.
func (uc *Update) Execute(
	ctx context.Context,
	params gateway.UpdateProfileParams,
	logo []byte,
) (*models.Company, error) {

	current := uc.company.Get()
	if !current.Loaded {
		return nil, httperr.ErrBusiness("no_active_company")
	}

	uc.company.SetLoading()

	if len(logo) > 0 {
		url, err := uc.uploader.UploadLogo(ctx, logo)
		if err != nil {
			uc.company.Fail("Não foi possível subir o logo.")
			return nil, err
		}
		params.LogoURL = url
	}

	updated, err := uc.gw.UpdateProfile(ctx, current.Company.ID, params)
	if err != nil {
		uc.company.Fail("Não foi possível salvar o perfil.")
		return nil, err
	}

	uc.company.SetCompany(*updated)

	// reemissão: falha aqui não desfaz a atualização local
	if err := uc.channel.Emit(realtime.EventUpdateProfile, realtime.UpdateProfilePayload{
		Action:  "updated",
		Profile: *updated,
	}); err != nil {
		log.Printf("profile: reemissão de update_profile falhou: %v", err)
	}

	uc.activity.Dispatch(activity.Event{
		Kind:   "profile",
		Action: "profile_updated",
		Metadata: map[string]string{
			"company_id": updated.ID,
		},
	})

	return updated, nil
}
