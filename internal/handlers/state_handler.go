package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/uturns/booking-agent/internal/activity"
	"github.com/uturns/booking-agent/internal/catalog"
	"github.com/uturns/booking-agent/internal/httpresp"
	"github.com/uturns/booking-agent/internal/store"
)

// StateHandler expõe snapshots de leitura dos stores; é o que as
// telas consomem.
type StateHandler struct {
	stores   *store.Stores
	activity *activity.Logger
}

func NewStateHandler(stores *store.Stores, act *activity.Logger) *StateHandler {
	return &StateHandler{stores: stores, activity: act}
}

func (h *StateHandler) Session(c *gin.Context) {
	st := h.stores.Session.Get()
	// o token não sai do agente
	st.Token = ""
	httpresp.OK(c, st)
}

func (h *StateHandler) Company(c *gin.Context) {
	st := h.stores.Company.Get()
	// o snapshot segue a mesma regra da persistência
	st.Company = st.Company.StripSensitive()
	httpresp.OK(c, st)
}

func (h *StateHandler) Bookings(c *gin.Context) {
	httpresp.OK(c, h.stores.Bookings.Get())
}

func (h *StateHandler) Services(c *gin.Context) {
	httpresp.OK(c, h.stores.Services.Get())
}

func (h *StateHandler) Schedules(c *gin.Context) {
	httpresp.OK(c, h.stores.Schedules.Get())
}

func (h *StateHandler) PaymentAccount(c *gin.Context) {
	st := h.stores.PaymentAccount.Get()
	st.Account.AccessToken = ""
	httpresp.OK(c, st)
}

func (h *StateHandler) LoginForm(c *gin.Context) {
	httpresp.OK(c, h.stores.LoginForm.Get())
}

func (h *StateHandler) Activity(c *gin.Context) {
	httpresp.List(c, h.activity.List())
}

func (h *StateHandler) Categories(c *gin.Context) {
	httpresp.List(c, catalog.Categories())
}
