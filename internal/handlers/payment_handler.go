package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uturns/booking-agent/internal/gateway"
	"github.com/uturns/booking-agent/internal/httperr"
	"github.com/uturns/booking-agent/internal/httpresp"
	"github.com/uturns/booking-agent/internal/mercadopago"
	"github.com/uturns/booking-agent/internal/store"
	ucPayment "github.com/uturns/booking-agent/internal/usecase/payment"
)

type PaymentHandler struct {
	gw       *gateway.Client
	company  *store.CompanyStore
	returnUC *ucPayment.Return
}

func NewPaymentHandler(
	gw *gateway.Client,
	company *store.CompanyStore,
	returnUC *ucPayment.Return,
) *PaymentHandler {
	return &PaymentHandler{
		gw:       gw,
		company:  company,
		returnUC: returnUC,
	}
}

// --------- Requests ---------

type CreatePreferenceRequest struct {
	BookingID string  `json:"booking_id" binding:"required"`
	Title     string  `json:"title" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	BackURL   string  `json:"back_url"`
}

type SubscriptionRequest struct {
	Plan string `json:"plan" binding:"required"`
}

// --------- Handlers ---------

// CreatePreference só funciona com conta MP vinculada na empresa ativa.
func (h *PaymentHandler) CreatePreference(c *gin.Context) {
	current := h.company.Get()
	if !current.Loaded {
		httperr.BadRequest(c, "no_active_company", "Nenhuma empresa ativa.")
		return
	}
	if !current.Company.PaymentLinked() {
		httperr.BadRequest(c, "payment_not_linked", "A empresa não tem conta de pagamento vinculada.")
		return
	}

	var req CreatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	pref, err := h.gw.CreatePreference(c.Request.Context(), gateway.CreatePreferenceParams{
		CompanyID: current.Company.ID,
		BookingID: req.BookingID,
		Title:     req.Title,
		Amount:    req.Amount,
		BackURL:   req.BackURL,
	})
	if err != nil {
		httperr.Unavailable(c, "preference_failed", "Não foi possível criar a preferência de pagamento.")
		return
	}

	httpresp.Created(c, pref)
}

// Return é o endpoint do redirect do checkout: o provedor manda o
// browser de volta com payment_id, status e payment_type na query.
func (h *PaymentHandler) Return(c *gin.Context) {
	params := mercadopago.ReturnParams{
		PaymentID:   c.Query("payment_id"),
		Status:      c.Query("status"),
		PaymentType: c.Query("payment_type"),
	}
	if params.PaymentID == "" {
		httperr.BadRequest(c, "invalid_return", "Retorno de pagamento sem payment_id.")
		return
	}

	result := h.returnUC.Execute(c.Request.Context(), params)
	c.JSON(http.StatusOK, result)
}

func (h *PaymentHandler) CreateSubscription(c *gin.Context) {
	current := h.company.Get()
	if !current.Loaded {
		httperr.BadRequest(c, "no_active_company", "Nenhuma empresa ativa.")
		return
	}

	var req SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	sub := h.gw.CreateSubscription(c.Request.Context(), current.Company.ID, req.Plan)
	if sub == nil {
		httperr.BadRequest(c, "subscription_failed", "Não foi possível criar a assinatura.")
		return
	}

	httpresp.Created(c, sub)
}

func (h *PaymentHandler) CancelSubscription(c *gin.Context) {
	sub := h.gw.CancelSubscription(c.Request.Context(), c.Param("id"))
	if sub == nil {
		httperr.BadRequest(c, "subscription_cancel_failed", "Não foi possível cancelar a assinatura.")
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *PaymentHandler) ReactivateSubscription(c *gin.Context) {
	sub := h.gw.ReactivateSubscription(c.Request.Context(), c.Param("id"))
	if sub == nil {
		httperr.BadRequest(c, "subscription_reactivate_failed", "Não foi possível reativar a assinatura.")
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *PaymentHandler) GetSubscription(c *gin.Context) {
	current := h.company.Get()
	if !current.Loaded {
		httperr.BadRequest(c, "no_active_company", "Nenhuma empresa ativa.")
		return
	}

	sub := h.gw.GetSubscription(c.Request.Context(), current.Company.ID)
	if sub == nil {
		httperr.NotFound(c, "subscription_not_found", "Nenhuma assinatura encontrada.")
		return
	}
	c.JSON(http.StatusOK, sub)
}
