package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uturns/booking-agent/internal/gateway"
	"github.com/uturns/booking-agent/internal/httperr"
	"github.com/uturns/booking-agent/internal/httpresp"
	"github.com/uturns/booking-agent/internal/models"
	"github.com/uturns/booking-agent/internal/store"
	ucBooking "github.com/uturns/booking-agent/internal/usecase/booking"
	ucDashboard "github.com/uturns/booking-agent/internal/usecase/dashboard"
)

type BookingHandler struct {
	gw       *gateway.Client
	stores   *store.Stores
	createUC *ucBooking.Create
	cancelUC *ucBooking.Cancel
	loadUC   *ucDashboard.Load
}

func NewBookingHandler(
	gw *gateway.Client,
	stores *store.Stores,
	createUC *ucBooking.Create,
	cancelUC *ucBooking.Cancel,
	loadUC *ucDashboard.Load,
) *BookingHandler {
	return &BookingHandler{
		gw:       gw,
		stores:   stores,
		createUC: createUC,
		cancelUC: cancelUC,
		loadUC:   loadUC,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	CompanyID  string    `json:"company_id" binding:"required"`
	ServiceID  string    `json:"service_id" binding:"required"`
	EmployeeID string    `json:"employee_id"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	Notes      string    `json:"notes"`
}

// --------- Handlers ---------

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	bk, err := h.createUC.Execute(c.Request.Context(), gateway.CreateBookingParams{
		CompanyID:  req.CompanyID,
		ServiceID:  req.ServiceID,
		EmployeeID: req.EmployeeID,
		StartTime:  req.StartTime,
		Notes:      req.Notes,
	})
	if err != nil {
		httperr.BadRequest(c, "booking_create_failed", "Não foi possível criar a reserva.")
		return
	}

	httpresp.Created(c, bk)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id := c.Param("id")

	if err := h.cancelUC.Execute(c.Request.Context(), id); err != nil {
		httperr.BadRequest(c, "booking_cancel_failed", "Não foi possível cancelar a reserva.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"cancelled": id})
}

func (h *BookingHandler) Complete(c *gin.Context) {
	id := c.Param("id")

	bk := h.gw.CompleteBooking(c.Request.Context(), id)
	if bk == nil {
		httperr.BadRequest(c, "booking_complete_failed", "Não foi possível concluir a reserva.")
		return
	}

	// substitui na lista da empresa sem tocar no slice antigo
	h.stores.Bookings.Update(func(st store.BookingsState) store.BookingsState {
		next := make([]models.Booking, len(st.Company))
		for i, it := range st.Company {
			if it.ID == bk.ID {
				it = *bk
			}
			next[i] = it
		}
		st.Company = next
		return st
	})

	c.JSON(http.StatusOK, bk)
}

// RefreshDashboard é o gatilho do agregador de entrada do painel.
func (h *BookingHandler) RefreshDashboard(c *gin.Context) {
	sess := h.stores.Session.Get()
	companyID := h.stores.Company.Get().Company.ID
	if companyID == "" {
		companyID = sess.User.CompanyID
	}
	if companyID == "" {
		httperr.BadRequest(c, "no_active_company", "Nenhuma empresa ativa.")
		return
	}

	if err := h.loadUC.Execute(c.Request.Context(), companyID, sess.User.ID); err != nil {
		httperr.Unavailable(c, "dashboard_load_failed", "Não foi possível carregar o painel.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"loaded": true})
}
