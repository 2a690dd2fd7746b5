package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uturns/booking-agent/internal/gateway"
	"github.com/uturns/booking-agent/internal/httperr"
	"github.com/uturns/booking-agent/internal/httpresp"
	"github.com/uturns/booking-agent/internal/models"
	"github.com/uturns/booking-agent/internal/store"
)

type ScheduleHandler struct {
	gw        *gateway.Client
	schedules *store.SchedulesStore
	company   *store.CompanyStore
}

func NewScheduleHandler(
	gw *gateway.Client,
	schedules *store.SchedulesStore,
	company *store.CompanyStore,
) *ScheduleHandler {
	return &ScheduleHandler{
		gw:        gw,
		schedules: schedules,
		company:   company,
	}
}

func (h *ScheduleHandler) activeCompanyID(c *gin.Context) (string, bool) {
	id := h.company.Get().Company.ID
	if id == "" {
		httperr.BadRequest(c, "no_active_company", "Nenhuma empresa ativa.")
		return "", false
	}
	return id, true
}

// refresh refaz o fetch de funcionários depois de cada escrita; o
// backend é a fonte, o store só espelha.
func (h *ScheduleHandler) refresh(c *gin.Context, companyID string) {
	items := h.gw.ListEmployees(c.Request.Context(), companyID)
	if items == nil {
		h.schedules.Fail("Não foi possível recarregar as agendas.")
		return
	}
	h.schedules.SetEmployees(items)
}

func (h *ScheduleHandler) ListEmployees(c *gin.Context) {
	companyID, ok := h.activeCompanyID(c)
	if !ok {
		return
	}

	h.schedules.SetLoading()

	items := h.gw.ListEmployees(c.Request.Context(), companyID)
	if items == nil {
		h.schedules.Fail("Não foi possível carregar as agendas.")
		httperr.Unavailable(c, "schedule_list_failed", "Não foi possível carregar as agendas.")
		return
	}

	h.schedules.SetEmployees(items)
	httpresp.List(c, items)
}

func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	companyID, ok := h.activeCompanyID(c)
	if !ok {
		return
	}

	var sc models.Schedule
	if err := c.ShouldBindJSON(&sc); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}
	sc.CompanyID = companyID

	created := h.gw.CreateSchedule(c.Request.Context(), sc)
	if created == nil {
		httperr.BadRequest(c, "schedule_create_failed", "Não foi possível criar a agenda.")
		return
	}

	h.refresh(c, companyID)
	httpresp.Created(c, created)
}

func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	companyID, ok := h.activeCompanyID(c)
	if !ok {
		return
	}

	var sc models.Schedule
	if err := c.ShouldBindJSON(&sc); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}
	sc.ID = c.Param("id")
	sc.CompanyID = companyID

	updated := h.gw.UpdateSchedule(c.Request.Context(), sc)
	if updated == nil {
		httperr.BadRequest(c, "schedule_update_failed", "Não foi possível salvar a agenda.")
		return
	}

	h.refresh(c, companyID)
	c.JSON(http.StatusOK, updated)
}

func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	companyID, ok := h.activeCompanyID(c)
	if !ok {
		return
	}

	employeeID := c.Param("employeeId")
	scheduleID := c.Param("id")

	if !h.gw.DeleteSchedule(c.Request.Context(), companyID, employeeID, scheduleID) {
		httperr.BadRequest(c, "schedule_delete_failed", "Não foi possível remover a agenda.")
		return
	}

	h.refresh(c, companyID)
	c.JSON(http.StatusOK, gin.H{"deleted": scheduleID})
}
