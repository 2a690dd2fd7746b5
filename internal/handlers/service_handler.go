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

// ServiceHandler faz o CRUD de serviços direto no gateway e reflete o
// resultado no store. Cada tela refaz o fetch, não há invalidação.
type ServiceHandler struct {
	gw       *gateway.Client
	services *store.ServicesStore
	company  *store.CompanyStore
}

func NewServiceHandler(
	gw *gateway.Client,
	services *store.ServicesStore,
	company *store.CompanyStore,
) *ServiceHandler {
	return &ServiceHandler{
		gw:       gw,
		services: services,
		company:  company,
	}
}

func (h *ServiceHandler) activeCompanyID(c *gin.Context) (string, bool) {
	id := h.company.Get().Company.ID
	if id == "" {
		httperr.BadRequest(c, "no_active_company", "Nenhuma empresa ativa.")
		return "", false
	}
	return id, true
}

func (h *ServiceHandler) List(c *gin.Context) {
	companyID, ok := h.activeCompanyID(c)
	if !ok {
		return
	}

	h.services.SetLoading()

	items := h.gw.ListServices(c.Request.Context(), companyID)
	if items == nil {
		h.services.Fail("Não foi possível carregar os serviços.")
		httperr.Unavailable(c, "service_list_failed", "Não foi possível carregar os serviços.")
		return
	}

	h.services.SetItems(items)
	httpresp.List(c, items)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	companyID, ok := h.activeCompanyID(c)
	if !ok {
		return
	}

	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}
	svc.CompanyID = companyID

	created := h.gw.CreateService(c.Request.Context(), svc)
	if created == nil {
		httperr.BadRequest(c, "service_create_failed", "Não foi possível criar o serviço.")
		return
	}

	h.services.Upsert(*created)
	httpresp.Created(c, created)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	companyID, ok := h.activeCompanyID(c)
	if !ok {
		return
	}

	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}
	svc.ID = c.Param("id")
	svc.CompanyID = companyID

	updated := h.gw.UpdateService(c.Request.Context(), svc)
	if updated == nil {
		httperr.BadRequest(c, "service_update_failed", "Não foi possível salvar o serviço.")
		return
	}

	h.services.Upsert(*updated)
	c.JSON(http.StatusOK, updated)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	companyID, ok := h.activeCompanyID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if !h.gw.DeleteService(c.Request.Context(), companyID, id) {
		httperr.BadRequest(c, "service_delete_failed", "Não foi possível remover o serviço.")
		return
	}

	h.services.RemoveByID(id)
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
