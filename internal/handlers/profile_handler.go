package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uturns/booking-agent/internal/catalog"
	"github.com/uturns/booking-agent/internal/gateway"
	"github.com/uturns/booking-agent/internal/httperr"
	"github.com/uturns/booking-agent/internal/httpresp"
	ucProfile "github.com/uturns/booking-agent/internal/usecase/profile"
)

type ProfileHandler struct {
	gw       *gateway.Client
	updateUC *ucProfile.Update
}

func NewProfileHandler(gw *gateway.Client, updateUC *ucProfile.Update) *ProfileHandler {
	return &ProfileHandler{gw: gw, updateUC: updateUC}
}

// Update recebe multipart: campos do perfil mais um logo opcional.
func (h *ProfileHandler) Update(c *gin.Context) {
	params := gateway.UpdateProfileParams{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Phone:    c.PostForm("phone"),
		Address:  c.PostForm("address"),
		Category: c.PostForm("category"),
		Timezone: c.PostForm("timezone"),
	}

	if params.Category != "" && !catalog.IsValidCategory(params.Category) {
		httperr.BadRequest(c, "invalid_category", "Categoria desconhecida.")
		return
	}

	var logo []byte
	if file, err := c.FormFile("logo"); err == nil {
		f, err := file.Open()
		if err == nil {
			logo, _ = io.ReadAll(f)
			f.Close()
		}
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), params, logo)
	if err != nil {
		if httperr.IsBusiness(err, "no_active_company") {
			httperr.BadRequest(c, "no_active_company", "Nenhuma empresa ativa.")
			return
		}
		httperr.BadRequest(c, "profile_update_failed", "Não foi possível salvar o perfil.")
		return
	}

	c.JSON(http.StatusOK, updated.StripSensitive())
}

// Companies lista empresas públicas, com filtro opcional por categoria.
func (h *ProfileHandler) Companies(c *gin.Context) {
	items := h.gw.ListCompanies(c.Request.Context(), c.Query("category"))
	if items == nil {
		httperr.Unavailable(c, "company_list_failed", "Não foi possível listar as empresas.")
		return
	}

	httpresp.List(c, items)
}
