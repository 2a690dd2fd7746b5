package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uturns/booking-agent/internal/gateway"
	"github.com/uturns/booking-agent/internal/httperr"
	"github.com/uturns/booking-agent/internal/httpresp"
	ucSession "github.com/uturns/booking-agent/internal/usecase/session"
)

type AuthHandler struct {
	gw       *gateway.Client
	loginUC  *ucSession.Login
	logoutUC *ucSession.Logout
	regUC    *ucSession.Register
}

func NewAuthHandler(
	gw *gateway.Client,
	loginUC *ucSession.Login,
	logoutUC *ucSession.Logout,
	regUC *ucSession.Register,
) *AuthHandler {
	return &AuthHandler{
		gw:       gw,
		loginUC:  loginUC,
		logoutUC: logoutUC,
		regUC:    regUC,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember"`
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if err := h.loginUC.Execute(c.Request.Context(), req.Email, req.Password, req.Remember); err != nil {
		// a mensagem já ficou no store; aqui vai o código
		httperr.Unauthorized(c, "login_failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"logged": true})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.logoutUC.Execute()
	c.JSON(http.StatusOK, gin.H{"logged": false})
}

func (h *AuthHandler) Register(c *gin.Context) {
	params := gateway.RegisterBusinessParams{
		CompanyName: c.PostForm("company_name"),
		Category:    c.PostForm("category"),
		Phone:       c.PostForm("phone"),
		Address:     c.PostForm("address"),
		Timezone:    c.PostForm("timezone"),
		OwnerName:   c.PostForm("owner_name"),
		Email:       c.PostForm("email"),
		Password:    c.PostForm("password"),
	}

	var logo []byte
	if file, err := c.FormFile("logo"); err == nil {
		f, err := file.Open()
		if err == nil {
			logo, _ = io.ReadAll(f)
			f.Close()
		}
	}

	if err := h.regUC.Execute(c.Request.Context(), params, logo); err != nil {
		httperr.BadRequest(c, "register_failed", err.Error())
		return
	}

	httpresp.Created(c, gin.H{"registered": true})
}

func (h *AuthHandler) PasswordReset(c *gin.Context) {
	var req PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	// endpoint que engole falha: a resposta é sempre a mesma
	h.gw.RequestPasswordReset(c.Request.Context(), req.Email)
	c.JSON(http.StatusOK, gin.H{"sent": true})
}
