package gateway

import (
	"context"
	"errors"
	"net/http"

	"github.com/uturns/booking-agent/internal/models"
)

// ===============================
// Autenticação
// ===============================

type LoginResponse struct {
	User    models.User     `json:"user"`
	Company *models.Company `json:"company,omitempty"`
	Token   string          `json:"token"`
}

type RegisterBusinessParams struct {
	CompanyName string
	Category    string
	Phone       string
	Address     string
	Timezone    string

	OwnerName string
	Email     string
	Password  string
}

// Login autentica no backend. PROPAGA o erro: o chamador mapeia o
// código do provedor para a mensagem do usuário.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}

	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", body, &out)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			err = AuthError{Code: apiErr.Code}
		}
		return nil, c.finish("auth.login", err)
	}

	if out.Token == "" {
		// 2xx sem token é resposta inválida, não sessão.
		return nil, c.finish("auth.login", ErrInvalidResponse)
	}

	c.count("auth.login", "ok")
	return &out, nil
}

// RegisterBusiness cadastra o negócio com logo via multipart. PROPAGA.
func (c *Client) RegisterBusiness(
	ctx context.Context,
	params RegisterBusinessParams,
	logo []byte,
	logoName string,
) (*LoginResponse, error) {

	fields := map[string]string{
		"company_name": params.CompanyName,
		"category":     params.Category,
		"phone":        params.Phone,
		"address":      params.Address,
		"timezone":     params.Timezone,
		"owner_name":   params.OwnerName,
		"email":        params.Email,
		"password":     params.Password,
	}

	var out LoginResponse
	err := c.doMultipart(ctx, "/auth/register", fields, "logo", logoName, logo, &out)
	if err != nil {
		return nil, c.finish("auth.register", err)
	}

	c.count("auth.register", "ok")
	return &out, nil
}

// RequestPasswordReset dispara o e-mail de redefinição. ENGOLE: falha
// vira log e o fluxo segue como se nada tivesse acontecido.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) {
	body := map[string]string{"email": email}

	if err := c.do(ctx, http.MethodPost, "/auth/password-reset", body, nil); err != nil {
		c.swallow("auth.password_reset", err)
		return
	}
	c.count("auth.password_reset", "ok")
}
