package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/uturns/booking-agent/internal/models"
)

// ===============================
// Empresa / perfil
// ===============================

// GetCompany ENGOLE a falha.
func (c *Client) GetCompany(ctx context.Context, companyID string) *models.Company {
	path := fmt.Sprintf("/companies/%s", companyID)

	var out models.Company
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		c.swallow("business.get", err)
		return nil
	}
	c.count("business.get", "ok")
	return &out
}

// ListCompanies ENGOLE a falha.
func (c *Client) ListCompanies(ctx context.Context, category string) []models.Company {
	path := "/companies"
	if category != "" {
		path += "?category=" + category
	}

	var out []models.Company
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		c.swallow("business.list", err)
		return nil
	}
	c.count("business.list", "ok")
	return out
}

type UpdateProfileParams struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Category string `json:"category,omitempty"`
	LogoURL  string `json:"logo_url,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

// UpdateProfile PROPAGA o erro: o fluxo de perfil precisa saber que a
// escrita aconteceu antes de reemitir update_profile no canal.
func (c *Client) UpdateProfile(
	ctx context.Context,
	companyID string,
	params UpdateProfileParams,
) (*models.Company, error) {
	path := fmt.Sprintf("/companies/%s", companyID)

	var out models.Company
	if err := c.do(ctx, http.MethodPatch, path, params, &out); err != nil {
		return nil, c.finish("business.update_profile", err)
	}
	c.count("business.update_profile", "ok")
	return &out, nil
}
