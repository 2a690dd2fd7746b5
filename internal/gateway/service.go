package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/uturns/booking-agent/internal/models"
)

// ===============================
// Serviços
// ===============================
//
// CRUD de serviços por empresa. Todos ENGOLEM a falha.

func (c *Client) ListServices(ctx context.Context, companyID string) []models.Service {
	path := fmt.Sprintf("/companies/%s/services", companyID)

	var out []models.Service
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		c.swallow("service.list", err)
		return nil
	}
	c.count("service.list", "ok")
	return out
}

func (c *Client) CreateService(ctx context.Context, svc models.Service) *models.Service {
	path := fmt.Sprintf("/companies/%s/services", svc.CompanyID)

	var out models.Service
	if err := c.do(ctx, http.MethodPost, path, svc, &out); err != nil {
		c.swallow("service.create", err)
		return nil
	}
	c.count("service.create", "ok")
	return &out
}

func (c *Client) UpdateService(ctx context.Context, svc models.Service) *models.Service {
	path := fmt.Sprintf("/companies/%s/services/%s", svc.CompanyID, svc.ID)

	var out models.Service
	if err := c.do(ctx, http.MethodPatch, path, svc, &out); err != nil {
		c.swallow("service.update", err)
		return nil
	}
	c.count("service.update", "ok")
	return &out
}

// DeleteService devolve false quando a remoção não aconteceu.
func (c *Client) DeleteService(ctx context.Context, companyID, serviceID string) bool {
	path := fmt.Sprintf("/companies/%s/services/%s", companyID, serviceID)

	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		c.swallow("service.delete", err)
		return false
	}
	c.count("service.delete", "ok")
	return true
}
