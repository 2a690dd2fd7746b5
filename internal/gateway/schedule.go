package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/uturns/booking-agent/internal/dto"
	"github.com/uturns/booking-agent/internal/models"
)

// ===============================
// Funcionários / agenda
// ===============================
//
// Todos ENGOLEM a falha.

func (c *Client) ListEmployees(ctx context.Context, companyID string) []models.Employee {
	path := fmt.Sprintf("/companies/%s/employees", companyID)

	var out []models.Employee
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		c.swallow("schedule.list_employees", err)
		return nil
	}
	c.count("schedule.list_employees", "ok")
	return out
}

func (c *Client) CreateSchedule(ctx context.Context, sc models.Schedule) *models.Schedule {
	path := fmt.Sprintf("/companies/%s/employees/%s/schedules", sc.CompanyID, sc.EmployeeID)

	var out models.Schedule
	if err := c.do(ctx, http.MethodPost, path, sc, &out); err != nil {
		c.swallow("schedule.create", err)
		return nil
	}
	c.count("schedule.create", "ok")
	return &out
}

func (c *Client) UpdateSchedule(ctx context.Context, sc models.Schedule) *models.Schedule {
	path := fmt.Sprintf("/companies/%s/employees/%s/schedules/%s", sc.CompanyID, sc.EmployeeID, sc.ID)

	var out models.Schedule
	if err := c.do(ctx, http.MethodPatch, path, sc, &out); err != nil {
		c.swallow("schedule.update", err)
		return nil
	}
	c.count("schedule.update", "ok")
	return &out
}

func (c *Client) DeleteSchedule(ctx context.Context, companyID, employeeID, scheduleID string) bool {
	path := fmt.Sprintf("/companies/%s/employees/%s/schedules/%s", companyID, employeeID, scheduleID)

	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		c.swallow("schedule.delete", err)
		return false
	}
	c.count("schedule.delete", "ok")
	return true
}

// Aggregate é o fetch único da entrada do dashboard. ENGOLE a falha;
// o carregador trata nil como falha e marca erro nos stores.
func (c *Client) Aggregate(ctx context.Context, companyID string) *dto.DashboardAggregate {
	path := fmt.Sprintf("/companies/%s/dashboard", companyID)

	var out dto.DashboardAggregate
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		c.swallow("schedule.aggregate", err)
		return nil
	}
	c.count("schedule.aggregate", "ok")
	return &out
}
