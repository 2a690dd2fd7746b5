package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/uturns/booking-agent/internal/models"
)

// ===============================
// Reservas
// ===============================
//
// Todos os endpoints de reserva ENGOLEM a falha: devolvem nil depois de
// logar. Os stores tratam nil como "a operação não aconteceu".

type CreateBookingParams struct {
	CompanyID  string    `json:"company_id"`
	ServiceID  string    `json:"service_id"`
	EmployeeID string    `json:"employee_id,omitempty"`
	StartTime  time.Time `json:"start_time"`
	Notes      string    `json:"notes,omitempty"`
}

func (c *Client) CreateBooking(ctx context.Context, params CreateBookingParams) *models.Booking {
	var out models.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", params, &out); err != nil {
		c.swallow("booking.create", err)
		return nil
	}
	c.count("booking.create", "ok")
	return &out
}

func (c *Client) ListCompanyBookings(ctx context.Context, companyID string) []models.Booking {
	path := fmt.Sprintf("/companies/%s/bookings", companyID)

	var out []models.Booking
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		c.swallow("booking.list_company", err)
		return nil
	}
	c.count("booking.list_company", "ok")
	return out
}

func (c *Client) ListUserBookings(ctx context.Context, userID string) []models.Booking {
	path := fmt.Sprintf("/users/%s/bookings", userID)

	var out []models.Booking
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		c.swallow("booking.list_user", err)
		return nil
	}
	c.count("booking.list_user", "ok")
	return out
}

func (c *Client) CancelBooking(ctx context.Context, bookingID string) *models.Booking {
	path := fmt.Sprintf("/bookings/%s/cancel", bookingID)

	var out models.Booking
	if err := c.do(ctx, http.MethodPatch, path, nil, &out); err != nil {
		c.swallow("booking.cancel", err)
		return nil
	}
	c.count("booking.cancel", "ok")
	return &out
}

func (c *Client) CompleteBooking(ctx context.Context, bookingID string) *models.Booking {
	path := fmt.Sprintf("/bookings/%s/complete", bookingID)

	var out models.Booking
	if err := c.do(ctx, http.MethodPatch, path, nil, &out); err != nil {
		c.swallow("booking.complete", err)
		return nil
	}
	c.count("booking.complete", "ok")
	return &out
}
