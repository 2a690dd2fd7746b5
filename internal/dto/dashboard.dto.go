package dto

import "github.com/uturns/booking-agent/internal/models"

// DashboardAggregate é o payload do fetch agregado que o backend devolve
// na entrada do dashboard: reservas, serviços e funcionários da empresa
// numa resposta só.
type DashboardAggregate struct {
	Bookings  []models.Booking  `json:"bookings"`
	Services  []models.Service  `json:"services"`
	Employees []models.Employee `json:"employees"`
}
