package models

import "time"

// ===============================
// Booking Status
// ===============================

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusPending   BookingStatus = "pending"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

type Booking struct {
	ID         string        `json:"id"`
	CompanyID  string        `json:"company_id"`
	CustomerID string        `json:"customer_id"`
	ServiceID  string        `json:"service_id"`
	EmployeeID string        `json:"employee_id,omitempty"`
	Status     BookingStatus `json:"status"`
	StartTime  time.Time     `json:"start_time"`
	EndTime    time.Time     `json:"end_time"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
