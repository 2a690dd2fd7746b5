package models

import (
	"time"

	"github.com/uturns/booking-agent/internal/timezone"
)

type Employee struct {
	ID        string     `json:"id"`
	CompanyID string     `json:"company_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Schedules []Schedule `json:"schedules,omitempty"`
}

// Schedule é uma janela de disponibilidade semanal de um funcionário.
// Horários no formato "15:04", interpretados no fuso da empresa.
type Schedule struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	CompanyID  string `json:"company_id"`
	Weekday    int    `json:"weekday"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Active     bool   `json:"active"`
}

// WindowOn materializa a janela no dia informado, no fuso da empresa.
func (s Schedule) WindowOn(day time.Time, tz string) (start, end time.Time, ok bool) {
	if !s.Active || s.StartTime == "" || s.EndTime == "" {
		return time.Time{}, time.Time{}, false
	}

	loc := timezone.Location(tz)

	parseHM := func(hm string) (time.Time, error) {
		t, err := time.Parse("15:04", hm)
		if err != nil {
			return time.Time{}, err
		}
		return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
	}

	st, err1 := parseHM(s.StartTime)
	en, err2 := parseHM(s.EndTime)
	if err1 != nil || err2 != nil || !en.After(st) {
		return time.Time{}, time.Time{}, false
	}
	return st, en, true
}
