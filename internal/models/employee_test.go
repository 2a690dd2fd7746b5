package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleWindowOn(t *testing.T) {
	sc := Schedule{
		Weekday:   1,
		StartTime: "09:00",
		EndTime:   "18:00",
		Active:    true,
	}

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	start, end, ok := sc.WindowOn(day, "America/Argentina/Buenos_Aires")

	require.True(t, ok)
	assert.Equal(t, 9, start.Hour())
	assert.Equal(t, 18, end.Hour())
	assert.Equal(t, "America/Argentina/Buenos_Aires", start.Location().String())
	assert.True(t, end.After(start))
}

func TestScheduleWindowOnRejectsBadWindows(t *testing.T) {
	day := time.Now()

	cases := []Schedule{
		{Active: false, StartTime: "09:00", EndTime: "18:00"},
		{Active: true, StartTime: "", EndTime: "18:00"},
		{Active: true, StartTime: "18:00", EndTime: "09:00"},
		{Active: true, StartTime: "9am", EndTime: "18:00"},
	}
	for _, sc := range cases {
		_, _, ok := sc.WindowOn(day, "")
		assert.False(t, ok)
	}
}

func TestBookingStatusValid(t *testing.T) {
	for _, s := range []BookingStatus{StatusConfirmed, StatusPending, StatusCancelled, StatusCompleted} {
		assert.True(t, s.Valid())
	}
	assert.False(t, BookingStatus("deleted").Valid())
	assert.False(t, BookingStatus("").Valid())
}

func TestCompanyStripSensitive(t *testing.T) {
	c := Company{
		ID:          "c1",
		MercadoPago: &MPAccount{AccessToken: "secreto", Linked: true},
	}

	stripped := c.StripSensitive()
	assert.Nil(t, stripped.MercadoPago)
	assert.NotNil(t, c.MercadoPago)

	assert.True(t, c.PaymentLinked())
	assert.False(t, stripped.PaymentLinked())
	assert.False(t, Company{MercadoPago: &MPAccount{}}.PaymentLinked())
}
