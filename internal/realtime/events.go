package realtime

import (
	"encoding/json"

	"github.com/uturns/booking-agent/internal/models"
)

// Eventos nomeados que o backend empurra pelo canal. O conjunto é
// fechado; evento desconhecido é logado e descartado.
const (
	EventCancelBook    = "cancel_book"
	EventUpdateProfile = "update_profile"
)

// Frame é o envelope de todo tráfego do canal, nas duas direções.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type CancelBookPayload struct {
	BookingID string `json:"bookingId"`
}

type UpdateProfilePayload struct {
	Action  string         `json:"action"`
	Profile models.Company `json:"profile"`
}
