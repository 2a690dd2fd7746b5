package realtime

import (
	"encoding/json"
	"log"

	"github.com/uturns/booking-agent/internal/activity"
	"github.com/uturns/booking-agent/internal/metrics"
	"github.com/uturns/booking-agent/internal/store"
)

// Dispatcher recebe os frames do canal e roteia cada evento para a
// mutação de store que ele afeta. Os stores não conhecem o transporte.
//
// Os handlers são replace/remove idempotentes de propósito: o canal não
// garante ordem nem unicidade de entrega.
type Dispatcher struct {
	bookings *store.BookingsStore
	company  *store.CompanyStore

	activity *activity.Dispatcher
	metrics  *metrics.Metrics

	queue chan Frame
}

func NewDispatcher(
	bookings *store.BookingsStore,
	company *store.CompanyStore,
	act *activity.Dispatcher,
	m *metrics.Metrics,
) *Dispatcher {
	d := &Dispatcher{
		bookings: bookings,
		company:  company,
		activity: act,
		metrics:  m,
		queue:    make(chan Frame, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for frame := range d.queue {
		d.handle(frame)
	}
}

// Dispatch enfileira um frame recebido. Fila cheia descarta: o canal
// não tem replay mesmo, e o agente nunca pode travar o loop de leitura.
func (d *Dispatcher) Dispatch(frame Frame) {
	select {
	case d.queue <- frame:
	default:
		log.Println("realtime queue full, dropping event:", frame.Event)
	}
}

func (d *Dispatcher) handle(frame Frame) {
	if d.metrics != nil {
		d.metrics.RealtimeEvents.WithLabelValues(frame.Event).Inc()
	}

	switch frame.Event {

	case EventCancelBook:
		var payload CancelBookPayload
		if err := json.Unmarshal(frame.Data, &payload); err != nil || payload.BookingID == "" {
			log.Printf("realtime: payload inválido em %s: %v", frame.Event, err)
			return
		}

		// remove das duas listas; id ausente é no-op
		d.bookings.RemoveByID(payload.BookingID)
		d.countMutation("bookings")
		d.record("booking_cancelled_remote", payload.BookingID)

	case EventUpdateProfile:
		var payload UpdateProfilePayload
		if err := json.Unmarshal(frame.Data, &payload); err != nil || payload.Profile.ID == "" {
			log.Printf("realtime: payload inválido em %s: %v", frame.Event, err)
			return
		}

		// só aplica se a identidade bater com a empresa ativa
		if d.company.ApplyProfileUpdate(payload.Profile) {
			d.countMutation("company")
			d.record("profile_updated_remote", payload.Profile.ID)
		}

	default:
		log.Println("realtime: evento desconhecido:", frame.Event)
	}
}

func (d *Dispatcher) countMutation(storeName string) {
	if d.metrics != nil {
		d.metrics.StoreMutations.WithLabelValues(storeName, "realtime").Inc()
	}
}

func (d *Dispatcher) record(action, entityID string) {
	if d.activity != nil {
		d.activity.Dispatch(activity.Event{
			Kind:     "realtime",
			Action:   action,
			Metadata: map[string]string{"id": entityID},
		})
	}
}
