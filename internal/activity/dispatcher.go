package activity

import "log"

type Event struct {
	Kind     string
	Action   string
	Metadata any
}

// Dispatcher desacopla quem registra atividade da escrita no
// armazenamento: fila em memória drenada por um worker.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(ev.Kind, ev.Action, ev.Metadata); err != nil {
			log.Println("activity error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos o registro (nunca travar o agente)
		log.Println("activity queue full, dropping event")
	}
}
