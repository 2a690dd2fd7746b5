package realtime

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

var ErrChannelClosed = errors.New("realtime channel closed")

// Channel é a conexão de eventos com o backend: uma por processo,
// estabelecida na primeira necessidade. Reconexão fica desligada de
// propósito: conexão caída permanece caída até o próximo start do
// agente, e os stores seguem servindo o último estado conhecido.
type Channel struct {
	url        string
	dispatcher *Dispatcher

	mu     sync.Mutex
	conn   *websocket.Conn
	dialed bool
	dead   bool
}

func NewChannel(url string, dispatcher *Dispatcher) *Channel {
	return &Channel{
		url:        url,
		dispatcher: dispatcher,
	}
}

// ensure disca uma única vez e sobe o loop de leitura.
func (ch *Channel) ensure() (*websocket.Conn, error) {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if ch.dead {
		return nil, ErrChannelClosed
	}
	if ch.dialed {
		return ch.conn, nil
	}

	conn, _, err := websocket.DefaultDialer.Dial(ch.url, nil)
	if err != nil {
		ch.dead = true
		return nil, err
	}

	ch.conn = conn
	ch.dialed = true

	go ch.readLoop(conn)
	return conn, nil
}

// Open força a conexão (usada no start do agente). Falha é logada e o
// agente segue sem canal.
func (ch *Channel) Open() {
	if _, err := ch.ensure(); err != nil {
		log.Printf("realtime: canal indisponível: %v", err)
	}
}

func (ch *Channel) readLoop(conn *websocket.Conn) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			// sem reconexão: marca morto e sai
			log.Printf("realtime: conexão encerrada: %v", err)
			ch.mu.Lock()
			ch.dead = true
			ch.conn = nil
			ch.mu.Unlock()
			return
		}

		var frame Frame
		if err := json.Unmarshal(raw, &frame); err != nil {
			log.Printf("realtime: frame inválido: %v", err)
			continue
		}

		ch.dispatcher.Dispatch(frame)
	}
}

// Emit publica um evento no canal (o agente reemite update_profile
// depois de atualizar o perfil, para as outras sessões verem).
func (ch *Channel) Emit(event string, data any) error {
	conn, err := ch.ensure()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	frame := Frame{Event: event, Data: raw}

	ch.mu.Lock()
	defer ch.mu.Unlock()

	if ch.dead || ch.conn == nil {
		return ErrChannelClosed
	}
	return conn.WriteJSON(frame)
}

// Close encerra a conexão de vez (teardown do agente).
func (ch *Channel) Close() {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	ch.dead = true
	if ch.conn != nil {
		_ = ch.conn.Close()
		ch.conn = nil
	}
}
