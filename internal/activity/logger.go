// Package activity é o feed local de atividade do agente: eventos do
// canal realtime, falhas de gateway e retornos de pagamento, num
// histórico limitado persistido no armazenamento local.
package activity

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/uturns/booking-agent/internal/localstore"
)

const (
	key        = "uturns:activity"
	maxEntries = 100
)

type Entry struct {
	At       time.Time `json:"at"`
	Kind     string    `json:"kind"`
	Action   string    `json:"action"`
	Metadata any       `json:"metadata,omitempty"`
}

type Logger struct {
	mu sync.Mutex
	kv localstore.KV
}

func New(kv localstore.KV) *Logger {
	return &Logger{kv: kv}
}

func (l *Logger) Log(kind, action string, metadata any) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	ctx := context.Background()

	entries, _ := l.load(ctx)
	entries = append(entries, Entry{
		At:       time.Now(),
		Kind:     kind,
		Action:   action,
		Metadata: metadata,
	})
	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return l.kv.Put(ctx, key, raw)
}

func (l *Logger) List() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, _ := l.load(context.Background())
	return entries
}

func (l *Logger) load(ctx context.Context) ([]Entry, error) {
	raw, err := l.kv.Get(ctx, key)
	if err != nil || raw == nil {
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		// histórico corrompido recomeça vazio
		return nil, err
	}
	return entries, nil
}
