// Package store contém os contêineres de estado do agente.
// Cada domínio tem um contêiner independente: leitura síncrona, update que
// notifica os assinantes e, quando o domínio pede, espelhamento no
// armazenamento local. Última escrita vence; não há merge nem versionamento.
package store

import "sync"

type Container[T any] struct {
	mu    sync.RWMutex
	state T

	subs map[uint64]func(T)
	next uint64

	// mirror espelha cada mutação no armazenamento persistente.
	mirror func(T)
}

func New[T any](initial T) *Container[T] {
	return &Container[T]{
		state: initial,
		subs:  make(map[uint64]func(T)),
	}
}

// SetMirror registra o espelhamento persistente. Deve ser chamado na
// construção do store, antes de qualquer mutação.
func (c *Container[T]) SetMirror(fn func(T)) {
	c.mu.Lock()
	c.mirror = fn
	c.mu.Unlock()
}

func (c *Container[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Replace troca o estado inteiro.
func (c *Container[T]) Replace(next T) {
	c.Update(func(T) T { return next })
}

// Update aplica fn sobre o estado atual e publica o resultado.
func (c *Container[T]) Update(fn func(T) T) {
	c.mu.Lock()
	c.state = fn(c.state)
	next := c.state
	mirror := c.mirror

	listeners := make([]func(T), 0, len(c.subs))
	for _, sub := range c.subs {
		listeners = append(listeners, sub)
	}
	c.mu.Unlock()

	if mirror != nil {
		mirror(next)
	}
	for _, l := range listeners {
		l(next)
	}
}

// Subscribe registra um leitor e devolve a função de cancelamento.
func (c *Container[T]) Subscribe(fn func(T)) func() {
	c.mu.Lock()
	id := c.next
	c.next++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}
