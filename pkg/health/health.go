// Package health expõe a checagem de disponibilidade do banco com cache TTL.
// O relógio é injetado para que o comportamento do cache seja testável sem
// esperas reais.
package health

import (
	"context"
	"sync"
	"time"
)

// Pinger é o que a checagem precisa do banco (pgxpool.Pool satisfaz).
type Pinger interface {
	Ping(ctx context.Context) error
}

// Status resultado de uma checagem.
type Status struct {
	Reachable bool
	Err       string
	CheckedAt time.Time
}

// Checker verifica a disponibilidade do banco e guarda o último resultado por
// um TTL; dentro da janela, novas chamadas devolvem o valor em cache sem bater
// no banco.
type Checker struct {
	pinger Pinger
	ttl    time.Duration
	now    func() time.Time

	mu   sync.Mutex
	last *Status
}

// NewChecker constrói o checker. now == nil usa time.Now.
func NewChecker(pinger Pinger, ttl time.Duration, now func() time.Time) *Checker {
	if now == nil {
		now = time.Now
	}
	return &Checker{pinger: pinger, ttl: ttl, now: now}
}

// Check devolve o status atual, consultando o banco apenas quando o cache
// expirou.
func (c *Checker) Check(ctx context.Context) Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.last != nil && now.Sub(c.last.CheckedAt) < c.ttl {
		return *c.last
	}

	st := Status{Reachable: true, CheckedAt: now}
	if err := c.pinger.Ping(ctx); err != nil {
		st.Reachable = false
		st.Err = err.Error()
	}
	c.last = &st
	return st
}
