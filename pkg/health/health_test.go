package health_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/atelieplus/atelie-api/pkg/health"
)

type fakePinger struct {
	calls int
	err   error
}

func (f *fakePinger) Ping(context.Context) error {
	f.calls++
	return f.err
}

func TestChecker_CacheDentroDoTTL(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	p := &fakePinger{}
	c := health.NewChecker(p, 30*time.Second, clock)

	st := c.Check(context.Background())
	assert.True(t, st.Reachable)
	assert.Equal(t, 1, p.calls)

	// dentro da janela: sem novo ping
	now = now.Add(10 * time.Second)
	c.Check(context.Background())
	assert.Equal(t, 1, p.calls)

	// janela expirada: novo ping
	now = now.Add(25 * time.Second)
	c.Check(context.Background())
	assert.Equal(t, 2, p.calls)
}

func TestChecker_FalhaTambemFicaEmCache(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	p := &fakePinger{err: errors.New("connection refused")}
	c := health.NewChecker(p, time.Minute, func() time.Time { return now })

	st := c.Check(context.Background())
	assert.False(t, st.Reachable)
	assert.Contains(t, st.Err, "connection refused")

	c.Check(context.Background())
	assert.Equal(t, 1, p.calls, "falha recente não deve gerar novo ping")
}
