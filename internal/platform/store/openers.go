package store

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"copsoq/internal/platform/logger"
	chx "copsoq/internal/platform/store/ch"
	"copsoq/internal/platform/store/pg"
)

// newBackoff is the wait policy between postgres connect attempts
var newBackoff = func() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = backoffStart
	b.MaxInterval = backoffMax
	b.MaxElapsedTime = 0
	return b
}

// openPG builds the pool and waits until it answers a ping
func openPG(ctx context.Context, cfg Config, log logger.Logger) (*pgAdapter, error) {
	pcfg := pg.Config{
		URL:      cfg.PG.URL,
		AppName:  cfg.AppName,
		MaxConns: cfg.PG.MaxConns,
	}
	if cfg.PG.LogSQL {
		pcfg.Tracer = pg.NewTracer(log, time.Duration(cfg.PG.SlowQueryMs)*time.Millisecond)
	}

	p, err := pg.Open(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	a := newPGAdapter(p.Pool)

	attempts := 0
	ping := func() error {
		attempts++
		pctx, cancel := context.WithTimeout(ctx, cfg.PG.pingTimeout())
		defer cancel()
		return a.Ping(pctx)
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(newBackoff(), uint64(cfg.PG.retries()-1)), ctx)
	notify := func(err error, wait time.Duration) {
		log.Warn().Err(err).Int("attempt", attempts).Dur("retry_in", wait).Msg("postgres not ready")
	}

	if err := backoff.RetryNotify(ping, policy, notify); err != nil {
		p.Close()
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("postgres unreachable after %d attempts: %w", attempts, err)
	}
	return a, nil
}

// openCH builds the clickhouse pool without dialing; Guard pings it
func openCH(ctx context.Context, cfg CHConfig) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{
		URL:        cfg.URL,
		ClientName: cfg.ClientName,
		ClientTag:  cfg.ClientTag,
	})
	if err != nil {
		return nil, err
	}
	return newCHAdapter(c), nil
}
