package store

import (
	"context"
	"fmt"
	"time"

	"scotuspredict/internal/platform/store/pg"
)

const (
	backoffStart   = 150 * time.Millisecond
	backoffCeiling = 2 * time.Second
)

var (
	openPool = pg.Open
	pingPool = func(ctx context.Context, p *pg.PG) error { return p.Pool.Ping(ctx) }
	sleep    = time.Sleep
)

// openPG opens the pool and only publishes the adapter once a ping succeeds
func openPG(ctx context.Context, cfg Config, s *Store) (*pgAdapter, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	p, err := openPool(ctx, pg.Config{
		URL:      cfg.PG.URL,
		AppName:  cfg.AppName,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
	}, tracer, nil)
	if err != nil {
		return nil, err
	}

	attempts := cfg.PG.ConnectRetries
	if attempts <= 0 {
		attempts = 1
	}
	timeout := cfg.PG.PingTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	var lastErr error
	backoff := backoffStart
	for i := 0; i < attempts; i++ {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		lastErr = pingPool(pctx, p)
		cancel()
		if lastErr == nil {
			return newPGAdapter(p), nil
		}
		if ctx.Err() != nil {
			p.Close()
			return nil, ctx.Err()
		}
		s.Log.Warn().Err(lastErr).Int("attempt", i+1).Int("of", attempts).Msg("postgres not ready")
		if i == attempts-1 {
			break
		}
		sleep(backoff)
		backoff = min(backoff*2, backoffCeiling)
	}

	p.Close()
	return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", attempts, lastErr)
}
