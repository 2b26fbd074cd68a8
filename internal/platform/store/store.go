// Package store wraps the optional sql backend behind tiny seams
package store

import (
	"context"
	"errors"
	"fmt"

	"scotuspredict/internal/platform/logger"
)

// Store is the facade for optional backends
// zero value is safe and has no backends
type Store struct {
	// Log is the logger used by subclients
	Log logger.Logger

	// PG is the postgres seam, nil when disabled
	PG RowQuerier
}

// Row exposes the scan contract a single row needs
type Row interface {
	Scan(dest ...any) error
}

// Rows exposes iteration and scan over a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// CommandTag reports the result of a write
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the surface repos use for sql
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Enabled reports whether a postgres backend is attached
func (s *Store) Enabled() bool { return s != nil && s.PG != nil }

// Open constructs a Store; with PG disabled it returns an empty Store
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	s.Log = s.Log.With().Str("component", "store").Logger()

	if !cfg.PG.Enabled {
		return s, nil
	}
	q, err := openPG(ctx, cfg, s)
	if err != nil {
		return nil, err
	}
	s.PG = q
	s.Log.Info().Int32("max_conns", cfg.PG.MaxConns).Msg("postgres connected")
	return s, nil
}

// Guard pings every attached backend
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	if p, ok := s.PG.(Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("pg: %w", err)
		}
	}
	return nil
}

// Close releases attached backends; nil backends are ignored
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	if c, ok := s.PG.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
