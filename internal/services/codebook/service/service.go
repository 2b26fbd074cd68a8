// Package service serves the codebook with stored label overrides
package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"scotuspredict/internal/core/codebook"
	perr "scotuspredict/internal/platform/errors"
	"scotuspredict/internal/platform/logger"
	"scotuspredict/internal/services/codebook/repo"
)

// queryTimeout bounds a single store read
const queryTimeout = 5 * time.Second

type snapshot struct {
	cb *codebook.Codebook
	at time.Time // last attempt, successful or not
}

// Svc implements domain.ServicePort
type Svc struct {
	repo    repo.Repo
	base    *codebook.Codebook
	refresh time.Duration
	now     func() time.Time

	snap     atomic.Pointer[snapshot]
	inflight atomic.Bool
	wg       sync.WaitGroup
}

// New builds the service; a nil repo serves the embedded codebook unchanged
func New(r repo.Repo, base *codebook.Codebook, refresh time.Duration) *Svc {
	if base == nil {
		base = codebook.Default()
	}
	return &Svc{repo: r, base: base, refresh: refresh, now: time.Now}
}

// Codebook returns the current snapshot without touching the store.
// A stale or missing snapshot schedules one background reload; until it lands the previous labels are served.
func (s *Svc) Codebook(ctx context.Context) *codebook.Codebook {
	if s.repo == nil {
		return s.base
	}
	snap := s.snap.Load()
	if snap == nil || s.now().Sub(snap.at) >= s.refresh {
		s.kick(ctx)
	}
	if snap == nil {
		return s.base
	}
	return snap.cb
}

// Reload reads the store synchronously and returns the resulting codebook
func (s *Svc) Reload(ctx context.Context) *codebook.Codebook {
	if s.repo == nil {
		return s.base
	}
	return s.reload(ctx)
}

func (s *Svc) kick(ctx context.Context) {
	if !s.inflight.CompareAndSwap(false, true) {
		return
	}
	ctx = context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.inflight.Store(false)
		s.reload(ctx)
	}()
}

// reload records the attempt time on failure too, so a broken store is retried once per refresh window
func (s *Svc) reload(ctx context.Context) *codebook.Codebook {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	prev := s.base
	if snap := s.snap.Load(); snap != nil {
		prev = snap.cb
	}

	log := logger.C(ctx).With().Str("component", "codebook").Logger()
	rows, err := s.repo.Labels(ctx)
	switch {
	case perr.IsUndefinedTable(err):
		log.Info().Msg("no codebook_labels table; using embedded labels")
		s.snap.Store(&snapshot{cb: s.base, at: s.now()})
		return s.base
	case err != nil:
		log.Warn().Err(err).Msg("codebook overrides unavailable; using previous labels")
		s.snap.Store(&snapshot{cb: prev, at: s.now()})
		return prev
	}

	cb, rejected := Apply(s.base, rows)
	for _, r := range rejected {
		log.Warn().Str("field", r.Field).Str("lang", r.Lang).Str("reason", r.Reason).Msg("codebook override rejected")
	}
	s.snap.Store(&snapshot{cb: cb, at: s.now()})
	return cb
}
