package artifact

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"scotuspredict/internal/core/forest"
	"scotuspredict/internal/platform/logger"
)

// Handle loads the forest at most once per process and shares it read-only.
// Every Get returns the same pointer or the same error; nothing invalidates it.
type Handle struct {
	src   Source
	entry string

	once     sync.Once
	done     atomic.Bool
	forest   *forest.Forest
	err      error
	loadedAt time.Time
}

// NewHandle binds a handle to a source; nothing is read until the first Get
func NewHandle(src Source, entry string) *Handle {
	if entry == "" {
		entry = DefaultEntry
	}
	return &Handle{src: src, entry: entry}
}

// Preloaded wraps an already decoded forest, or a fixed load error
func Preloaded(f *forest.Forest, err error) *Handle {
	h := &Handle{entry: DefaultEntry}
	h.once.Do(func() {
		h.forest, h.err, h.loadedAt = f, err, time.Now()
		h.done.Store(true)
	})
	return h
}

// Get loads on first use; the load ignores cancellation of the triggering request
func (h *Handle) Get(ctx context.Context) (*forest.Forest, error) {
	h.once.Do(func() {
		start := time.Now()
		h.forest, h.err = Load(context.WithoutCancel(ctx), h.src, h.entry)
		h.loadedAt = time.Now()
		h.done.Store(true)

		log := logger.Named("artifact")
		if h.err != nil {
			log.Error().Err(h.err).Str("source", h.Source()).Str("entry", h.entry).Msg("model load failed")
			return
		}
		log.Info().
			Str("source", h.Source()).
			Int("trees", h.forest.Trees()).
			Dur("elapsed", time.Since(start)).
			Msg("model loaded")
	})
	return h.forest, h.err
}

// Attempted reports whether a load has run
func (h *Handle) Attempted() bool { return h.done.Load() }

// Status reports the memoized result without triggering a load
func (h *Handle) Status() (loaded bool, at time.Time, err error) {
	if !h.done.Load() {
		return false, time.Time{}, nil
	}
	return h.err == nil, h.loadedAt, h.err
}

// Source describes where the archive comes from
func (h *Handle) Source() string {
	if h.src == nil {
		return "preloaded"
	}
	return h.src.Describe()
}

// Entry is the archive member name
func (h *Handle) Entry() string { return h.entry }
