// Package service serves source files for the source panel
package service

import (
	"context"
	"strings"
	"time"

	perr "scotuspredict/internal/platform/errors"
	"scotuspredict/internal/platform/logger"
	"scotuspredict/internal/services/source/domain"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Config picks the files and the cache shape
type Config struct {
	Paths     map[domain.Kind]string
	CacheSize int
	CacheTTL  time.Duration
}

// Svc implements domain.ServicePort
type Svc struct {
	fetch domain.Fetcher
	paths map[domain.Kind]string
	cache *expirable.LRU[domain.Kind, domain.File]
	now   func() time.Time
}

// New builds the service; only successful fetches are cached
func New(f domain.Fetcher, cfg Config) *Svc {
	if f == nil {
		panic("source.Service requires a non nil Fetcher")
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 8
	}
	return &Svc{
		fetch: f,
		paths: cfg.Paths,
		cache: expirable.NewLRU[domain.Kind, domain.File](cfg.CacheSize, nil, cfg.CacheTTL),
		now:   time.Now,
	}
}

// Path returns the configured path for kind
func (s *Svc) Path(kind domain.Kind) (string, bool) {
	p, ok := s.paths[kind]
	return p, ok
}

// Get returns the file for kind; remote failures are Upstream errors and are not retried
func (s *Svc) Get(ctx context.Context, kind domain.Kind) (domain.File, error) {
	path, ok := s.paths[kind]
	if !ok {
		return domain.File{}, perr.WithField(perr.NotFoundf("no source file for %q", kind), "kind")
	}
	if f, ok := s.cache.Get(kind); ok {
		return f, nil
	}

	rf, err := s.fetch.File(ctx, path)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Str("kind", string(kind)).Str("path", path).Msg("source fetch failed")
		if !perr.IsCode(err, perr.ErrorCodeUpstream) {
			err = perr.Upstreamf(err, "fetch %s", path)
		}
		return domain.File{}, err
	}

	text := rf.Text
	if strings.HasSuffix(path, ".ipynb") {
		if code, ok := CodeCells(text); ok {
			text = code
		}
	}
	f := domain.File{
		Kind:      kind,
		Path:      path,
		URL:       rf.HTMLURL,
		Text:      text,
		FetchedAt: s.now().UTC(),
	}
	s.cache.Add(kind, f)
	return f, nil
}
