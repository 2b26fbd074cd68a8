package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"scotuspredict/internal/platform/config"
	"scotuspredict/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server is a thin wrapper over chi + stdlib http.Server
type Server struct {
	addr     string
	mux      *chi.Mux
	srv      *stdhttp.Server
	shutdown time.Duration
}

// NewServer creates the http server from a prefixed config (e.g. CORE_WEB_)
// opts receive the *chi.Mux so callers can mount routes/mw
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayString("ADDR", ":8501")
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		addr:     addr,
		mux:      m,
		shutdown: cfg.MayDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: cfg.MayDuration("READ_HEADER_TIMEOUT", 10*time.Second),
			ReadTimeout:       cfg.MayDuration("READ_TIMEOUT", 30*time.Second),
			WriteTimeout:      cfg.MayDuration("WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:       cfg.MayDuration("IDLE_TIMEOUT", 120*time.Second),
		},
	}
}

// Router returns a Router facade over the internal chi mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the listening address
func (s *Server) Addr() string { return s.addr }

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.addr).Msg("http listening")
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info().Msg("http shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), s.shutdown)
		defer cancel()
		if err := s.srv.Shutdown(sctx); err != nil {
			return err
		}
		return nil
	}
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
