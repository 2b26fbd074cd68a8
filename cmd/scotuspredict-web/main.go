// @title         scotuspredict API
// @version       1.0
// @description   Predicts the ideological direction of a US Supreme Court decision

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"scotuspredict/internal/core/artifact"
	"scotuspredict/internal/platform/config"
	"scotuspredict/internal/platform/logger"
	phttp "scotuspredict/internal/platform/net/http"
	"scotuspredict/internal/platform/net/middleware"
	"scotuspredict/internal/platform/store"

	"scotuspredict/internal/services/api"

	"github.com/go-chi/chi/v5"
)

const service = "scotuspredict-web"

func main() {
	// .env first so every config read below sees it
	if err := config.LoadDotEnv(); err != nil {
		logger.Get().Fatal().Err(err).Msg("load .env")
	}
	logger.Init(logger.FromEnv())
	l := logger.Get()

	root := config.New()
	webCfg := root.Prefix("CORE_WEB_")
	pgCfg := root.Prefix("SERVICE_PGSQL_") // optional; codebook overrides only
	artCfg := root.Prefix("CORE_ARTIFACT_")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.FromEnv(pgCfg, service), store.WithLogger(*l))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	ac := artifact.FromEnv(artCfg)
	src, err := artifact.NewSource(ctx, ac)
	if err != nil {
		l.Fatal().Err(err).Msg("artifact source")
	}
	model := artifact.NewHandle(src, ac.Entry)

	// eager load turns a missing or corrupt artifact into a startup failure
	if webCfg.MayBool("EAGER_LOAD", true) {
		if _, err := model.Get(ctx); err != nil {
			l.Fatal().Err(err).Str("source", model.Source()).Msg("model load failed")
		}
	}

	// http server (reads CORE_WEB_ADDR); the heartbeat answers load balancers ahead of any module
	srv := phttp.NewServer(webCfg, func(m *chi.Mux) { m.Use(middleware.Heartbeat("/healthz")) })

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         webCfg,
			Root:           root,
			Store:          st,
			Model:          model,
			Service:        service,
			EnableSwagger:  webCfg.MayBool("SWAGGER", true),
			EnableProfiler: webCfg.MayBool("PROFILER", false),
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}
