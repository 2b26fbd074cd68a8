// Package api composes the modules into one http surface: json under /api/v1 and the pages at the root
package api

import (
	"time"

	"scotuspredict/internal/core/artifact"
	"scotuspredict/internal/platform/config"
	phttp "scotuspredict/internal/platform/net/http"
	"scotuspredict/internal/platform/store"

	"scotuspredict/internal/modkit"
	"scotuspredict/internal/modkit/httpkit"
	"scotuspredict/internal/modkit/module"
	"scotuspredict/internal/modkit/swaggerkit"

	metamod "scotuspredict/internal/services/api/meta/module"
	codebookmod "scotuspredict/internal/services/codebook/module"
	predictmod "scotuspredict/internal/services/predict/module"
	sourcemod "scotuspredict/internal/services/source/module"
	webmod "scotuspredict/internal/services/web/module"
)

// Options are the API options
type Options struct {
	// Config carries the CORE_WEB_ prefix; Root is unprefixed and handed to modules
	Config         config.Conf
	Root           config.Conf
	Store          *store.Store
	Model          *artifact.Handle
	Service        string
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts every module onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:     opt.Root,
		Service: opt.Service,
		Model:   opt.Model,
	}
	if opt.Store.Enabled() {
		deps.PG = opt.Store.PG
	}

	stack := httpkit.StackOptions{
		CORSOrigins: opt.Config.MayCSV("CORS_ORIGINS", nil),
		Timeout:     opt.Config.MayDuration("TIMEOUT", 30*time.Second),
		SlowLog:     opt.Config.MayDuration("SLOW_LOG", time.Second),
	}

	// codebook first; predict reads labels through its port
	codebook := codebookmod.New(deps)
	labels := module.MustPortsOf[codebookmod.Ports](codebook).Codebook

	predict := predictmod.New(deps, modkit.WithPorts(predictmod.Imports{Codebook: labels}))
	source := sourcemod.New(deps)

	web := webmod.New(
		deps,
		modkit.WithMiddlewares(httpkit.PageStack(stack)...),
		modkit.WithPorts(webmod.Imports{
			Predict: module.MustPortsOf[predictmod.Ports](predict).Service,
			Source:  module.MustPortsOf[sourcemod.Ports](source).Service,
		}),
	)

	mods := []module.Module{
		codebook,
		metamod.New(deps),
		predict,
		source,
	}

	swaggerkit.Mount(r, opt.Config, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(stack), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})

	module.Register(web.Name(), web.Ports())
	web.MountRoutes(r)
}
