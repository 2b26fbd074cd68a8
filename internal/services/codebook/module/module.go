// Package module wires the codebook override store and exposes its port
package module

import (
	"time"

	"scotuspredict/internal/core/codebook"
	"scotuspredict/internal/modkit"
	"scotuspredict/internal/modkit/httpkit"
	"scotuspredict/internal/modkit/repokit"
	"scotuspredict/internal/services/codebook/domain"
	"scotuspredict/internal/services/codebook/repo"
	"scotuspredict/internal/services/codebook/service"
)

// Ports holds the ports exposed by the codebook module
type Ports struct {
	Codebook domain.ServicePort
}

// Module defines the codebook module; it mounts no routes
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the module; without a pg backend the embedded labels are served as is
func New(deps modkit.Deps) *Module {
	refresh := deps.Cfg.Prefix("CORE_CODEBOOK_").MayDuration("REFRESH", 5*time.Minute)

	var r repo.Repo
	if deps.HasPG() {
		r = repokit.MustBind(repo.NewPG(), deps.PG)
	}
	svc := service.New(r, codebook.Default(), refresh)
	return &Module{deps: deps, ports: Ports{Codebook: svc}}
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "codebook" }

// Prefix returns no route prefix
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
