// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"scotuspredict/internal/core/artifact"
	"scotuspredict/internal/core/version"
	"scotuspredict/internal/modkit/httpkit"
	perr "scotuspredict/internal/platform/errors"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Model       *artifact.Handle
	PG          any
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/model", h.model)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"scotuspredict-web"`
	Started string `json:"started" example:"2026-10-01T13:00:00Z"`
	Now     string `json:"now"     example:"2026-10-01T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"model"`
	Status string `json:"status" example:"ok"` // ok fail pending skipped unknown
	Error  string `json:"error,omitempty" example:"artifact: model.zip not found"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-01T13:05:00Z"`
}

// ModelResponse describes the loaded classifier
type ModelResponse struct {
	Source       string   `json:"source"        example:"file:model.zip"`
	Entry        string   `json:"entry"         example:"model.json"`
	LoadedAt     string   `json:"loaded_at"     example:"2026-10-01T13:00:01Z"`
	Trees        int      `json:"trees"         example:"100"`
	NFeatures    int      `json:"n_features"    example:"7"`
	FeatureNames []string `json:"feature_names"`
	Classes      []int    `json:"classes"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := []ReadyCheck{h.modelCheck(), pingCheck(ctx, "pg", h.deps.PG)}

	overall := "ok"
	for _, c := range checks {
		switch c.Status {
		case "fail":
			overall = "fail"
		case "pending", "unknown":
			if overall == "ok" {
				overall = "degraded"
			}
		}
	}

	return ReadyResponse{
		Status: overall,
		Checks: checks,
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// modelCheck never triggers a load
func (h *handlers) modelCheck() ReadyCheck {
	if h.deps.Model == nil {
		return ReadyCheck{Name: "model", Status: "unknown"}
	}
	if !h.deps.Model.Attempted() {
		return ReadyCheck{Name: "model", Status: "pending"}
	}
	if _, _, err := h.deps.Model.Status(); err != nil {
		return ReadyCheck{Name: "model", Status: "fail", Error: err.Error()}
	}
	return ReadyCheck{Name: "model", Status: "ok"}
}

// pingCheck skips optional dependencies that are not wired
func pingCheck(ctx stdctx.Context, name string, c any) ReadyCheck {
	if c == nil {
		return ReadyCheck{Name: name, Status: "skipped"}
	}
	p, ok := c.(Pinger)
	if !ok {
		return ReadyCheck{Name: name, Status: "unknown"}
	}
	if err := p.Ping(ctx); err != nil {
		return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
	}
	return ReadyCheck{Name: name, Status: "ok"}
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// swagger:route GET /meta/model Meta metaModel
// @Summary Loaded classifier metadata
// @Tags Meta
// @Produce json
// @Success 200 {object} ModelResponse "ok"
// @Failure 503 {object} ErrorResponse "classifier artifact missing"
// @Router /meta/model [get]
func (h *handlers) model(r *http.Request) (any, error) {
	if h.deps.Model == nil {
		return nil, perr.Unavailablef("no classifier configured")
	}
	f, err := h.deps.Model.Get(r.Context())
	if err != nil {
		return nil, err
	}
	_, at, _ := h.deps.Model.Status()
	return ModelResponse{
		Source:       h.deps.Model.Source(),
		Entry:        h.deps.Model.Entry(),
		LoadedAt:     at.UTC().Format(time.RFC3339),
		Trees:        f.Trees(),
		NFeatures:    f.NFeatures(),
		FeatureNames: f.FeatureNames(),
		Classes:      f.Classes(),
	}, nil
}
