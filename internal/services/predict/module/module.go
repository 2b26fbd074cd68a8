// Package module wires predictions into the API using modkit
package module

import (
	"net/http"

	modkit "scotuspredict/internal/modkit"
	"scotuspredict/internal/modkit/httpkit"
	str "scotuspredict/internal/platform/strings"
	"scotuspredict/internal/services/predict/domain"
	predicthttp "scotuspredict/internal/services/predict/http"
	predictsvc "scotuspredict/internal/services/predict/service"
)

// Module implements the predict module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc   predictsvc.Service
	ports Ports
}

// New constructs the predict module; a CodebookPort passed through WithPorts supplies label overrides
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("predict"), modkit.WithPrefix("/predict")}, opts...)...)

	var labels domain.CodebookPort
	if in, ok := b.Ports.(Imports); ok {
		labels = in.Codebook
	}
	svc := predictsvc.New(deps.Model, labels)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
		ports:     Ports{Service: svc},
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		predicthttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
