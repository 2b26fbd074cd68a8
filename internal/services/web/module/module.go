// Package module wires the server rendered pages using modkit
package module

import (
	"net/http"

	"scotuspredict/internal/core/content"
	"scotuspredict/internal/core/version"
	modkit "scotuspredict/internal/modkit"
	"scotuspredict/internal/modkit/httpkit"
	str "scotuspredict/internal/platform/strings"
	predict "scotuspredict/internal/services/predict/domain"
	source "scotuspredict/internal/services/source/domain"
	webhttp "scotuspredict/internal/services/web/http"
)

// Imports holds the ports the pages consume; pass it with modkit.WithPorts
type Imports struct {
	Predict predict.ServicePort
	Source  source.ServicePort
}

// Module implements the web module; its routes live at the site root
type Module struct {
	deps modkit.Deps
	name string
	mws  []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs the web module; it panics without Imports since the pages have nothing to render
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("web")}, opts...)...)

	in, ok := b.Ports.(Imports)
	if !ok || in.Predict == nil || in.Source == nil {
		panic("web module requires Imports with Predict and Source")
	}
	pages, err := content.New()
	if err != nil {
		panic(err)
	}

	d := webhttp.Deps{
		Pages:   pages,
		Predict: in.Predict,
		Source:  in.Source,
		Version: version.Info(str.FirstNonEmpty(deps.Service, "scotuspredict-web")).String(),
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		mws:       b.Mw,
		subrouter: b.Subrouter,
	}
	external := b.Register
	m.register = func(r httpkit.Router) {
		webhttp.Register(r, d)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the pages in a group so the middlewares stay off sibling routes
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Group(func(rr httpkit.Router) {
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

// Ports returns nil; nothing consumes the pages
func (m *Module) Ports() any { return nil }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the root path
func (m *Module) Prefix() string { return "/" }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
