// Package module wires the source panel into the API using modkit
package module

import (
	"context"
	"net/http"

	"scotuspredict/internal/adapters/github"
	modkit "scotuspredict/internal/modkit"
	"scotuspredict/internal/modkit/httpkit"
	"scotuspredict/internal/platform/logger"
	str "scotuspredict/internal/platform/strings"
	"scotuspredict/internal/services/source/domain"
	sourcehttp "scotuspredict/internal/services/source/http"
	sourcesvc "scotuspredict/internal/services/source/service"
)

// Ports holds what the source module exposes to other modules
type Ports struct {
	Service domain.ServicePort
}

// Module implements the source module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	ports Ports
}

// New constructs the source module; a domain.Fetcher passed with modkit.WithPorts replaces GitHub
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("source"), modkit.WithPrefix("/source")}, opts...)...)
	o := FromConfig(deps.Cfg)

	fetch, ok := b.Ports.(domain.Fetcher)
	if !ok {
		c, err := github.NewClient(github.Options{
			Owner:   o.Owner,
			Repo:    o.Repo,
			Ref:     o.Ref,
			Token:   o.Token,
			BaseURL: o.BaseURL,
			Timeout: o.Timeout,
		})
		if err != nil {
			panic(err)
		}
		logger.Named("source").Debug().Str("repository", c.Repository()).Msg("github source configured")
		fetch = githubFetcher{c: c}
	}

	svc := sourcesvc.New(fetch, sourcesvc.Config{
		Paths: map[domain.Kind]string{
			domain.KindApp:   o.AppPath,
			domain.KindModel: o.ModelPath,
		},
		CacheSize: o.CacheSize,
		CacheTTL:  o.CacheTTL,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		ports:     Ports{Service: svc},
	}
	external := b.Register
	m.register = func(r httpkit.Router) {
		sourcehttp.Register(r, svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

type githubFetcher struct{ c *github.Client }

func (g githubFetcher) File(ctx context.Context, path string) (domain.RemoteFile, error) {
	f, err := g.c.File(ctx, path)
	if err != nil {
		return domain.RemoteFile{}, err
	}
	return domain.RemoteFile{Path: f.Path, HTMLURL: f.HTMLURL, Text: f.Text}, nil
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

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }
