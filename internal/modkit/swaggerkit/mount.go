// Package swaggerkit mounts the Swagger UI and the JSON spec
package swaggerkit

import (
	"net/http"

	"scotuspredict/internal/platform/config"
	phttp "scotuspredict/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount serves the ui at /api/docs/ and the spec at /api/docs/doc.json when enabled
func Mount(r phttp.Router, cfg config.Conf, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(cfg))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
