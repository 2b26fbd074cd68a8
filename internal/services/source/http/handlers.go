// Package http provides the json transport for source files
package http

import (
	stdhttp "net/http"

	"scotuspredict/internal/modkit/httpkit"
	"scotuspredict/internal/services/source/domain"
)

// Register mounts source endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/{kind}", h.get)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /source/{kind} Source sourceGet
// @Summary Source text of the app or the training notebook
// @Tags Source
// @Produce json
// @Param kind path string true "app or model"
// @Success 200 {object} domain.File "ok"
// @Failure 404 {object} ErrorResponse "unknown kind"
// @Failure 502 {object} ErrorResponse "source host failed"
// @Router /source/{kind} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), domain.Kind(httpkit.Param(r, "kind")))
}
