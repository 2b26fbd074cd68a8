// Package http provides the json transport for predictions
package http

import (
	stdhttp "net/http"

	"scotuspredict/internal/modkit/httpkit"
	pnet "scotuspredict/internal/platform/net"
	"scotuspredict/internal/services/predict/domain"
	svc "scotuspredict/internal/services/predict/service"
)

// Register mounts predict endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// one inference per explicit request
	httpkit.PostJSON[domain.Features](r, "/", h.predict)

	// widget descriptors for clients that build their own form
	httpkit.Get(r, "/form", h.form)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /predict Predict predictRun
// @Summary Predict the decision direction for one case
// @Tags Predict
// @Accept json
// @Produce json
// @Param payload body domain.Features true "Case attributes"
// @Success 200 {object} domain.Result "ok"
// @Failure 503 {object} ErrorResponse "classifier artifact missing"
// @Router /predict [post]
func (h *handlers) predict(r *stdhttp.Request, in domain.Features) (any, error) {
	return h.svc.Predict(r.Context(), in)
}

// swagger:route GET /predict/form Predict predictForm
// @Summary Form field descriptors and option lists
// @Tags Predict
// @Produce json
// @Param lang query string false "en or es"
// @Success 200 {object} domain.Form "ok"
// @Router /predict/form [get]
func (h *handlers) form(r *stdhttp.Request) (any, error) {
	return h.svc.Form(r.Context(), pnet.Code(pnet.Lang(r.Context())))
}
