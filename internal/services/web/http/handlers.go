// Package http renders the navigable pages and the prediction form
package http

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"scotuspredict/internal/core/codebook"
	"scotuspredict/internal/core/content"
	"scotuspredict/internal/modkit/httpkit"
	perr "scotuspredict/internal/platform/errors"
	"scotuspredict/internal/platform/logger"
	pnet "scotuspredict/internal/platform/net"
	"scotuspredict/internal/platform/net/http/bind"
	predict "scotuspredict/internal/services/predict/domain"
	source "scotuspredict/internal/services/source/domain"
	"scotuspredict/internal/services/web/domain"
)

const maxFormBytes = 16 << 10

// Deps are the collaborators the pages need
type Deps struct {
	Pages   *content.Renderer
	Predict predict.ServicePort
	Source  source.ServicePort
	Version string
}

type handlers struct{ Deps }

// Register mounts every page on r
func Register(r httpkit.Router, d Deps) {
	h := handlers{d}

	r.Get("/", h.root)
	r.Get(content.PathOf(content.Instructions), h.block(content.Instructions, "instructions"))
	r.Get(content.PathOf(content.TechnicalOverview), h.block(content.TechnicalOverview, "technical"))
	r.Get(content.PathOf(content.About), h.block(content.About, "about"))
	r.Get(content.PathOf(content.MoralIssues), h.moral)
	r.Get(content.PathOf(content.RunPrediction), h.form)
	r.Post(content.PathOf(content.RunPrediction), h.submit)
	r.Get(content.PathOf(content.SourceApp), h.source(content.SourceApp, source.KindApp))
	r.Get(content.PathOf(content.SourceModel), h.source(content.SourceModel, source.KindModel))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(content.Static())))
}

func lang(r *http.Request) string { return pnet.Code(pnet.Lang(r.Context())) }

func (h handlers) root(w http.ResponseWriter, r *http.Request) {
	target := content.PathOf(content.DefaultState)
	if q := r.URL.RawQuery; q != "" {
		target += "?" + q
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (h handlers) view(state content.State, r *http.Request) content.View {
	v := h.Pages.Page(state, lang(r))
	v.Version = h.Version
	return v
}

func (h handlers) render(w http.ResponseWriter, r *http.Request, status int, page string, v content.View) {
	httpkit.HTML(w, r, status, func(out io.Writer) error { return h.Pages.Render(out, page, v) })
}

func (h handlers) block(state content.State, page string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := h.view(state, r)
		v.Body = h.Pages.Block(page, v.Lang)
		h.render(w, r, http.StatusOK, page, v)
	}
}

func (h handlers) moral(w http.ResponseWriter, r *http.Request) {
	v := h.view(content.MoralIssues, r)
	v.Body = h.Pages.Block("moral_intro", v.Lang)
	v.Topics = h.Pages.Topics(v.Lang)
	h.render(w, r, http.StatusOK, "moral", v)
}

// form renders the widgets prefilled with their lower bounds
func (h handlers) form(w http.ResponseWriter, r *http.Request) {
	v := h.view(content.RunPrediction, r)
	fv, err := h.fields(r, v.Lang, nil)
	if err != nil {
		h.renderFailure(w, r, v, err)
		return
	}
	status := http.StatusOK
	if err := h.Predict.Ready(); err != nil {
		fv.Unavailable = true
		fv.Error = perr.WireFrom(err).Message
		status = perr.HTTPStatus(err)
	}
	v.Data = fv
	h.render(w, r, status, "predict", v)
}

// submit runs one prediction and re-renders the form with the submitted values
func (h handlers) submit(w http.ResponseWriter, r *http.Request) {
	v := h.view(content.RunPrediction, r)
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.renderFailure(w, r, v, perr.Validationf("malformed form"))
		return
	}

	raw := make(map[string]string, len(codebook.Order))
	for _, name := range codebook.Order {
		raw[name] = strings.TrimSpace(r.PostForm.Get(name))
	}
	fv, err := h.fields(r, v.Lang, raw)
	if err != nil {
		h.renderFailure(w, r, v, err)
		return
	}

	in, err := parseFeatures(raw, v.T["not_integer"])
	if err == nil {
		err = bind.Struct(in, v.Lang)
	}
	var res predict.Result
	if err == nil {
		res, err = h.Predict.Predict(r.Context(), in)
	}

	status := http.StatusOK
	if err != nil {
		status = perr.HTTPStatus(err)
		wire := perr.WireFrom(err)
		fv.Error = wire.Message
		markField(&fv, wire.Field, wire.Message)
		switch perr.CodeOf(err) {
		case perr.ErrorCodeArtifactMissing, perr.ErrorCodeDeserialization, perr.ErrorCodeUnavailable:
			fv.Unavailable = true
			logger.C(r.Context()).Error().Err(err).Msg("prediction unavailable")
		}
	} else {
		fv.Result = &domain.ResultView{Label: res.Label, Message: res.Message}
	}
	v.Data = fv
	h.render(w, r, status, "predict", v)
}

func (h handlers) source(state content.State, kind source.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := h.view(state, r)
		sv := domain.SourceView{}
		sv.Path, _ = h.Source.Path(kind)
		f, err := h.Source.Get(r.Context(), kind)
		if err != nil {
			// the page still renders; the failure is confined to the panel
			logger.C(r.Context()).Warn().Err(err).Str("kind", string(kind)).Msg("source fetch failed")
			sv.Error = perr.WireFrom(err).Message
		} else {
			sv.Path, sv.URL, sv.Text, sv.FetchedAt = f.Path, f.URL, f.Text, f.FetchedAt
		}
		v.Data = sv
		h.render(w, r, http.StatusOK, "source", v)
	}
}

func (h handlers) renderFailure(w http.ResponseWriter, r *http.Request, v content.View, err error) {
	v.Data = domain.FormView{Error: perr.WireFrom(err).Message}
	h.render(w, r, perr.HTTPStatus(err), "predict", v)
}

// fields builds the widgets; submitted holds raw values to echo back, nil means defaults
func (h handlers) fields(r *http.Request, lang string, submitted map[string]string) (domain.FormView, error) {
	form, err := h.Predict.Form(r.Context(), lang)
	if err != nil {
		return domain.FormView{}, err
	}
	out := domain.FormView{Fields: make([]domain.FieldView, 0, len(form.Fields))}
	for _, f := range form.Fields {
		value := strconv.Itoa(f.Min)
		if submitted != nil {
			value = submitted[f.Name]
		}
		fv := domain.FieldView{
			Name:   f.Name,
			Label:  f.Label,
			Help:   f.Help,
			Select: f.Kind == codebook.KindSelect,
			Min:    f.Min,
			Max:    f.Max,
			Value:  value,
		}
		for _, o := range f.Options {
			fv.Options = append(fv.Options, domain.OptionView{
				Value:    o.Value,
				Label:    o.Label,
				Selected: strconv.Itoa(o.Value) == value,
			})
		}
		out.Fields = append(out.Fields, fv)
	}
	return out, nil
}

func markField(fv *domain.FormView, name, msg string) {
	for i := range fv.Fields {
		if fv.Fields[i].Name == name {
			fv.Fields[i].Error = msg
			return
		}
	}
}

// parseFeatures converts submitted strings; blanks stay nil so validation reports them as required
func parseFeatures(raw map[string]string, notInteger string) (predict.Features, error) {
	vals := make(map[string]*int, len(raw))
	for _, name := range codebook.Order {
		s := raw[name]
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return predict.Features{}, perr.WithField(perr.Validationf("%s", fmt.Sprintf(notInteger, name)), name)
		}
		vals[name] = &n
	}
	return predict.Features{
		Issue:        vals["issue"],
		CaseOrigin:   vals["case_origin"],
		CaseSource:   vals["case_source"],
		CertReason:   vals["cert_reason"],
		LawType:      vals["law_type"],
		NaturalCourt: vals["natural_court"],
		AdminAction:  vals["admin_action"],
	}, nil
}
