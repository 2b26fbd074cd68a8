package http

import (
	"encoding/json"
	"errors"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "scotuspredict/internal/platform/errors"
	pnet "scotuspredict/internal/platform/net"
)

func reqWithID(method, path, id string) *stdhttp.Request {
	r := httptest.NewRequest(method, path, nil)
	return r.WithContext(pnet.WithRequest(r.Context(), id))
}

func decodeEnv(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v (%s)", err, rec.Body.String())
	}
	return env
}

func TestRespondOK(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondOK(rec, reqWithID("GET", "/", "rid-1"), map[string]string{"label": "liberal"})
	if rec.Code != stdhttp.StatusOK || !strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		t.Fatalf("status/ct: %d %q", rec.Code, rec.Header().Get("Content-Type"))
	}
	env := decodeEnv(t, rec)
	if env.RequestID != "rid-1" || env.Data.(map[string]any)["label"] != "liberal" {
		t.Fatalf("envelope: %+v", env)
	}
}

func TestRespondError_ValidationCarriesField(t *testing.T) {
	rec := httptest.NewRecorder()
	err := perr.WithField(perr.Validationf("law_type must be at most 7"), "law_type")
	RespondError(rec, reqWithID("POST", "/", "rid-2"), err)
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	env := decodeEnv(t, rec)
	if env.Code != perr.ErrorCodeValidation || env.Field != "law_type" || env.RequestID != "rid-2" {
		t.Fatalf("envelope: %+v", env)
	}
}

func TestHandle_Variants(t *testing.T) {
	cases := []struct {
		name string
		resp Response
		code int
	}{
		{"ok", OK(1), stdhttp.StatusOK},
		{"zero status", Response{Body: "x"}, stdhttp.StatusOK},
		{"no content", Response{Status: stdhttp.StatusNoContent}, stdhttp.StatusNoContent},
		{"artifact missing", Error(perr.New(perr.ErrorCodeArtifactMissing, "model.zip not found")), stdhttp.StatusServiceUnavailable},
		{"upstream", Error(perr.Upstreamf(errors.New("503"), "fetch")), stdhttp.StatusBadGateway},
		{"header", Response{Status: 200, Body: "x", Header: stdhttp.Header{"X-Test": {"a"}}}, stdhttp.StatusOK},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Handle(func(*stdhttp.Request) Response { return c.resp })(rec, reqWithID("GET", "/", "r"))
			if rec.Code != c.code {
				t.Fatalf("code = %d, want %d", rec.Code, c.code)
			}
			if c.resp.Header != nil && rec.Header().Get("X-Test") != "a" {
				t.Fatalf("header not copied")
			}
		})
	}
}

func TestHTML(t *testing.T) {
	rec := httptest.NewRecorder()
	HTML(rec, httptest.NewRequest("GET", "/about", nil), stdhttp.StatusOK, func(w io.Writer) error {
		_, err := io.WriteString(w, "<h1>About</h1>")
		return err
	})
	if rec.Code != 200 || rec.Body.String() != "<h1>About</h1>" || !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("html: %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	HTML(rec, httptest.NewRequest("GET", "/about", nil), stdhttp.StatusOK, func(w io.Writer) error {
		_, _ = io.WriteString(w, "<h1>partial")
		return errors.New("template exploded")
	})
	if rec.Code != stdhttp.StatusInternalServerError || strings.Contains(rec.Body.String(), "partial") {
		t.Fatalf("failed render must not leak partial output: %d %q", rec.Code, rec.Body.String())
	}
}
