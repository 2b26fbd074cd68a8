package httpkit

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "scotuspredict/internal/platform/errors"
	phttp "scotuspredict/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type body struct {
	Issue *int `json:"issue" validate:"required,min=10010,max=140070"`
}

func newRouter() Router { return phttp.AdaptChi(chi.NewRouter()) }

func serve(t *testing.T, r Router, method, path, payload string, hdr ...string) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(payload))
	if payload != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, req)

	var env Envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope: %v (%s)", err, rec.Body.String())
		}
	}
	return rec, env
}

func TestCall(t *testing.T) {
	t.Parallel()
	r := newRouter()
	Get(r, "/plain", func(*http.Request) (any, error) { return map[string]int{"n": 1}, nil })
	Get(r, "/resp", func(*http.Request) (any, error) { return Response{Status: http.StatusAccepted, Body: "queued"}, nil })
	Post(r, "/fail", func(*http.Request) (any, error) { return nil, perr.NotFoundf("no such thing") })

	rec, env := serve(t, r, http.MethodGet, "/plain", "")
	if rec.Code != http.StatusOK || env.Data == nil {
		t.Fatalf("plain: %d %+v", rec.Code, env)
	}
	rec, env = serve(t, r, http.MethodGet, "/resp", "")
	if rec.Code != http.StatusAccepted || env.Data != "queued" {
		t.Fatalf("resp: %d %+v", rec.Code, env)
	}
	rec, env = serve(t, r, http.MethodPost, "/fail", "")
	if rec.Code != http.StatusNotFound || env.Code != perr.ErrorCodeNotFound {
		t.Fatalf("fail: %d %+v", rec.Code, env)
	}
}

func TestHandle_And_Aliases(t *testing.T) {
	t.Parallel()
	r := newRouter()
	r.Get("/ok", Handle(func(*http.Request) Response { return OK("yes") }))
	r.Get("/err", Handle(func(*http.Request) Response { return Error(errors.New("boom")) }))

	if rec, env := serve(t, r, http.MethodGet, "/ok", ""); rec.Code != 200 || env.Data != "yes" {
		t.Fatalf("ok: %d %+v", rec.Code, env)
	}
	if rec, _ := serve(t, r, http.MethodGet, "/err", ""); rec.Code != http.StatusInternalServerError {
		t.Fatalf("err: %d", rec.Code)
	}
}

func TestPostJSON_BindsAndValidates(t *testing.T) {
	t.Parallel()
	r := newRouter()
	PostJSON(r, "/issue", func(_ *http.Request, in body) (any, error) { return *in.Issue, nil })

	rec, env := serve(t, r, http.MethodPost, "/issue", `{"issue":20010}`)
	if rec.Code != http.StatusOK || env.Data != float64(20010) {
		t.Fatalf("valid: %d %+v", rec.Code, env)
	}

	rec, env = serve(t, r, http.MethodPost, "/issue", `{"issue":5}`)
	if rec.Code != http.StatusBadRequest || env.Field != "issue" {
		t.Fatalf("range: %d %+v", rec.Code, env)
	}

	rec, _ = serve(t, r, http.MethodPost, "/issue", `{"issue":20010,"extra":1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown field: %d", rec.Code)
	}
}

func TestMountUnder_And_Versioning(t *testing.T) {
	t.Parallel()
	mark := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Scope", "api")
			next.ServeHTTP(w, r)
		})
	}
	r := newRouter()
	MountAPI(r, "/v2/", []func(http.Handler) http.Handler{mark}, func(api Router) {
		Get(api, "/ping", func(*http.Request) (any, error) { return "pong", nil })
	})
	MountAPIV1(r, nil, func(api Router) {
		MountUnder(api, "/meta", nil, func(m Router) {
			Get(m, "/health", func(*http.Request) (any, error) { return "ok", nil })
		})
	})

	rec, env := serve(t, r, http.MethodGet, "/api/v2/ping", "")
	if rec.Code != 200 || env.Data != "pong" || rec.Header().Get("X-Scope") != "api" {
		t.Fatalf("v2: %d %+v %v", rec.Code, env, rec.Header())
	}
	rec, env = serve(t, r, http.MethodGet, "/api/v1/meta/health", "")
	if rec.Code != 200 || env.Data != "ok" || rec.Header().Get("X-Scope") != "" {
		t.Fatalf("v1: %d %+v", rec.Code, env)
	}
}

func TestCommonStack(t *testing.T) {
	t.Parallel()
	r := newRouter()
	MountAPIV1(r, CommonStack(StackOptions{CORSOrigins: []string{"https://example.org"}}), func(api Router) {
		Get(api, "/boom", func(*http.Request) (any, error) { panic("kaboom") })
		Get(api, "/lang", func(req *http.Request) (any, error) { return req.Header.Get("Accept-Language"), nil })
	})

	rec, env := serve(t, r, http.MethodGet, "/api/v1/boom", "")
	if rec.Code != http.StatusInternalServerError || env.RequestID == "" {
		t.Fatalf("panic not recovered as envelope: %d %+v", rec.Code, env)
	}

	rec, _ = serve(t, r, http.MethodGet, "/api/v1/lang", "", "Accept-Language", "es-MX")
	if rec.Header().Get("Content-Language") != "es" {
		t.Fatalf("content-language = %q", rec.Header().Get("Content-Language"))
	}
	if rec.Header().Get("Cache-Control") == "" {
		t.Fatal("expected no-cache headers")
	}
}

func TestPageStack_Length(t *testing.T) {
	t.Parallel()
	if len(PageStack(StackOptions{})) == 0 {
		t.Fatal("page stack should not be empty")
	}
}
