package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"scotuspredict/internal/core/artifact"
	"scotuspredict/internal/core/forest/foresttest"
	phttp "scotuspredict/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func get(t *testing.T, d Deps, path string, out any) int {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), d)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var env struct{ Data json.RawMessage }
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("data: %v", err)
		}
	}
	return rec.Code
}

func TestHealthAndVersion(t *testing.T) {
	t.Parallel()
	d := Deps{ServiceName: "scotuspredict-web", StartedAt: time.Now()}

	var h HealthResponse
	if code := get(t, d, "/health", &h); code != http.StatusOK || !h.OK || h.Service != "scotuspredict-web" {
		t.Fatalf("health: %d %+v", code, h)
	}
	var v struct{ Service, Version string }
	if code := get(t, d, "/version", &v); code != http.StatusOK || v.Service != "scotuspredict-web" || v.Version == "" {
		t.Fatalf("version: %d %+v", code, v)
	}
}

func TestReady_States(t *testing.T) {
	t.Parallel()
	loaded := artifact.Preloaded(foresttest.Stump(t), nil)
	failed := artifact.Preloaded(nil, artifact.ErrArtifactMissing)
	pending := artifact.NewHandle(artifact.Local{Path: filepath.Join(t.TempDir(), "m.zip")}, "")

	cases := []struct {
		name string
		deps Deps
		want string
	}{
		{"loaded without pg", Deps{Model: loaded}, "ok"},
		{"loaded with pg", Deps{Model: loaded, PG: pinger{}}, "ok"},
		{"pg down", Deps{Model: loaded, PG: pinger{err: errors.New("refused")}}, "fail"},
		{"model failed", Deps{Model: failed}, "fail"},
		{"model pending", Deps{Model: pending}, "degraded"},
	}
	for _, tc := range cases {
		var r ReadyResponse
		if code := get(t, tc.deps, "/ready", &r); code != http.StatusOK {
			t.Fatalf("%s: status %d", tc.name, code)
		}
		if r.Status != tc.want {
			t.Fatalf("%s: status %q, checks %+v", tc.name, r.Status, r.Checks)
		}
	}
	if pending.Attempted() {
		t.Fatalf("readiness must not trigger a model load")
	}
}

func TestModel(t *testing.T) {
	t.Parallel()
	var m ModelResponse
	code := get(t, Deps{Model: artifact.Preloaded(foresttest.Stump(t), nil)}, "/model", &m)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if m.Trees != 1 || m.NFeatures != 7 || len(m.Classes) != 2 || m.Source != "preloaded" || m.FeatureNames[0] != "issue" {
		t.Fatalf("model = %+v", m)
	}

	code = get(t, Deps{Model: artifact.Preloaded(nil, artifact.ErrArtifactMissing)}, "/model", nil)
	if code != http.StatusServiceUnavailable {
		t.Fatalf("missing artifact status = %d", code)
	}

	if code := get(t, Deps{}, "/model", nil); code != http.StatusServiceUnavailable {
		t.Fatalf("no model status = %d", code)
	}
}
