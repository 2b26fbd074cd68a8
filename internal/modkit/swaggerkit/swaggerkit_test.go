package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"scotuspredict/internal/platform/config"
	phttp "scotuspredict/internal/platform/net/http"
	"scotuspredict/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func fetchSpec(t *testing.T) (int, map[string]any) {
	t.Helper()
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), config.New().Prefix("CORE_WEB_"), true)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK {
		return rec.Code, nil
	}
	var spec map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("decode spec: %v", err)
	}
	return rec.Code, spec
}

func TestDocJSON_ServesOAS3WithDefaults(t *testing.T) {
	testkit.Serial(t)
	_, spec := fetchSpec(t)

	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v", spec["openapi"])
	}
	servers := spec["servers"].([]any)
	if servers[0].(map[string]any)["url"] != "/api/v1" {
		t.Fatalf("servers = %v", servers)
	}
	paths := spec["paths"].(map[string]any)
	post := paths["/predict"].(map[string]any)["post"].(map[string]any)
	resps := post["responses"].(map[string]any)
	for _, code := range []string{"200", "400", "500", "503"} {
		if _, ok := resps[code]; !ok {
			t.Fatalf("missing %s response", code)
		}
	}
	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatalf("ErrorResponse schema missing")
	}
}

func TestDocJSON_TitleSuffixAndMutators(t *testing.T) {
	testkit.Serial(t)
	t.Setenv("CORE_WEB_DOCS_TITLE_SUFFIX", "(staging)")
	testkit.Swap(t, &mutators, nil)
	Register(func(spec map[string]any) { spec["x-test"] = true })
	Register(nil)

	_, spec := fetchSpec(t)
	if spec["info"].(map[string]any)["title"] != "scotuspredict API (staging)" {
		t.Fatalf("title = %v", spec["info"])
	}
	if spec["x-test"] != true {
		t.Fatalf("mutator not applied")
	}
}

func TestDocJSON_BadSpec(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &docReader, func() string { return "{nope" })
	if code, _ := fetchSpec(t); code != http.StatusInternalServerError {
		t.Fatalf("status = %d", code)
	}
}

func TestEnsureServers_Downgrades31(t *testing.T) {
	spec := map[string]any{"openapi": "3.1.0"}
	ensureServers(spec, "/x")
	if spec["openapi"] != "3.0.3" || spec["servers"] == nil {
		t.Fatalf("spec = %v", spec)
	}
	spec = map[string]any{"swagger": "2.0"}
	ensureServers(spec, "/x")
	if _, ok := spec["swagger"]; ok || spec["openapi"] != "3.0.3" {
		t.Fatalf("spec = %v", spec)
	}
}

func TestMount_Disabled(t *testing.T) {
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), config.New(), false)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}
