package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	"scotuspredict/internal/platform/config"
	perr "scotuspredict/internal/platform/errors"

	docs "scotuspredict/internal/services/api/docs"
)

// SpecMutator lets modules tweak the parsed spec before it is served
type SpecMutator func(map[string]any)

var mutators []SpecMutator

// docReader is a seam so tests can inject invalid JSON
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// Register adds a spec mutator; call it from module construction
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

func serveDocJSON(cfg config.Conf) http.HandlerFunc {
	suffix := cfg.MayString("DOCS_TITLE_SUFFIX", "")
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(spec, "/api/v1")

		if suffix != "" {
			if info, ok := spec["info"].(map[string]any); ok {
				if title, ok := info["title"].(string); ok {
					info["title"] = title + " " + suffix
				}
			}
		}

		ensureErrorResponseDefinition(spec)
		addDefaultResponse(spec, "500", "Internal Server Error", errorExample(http.StatusInternalServerError, perr.ErrorCodePanic, "panic recovered"))
		addDefaultResponse(spec, "400", "Bad Request", errorExample(http.StatusBadRequest, perr.ErrorCodeValidation, "issue must be at least 10010"))

		for _, m := range mutators {
			m(spec)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers pins the spec to OAS 3.0.3 (the bundled ui cannot render 3.1) and sets servers
func ensureServers(spec map[string]any, url string) {
	if _, hasSwagger := spec["swagger"]; hasSwagger {
		delete(spec, "swagger")
		spec["openapi"] = "3.0.3"
	}
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// ensureErrorResponseDefinition mirrors the runtime error envelope
func ensureErrorResponseDefinition(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

func errorExample(status int, code perr.ErrorCode, msg string) map[string]any {
	return map[string]any{
		"status_code": status,
		"status":      http.StatusText(status),
		"code":        int(code),
		"error":       msg,
		"request_id":  "host/abc-000001",
	}
}

// addDefaultResponse injects a response for status into every operation that lacks one
func addDefaultResponse(spec map[string]any, status, description string, example map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	resp := map[string]any{
		"description": description,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			if _, exists := responses[status]; !exists {
				responses[status] = resp
			}
		}
	}
}
