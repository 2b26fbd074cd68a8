// Package httpkit re-exports the platform http seam for modules
// modules import this instead of internal/platform/net/http
package httpkit

import (
	"io"
	"net/http"

	phttp "scotuspredict/internal/platform/net/http"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the return-style handler result
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Error returns a response that maps err to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// JSON binds and validates a T body before calling fn
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return phttp.JSONHandler(fn)
}

// Call adapts a handler that takes no body; a returned Response is written as is
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) phttp.Response {
		out, err := fn(r)
		if err != nil {
			return phttp.Error(err)
		}
		if resp, ok := out.(phttp.Response); ok {
			return resp
		}
		return phttp.OK(out)
	})
}

// Handle adapts a Response-returning function
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}

// Param returns a path parameter such as {kind}
func Param(r *http.Request, name string) string { return phttp.Param(r, name) }

// HTML buffers a rendered page and writes it with status
func HTML(w http.ResponseWriter, r *http.Request, status int, render func(io.Writer) error) {
	phttp.HTML(w, r, status, render)
}
