// Package http provides helpers for writing JSON and HTML responses with a consistent envelope
package http

import (
	"bytes"
	"encoding/json"
	"io"
	stdhttp "net/http"

	perr "scotuspredict/internal/platform/errors"
	"scotuspredict/internal/platform/logger"
	pnet "scotuspredict/internal/platform/net"
)

// Envelope is the standard response body for all JSON endpoints
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// HTML renders into a buffer first so a template failure never leaves a half-written page
func HTML(w stdhttp.ResponseWriter, r *stdhttp.Request, status int, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		logger.C(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("render failed")
		stdhttp.Error(w, stdhttp.StatusText(stdhttp.StatusInternalServerError), stdhttp.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// envelopeFor builds the envelope via the transport-neutral net wire
func envelopeFor(r *stdhttp.Request, status int, data any, err error) (int, Envelope) {
	reqID := pnet.RequestID(r.Context())
	if err != nil {
		status, w := pnet.Error(err, reqID)
		return status, Envelope(w)
	}
	return status, Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		RequestID:  reqID,
		Data:       data,
	}
}

// RespondOK writes a 200 envelope with data
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	status, env := envelopeFor(r, stdhttp.StatusOK, data, nil)
	JSON(w, status, env)
}

// RespondError maps a project error into an envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, env := envelopeFor(r, 0, nil, err)
	JSON(w, status, env)
}

//
// Return-style helpers for early returns in handlers
//

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}
	status, env := envelopeFor(r, status, resp.Body, nil)
	JSON(w, status, env)
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error returns a response that maps the error to status and envelope
func Error(err error) Response { return Response{Body: err} }
