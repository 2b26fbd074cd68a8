// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/text/language"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keyLang ctxKey = "lang"

// WithRequest annotates context with the request id (chi key, so chimw.GetReqID sees it)
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// WithLang annotates context with the negotiated display language
func WithLang(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, keyLang, tag)
}

// Lang returns the negotiated display language, or English when none was set
func Lang(ctx context.Context) language.Tag {
	if v, ok := ctx.Value(keyLang).(language.Tag); ok {
		return v
	}
	return language.English
}
