package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"scotuspredict/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	Timeout     time.Duration
	SlowLog     time.Duration
}

// CommonStack is the per-scope middleware slice for the JSON API
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.Language,
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowLog}),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Timeout(o.Timeout),
	}
}

// PageStack is the middleware slice for server rendered pages
func PageStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.Language,
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowLog}),
		middleware.RecoverJSON,
		middleware.SetHeader("X-Content-Type-Options", "nosniff"),
		middleware.Compress(flate.DefaultCompression),
		middleware.Timeout(o.Timeout),
	}
}
