package middleware

import (
	"net/http"

	pnet "scotuspredict/internal/platform/net"
)

// Language negotiates the display language once per request and stores it on the context
func Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag := pnet.Negotiate(r)
		w.Header().Set("Content-Language", pnet.Code(tag))
		w.Header().Add("Vary", "Accept-Language")
		next.ServeHTTP(w, r.WithContext(pnet.WithLang(r.Context(), tag)))
	})
}
