package net_test

import (
	"net/http/httptest"
	"testing"

	pnet "scotuspredict/internal/platform/net"
)

func TestNegotiate(t *testing.T) {
	cases := []struct {
		name   string
		target string
		accept string
		want   string
	}{
		{"default", "/", "", "en"},
		{"query wins", "/?lang=es", "en-US", "es"},
		{"regional accept", "/", "es-MX,es;q=0.9", "es"},
		{"unsupported accept", "/", "de-DE", "en"},
		{"bad query falls through", "/?lang=@@", "es", "es"},
		{"unsupported query", "/?lang=fr", "es", "en"},
		{"garbage accept", "/", ";;;", "en"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", c.target, nil)
			if c.accept != "" {
				r.Header.Set("Accept-Language", c.accept)
			}
			if got := pnet.Code(pnet.Negotiate(r)); got != c.want {
				t.Fatalf("Negotiate = %q, want %q", got, c.want)
			}
		})
	}
}
