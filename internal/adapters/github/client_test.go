package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "scotuspredict/internal/platform/errors"
)

func newServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(Options{Owner: "o", Repo: "r", Ref: "main", BaseURL: srv.URL, Token: "tkn"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestFile_DecodesBase64Content(t *testing.T) {
	t.Parallel()
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/o/r/contents/App.py" || r.URL.Query().Get("ref") != "main" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer tkn" {
			t.Errorf("auth header = %q", r.Header.Get("Authorization"))
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"type":     "file",
			"encoding": "base64",
			"size":     11,
			"path":     "App.py",
			"html_url": "https://github.test/o/r/blob/main/App.py",
			"content":  base64.StdEncoding.EncodeToString([]byte("print('hi')")),
		})
	})

	f, err := c.File(context.Background(), "App.py")
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if f.Text != "print('hi')" || f.Path != "App.py" || f.HTMLURL == "" {
		t.Fatalf("file = %+v", f)
	}
	if c.Repository() != "o/r@main" {
		t.Fatalf("Repository = %q", c.Repository())
	}
}

func TestFile_LargeFileFollowsDownloadURL(t *testing.T) {
	t.Parallel()
	var base string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/o/r/contents/big.ipynb":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"type":         "file",
				"encoding":     "none",
				"size":         2 << 20,
				"path":         "big.ipynb",
				"content":      "",
				"download_url": base + "/raw/big.ipynb",
			})
		case "/raw/big.ipynb":
			_, _ = w.Write([]byte(`{"cells":[]}`))
		default:
			http.NotFound(w, r)
		}
	})
	base = c.gh.BaseURL.Scheme + "://" + c.gh.BaseURL.Host

	f, err := c.File(context.Background(), "big.ipynb")
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if f.Text != `{"cells":[]}` {
		t.Fatalf("text = %q", f.Text)
	}
}

func TestFile_OversizedDownloadIsUpstream(t *testing.T) {
	t.Parallel()
	var base string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/o/r/contents/big.ipynb":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"type":         "file",
				"encoding":     "none",
				"size":         2 << 20,
				"path":         "big.ipynb",
				"download_url": base + "/raw/big.ipynb",
			})
		case "/raw/big.ipynb":
			_, _ = w.Write([]byte(`{"cells":[{"source":"x"}]}`))
		default:
			http.NotFound(w, r)
		}
	})
	base = c.gh.BaseURL.Scheme + "://" + c.gh.BaseURL.Host
	c.maxBytes = 12

	f, err := c.File(context.Background(), "big.ipynb")
	if !perr.IsCode(err, perr.ErrorCodeUpstream) {
		t.Fatalf("want upstream, got %v (text %q)", err, f.Text)
	}
	if !strings.Contains(err.Error(), "exceeds 12 bytes") {
		t.Fatalf("message = %q", err.Error())
	}

	c.maxBytes = 64
	if f, err = c.File(context.Background(), "big.ipynb"); err != nil || f.Text != `{"cells":[{"source":"x"}]}` {
		t.Fatalf("exact read: %q %v", f.Text, err)
	}
}

func TestFile_FailuresAreUpstream(t *testing.T) {
	t.Parallel()
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	})
	_, err := c.File(context.Background(), "App.py")
	if !perr.IsCode(err, perr.ErrorCodeUpstream) {
		t.Fatalf("want upstream, got %v", err)
	}
	if perr.HTTPStatus(err) != http.StatusBadGateway {
		t.Fatalf("status = %d", perr.HTTPStatus(err))
	}
}

func TestNewClient_BadBaseURL(t *testing.T) {
	t.Parallel()
	if _, err := NewClient(Options{BaseURL: "://nope"}); err == nil {
		t.Fatalf("expected error")
	}
}
