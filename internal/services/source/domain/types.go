// Package domain holds the source panel shapes
package domain

import (
	"context"
	"time"
)

// Kind selects which file the panel shows
type Kind string

// Kinds
const (
	KindApp   Kind = "app"
	KindModel Kind = "model"
)

// File is what the panel renders
type File struct {
	Kind      Kind      `json:"kind"       example:"app"`
	Path      string    `json:"path"       example:"App.py"`
	URL       string    `json:"url"`
	Text      string    `json:"text"`
	FetchedAt time.Time `json:"fetched_at"`
}

// RemoteFile is the raw result of one remote read
type RemoteFile struct {
	Path    string
	HTMLURL string
	Text    string
}

// Fetcher reads one file from the source host
type Fetcher interface {
	File(ctx context.Context, path string) (RemoteFile, error)
}

// ServicePort is consumed by the api handlers and the web pages
type ServicePort interface {
	Get(ctx context.Context, kind Kind) (File, error)
	// Path is the configured file path for kind, known without fetching
	Path(kind Kind) (string, bool)
}
