// Package domain holds codebook label override shapes
package domain

import (
	"context"

	"scotuspredict/internal/core/codebook"
)

// LabelRow is one stored display label; Position is the selector value it names
type LabelRow struct {
	Field    string
	Lang     string
	Position int
	Label    string
}

// Rejection explains why a stored override was ignored
type Rejection struct {
	Field  string
	Lang   string
	Reason string
}

// ServicePort hands out the codebook with accepted overrides applied
type ServicePort interface {
	// Codebook never waits on the store
	Codebook(ctx context.Context) *codebook.Codebook

	// Reload reads the store now
	Reload(ctx context.Context) *codebook.Codebook
}
