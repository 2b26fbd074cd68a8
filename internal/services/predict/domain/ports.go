package domain

import (
	"context"

	"scotuspredict/internal/core/codebook"
)

// ServicePort is consumed by the api handlers and the web pages
type ServicePort interface {
	Predict(ctx context.Context, in Features) (Result, error)
	Form(ctx context.Context, lang string) (Form, error)
	// Ready reports the classifier load error without triggering a load
	Ready() error
}

// CodebookPort supplies the codebook with any accepted label overrides applied
type CodebookPort interface {
	Codebook(ctx context.Context) *codebook.Codebook
}
