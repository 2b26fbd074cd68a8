package domain

import "scotuspredict/internal/core/codebook"

// FieldDescriptor is one widget: a bounded number input or a selector
type FieldDescriptor struct {
	Name    string            `json:"name"  example:"law_type"`
	Kind    codebook.Kind     `json:"kind"  example:"select"`
	Label   string            `json:"label" example:"Law type"`
	Help    string            `json:"help,omitempty"`
	Min     int               `json:"min"`
	Max     int               `json:"max"`
	Options []codebook.Option `json:"options,omitempty"`
}
