// Package domain holds the prediction request and result shapes
package domain

import (
	"github.com/google/uuid"
)

// Decoded labels
const (
	LabelConservative = "conservative"
	LabelLiberal      = "liberal"
)

// Features is one case as submitted; pointers keep a missing field apart from a zero value.
// Bounds mirror the embedded codebook.
type Features struct {
	Issue        *int `json:"issue"         validate:"required,min=10010,max=140070" example:"80180"`
	CaseOrigin   *int `json:"case_origin"   validate:"required,min=1,max=302"        example:"51"`
	CaseSource   *int `json:"case_source"   validate:"required,min=1,max=302"        example:"29"`
	CertReason   *int `json:"cert_reason"   validate:"required,min=0,max=12"         example:"11"`
	LawType      *int `json:"law_type"      validate:"required,min=0,max=7"          example:"6"`
	NaturalCourt *int `json:"natural_court" validate:"required,min=1301,max=1707"    example:"1704"`
	AdminAction  *int `json:"admin_action"  validate:"required,min=0,max=118"        example:"0"`
}

// Values lists the fields by codebook name in vector order; missing fields are nil
func (f Features) Values() []NamedValue {
	return []NamedValue{
		{"issue", f.Issue},
		{"case_origin", f.CaseOrigin},
		{"case_source", f.CaseSource},
		{"cert_reason", f.CertReason},
		{"law_type", f.LawType},
		{"natural_court", f.NaturalCourt},
		{"admin_action", f.AdminAction},
	}
}

// Vector is the classifier input; call only after every field is present
func (f Features) Vector() []float64 {
	vals := f.Values()
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = float64(*v.Value)
	}
	return out
}

// NamedValue pairs a field name with its submitted value
type NamedValue struct {
	Name  string
	Value *int
}

// Result is built per request and never stored
type Result struct {
	ID            uuid.UUID `json:"id"`
	Label         string    `json:"label"         example:"conservative"`
	Class         int       `json:"class"         example:"1"`
	Probabilities []float64 `json:"probabilities"`
	Message       string    `json:"message"       example:"US supreme court direction will be conservative"`
}

// Decode maps the raw class: 1 is conservative, anything else liberal
func Decode(class int) string {
	if class == 1 {
		return LabelConservative
	}
	return LabelLiberal
}

// Message is the sentence shown for a label
func Message(label string) string { return "US supreme court direction will be " + label }

// Form describes the input widgets for one language
type Form struct {
	Lang   string            `json:"lang" example:"en"`
	Fields []FieldDescriptor `json:"fields"`
}
