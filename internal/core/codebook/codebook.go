// Package codebook holds the field descriptors and categorical label lists for the prediction form.
// A categorical value is always the zero-based position in its list; labels are display only.
package codebook

import (
	_ "embed"
	"encoding/json"
	"sync"

	perr "scotuspredict/internal/platform/errors"
)

//go:embed codebook.json
var embedded []byte

// Kind separates free numeric inputs from fixed selectors
type Kind string

// Field kinds
const (
	KindNumber Kind = "number"
	KindSelect Kind = "select"
)

// DefaultLang is used when a label is missing in the requested language
const DefaultLang = "en"

// Order is the feature vector layout the classifier was trained on
var Order = []string{"issue", "case_origin", "case_source", "cert_reason", "law_type", "natural_court", "admin_action"}

// Field describes one input with inclusive bounds
type Field struct {
	Name    string              `json:"name"`
	Kind    Kind                `json:"kind"`
	Min     int                 `json:"min"`
	Max     int                 `json:"max"`
	Label   map[string]string   `json:"label"`
	Help    map[string]string   `json:"help,omitempty"`
	Options map[string][]string `json:"options,omitempty"`
}

// Option is one selector entry; Value is the position in the list
type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Codebook is immutable after construction; overrides return a copy
type Codebook struct {
	fields []Field
	index  map[string]int
}

type file struct {
	Fields []Field `json:"fields"`
}

var (
	defaultOnce sync.Once
	defaultCB   *Codebook
)

// Default returns the embedded codebook; it panics if the embedded file is invalid
func Default() *Codebook {
	defaultOnce.Do(func() {
		cb, err := Parse(embedded)
		if err != nil {
			panic("codebook: embedded file invalid: " + err.Error())
		}
		defaultCB = cb
	})
	return defaultCB
}

// Parse decodes and validates a codebook document
func Parse(b []byte) (*Codebook, error) {
	var f file
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "codebook: malformed json")
	}
	return build(f.Fields)
}

func build(fields []Field) (*Codebook, error) {
	if len(fields) != len(Order) {
		return nil, perr.InvalidArgf("codebook: want %d fields, got %d", len(Order), len(fields))
	}
	cb := &Codebook{fields: fields, index: make(map[string]int, len(fields))}
	for i, f := range fields {
		if f.Name != Order[i] {
			return nil, perr.InvalidArgf("codebook: field %d is %q, want %q", i, f.Name, Order[i])
		}
		if f.Min > f.Max {
			return nil, perr.InvalidArgf("codebook: %s min > max", f.Name)
		}
		if f.Label[DefaultLang] == "" {
			return nil, perr.InvalidArgf("codebook: %s has no %s label", f.Name, DefaultLang)
		}
		switch f.Kind {
		case KindNumber:
		case KindSelect:
			if f.Min != 0 {
				return nil, perr.InvalidArgf("codebook: selector %s must start at 0", f.Name)
			}
			for lang, opts := range f.Options {
				if len(opts) != f.Max+1 {
					return nil, perr.InvalidArgf("codebook: %s/%s has %d options for bounds [0,%d]", f.Name, lang, len(opts), f.Max)
				}
			}
			if len(f.Options[DefaultLang]) == 0 {
				return nil, perr.InvalidArgf("codebook: %s has no %s options", f.Name, DefaultLang)
			}
		default:
			return nil, perr.InvalidArgf("codebook: %s has unknown kind %q", f.Name, f.Kind)
		}
		cb.index[f.Name] = i
	}
	return cb, nil
}

// Fields returns the descriptors in vector order
func (c *Codebook) Fields() []Field { return append([]Field(nil), c.fields...) }

// Field looks up a descriptor by name
func (c *Codebook) Field(name string) (Field, bool) {
	i, ok := c.index[name]
	if !ok {
		return Field{}, false
	}
	return c.fields[i], true
}

// InBounds reports whether v is within the field's inclusive bounds
func (c *Codebook) InBounds(name string, v int) bool {
	f, ok := c.Field(name)
	return ok && v >= f.Min && v <= f.Max
}

// Label is the field's display label in lang
func (c *Codebook) Label(name, lang string) string {
	f, _ := c.Field(name)
	return pick(f.Label, lang)
}

// Help is the field's hint text in lang
func (c *Codebook) Help(name, lang string) string {
	f, _ := c.Field(name)
	return pick(f.Help, lang)
}

// Options lists a selector's entries in lang; nil for numeric fields
func (c *Codebook) Options(name, lang string) []Option {
	f, ok := c.Field(name)
	if !ok || f.Kind != KindSelect {
		return nil
	}
	labels := f.Options[lang]
	if len(labels) == 0 {
		labels = f.Options[DefaultLang]
	}
	out := make([]Option, len(labels))
	for i, l := range labels {
		out[i] = Option{Value: i, Label: l}
	}
	return out
}

// WithLabels returns a copy with a selector's labels replaced for lang.
// The list length must match the bounds so positions keep their meaning.
func (c *Codebook) WithLabels(name, lang string, labels []string) (*Codebook, error) {
	i, ok := c.index[name]
	if !ok {
		return nil, perr.NotFoundf("codebook: no field %q", name)
	}
	f := c.fields[i]
	if f.Kind != KindSelect {
		return nil, perr.InvalidArgf("codebook: %s is not a selector", name)
	}
	if len(labels) != f.Max+1 {
		return nil, perr.InvalidArgf("codebook: %s needs %d labels, got %d", name, f.Max+1, len(labels))
	}

	opts := make(map[string][]string, len(f.Options)+1)
	for k, v := range f.Options {
		opts[k] = v
	}
	opts[lang] = append([]string(nil), labels...)
	f.Options = opts

	fields := append([]Field(nil), c.fields...)
	fields[i] = f
	return &Codebook{fields: fields, index: c.index}, nil
}

func pick(m map[string]string, lang string) string {
	if v := m[lang]; v != "" {
		return v
	}
	return m[DefaultLang]
}
