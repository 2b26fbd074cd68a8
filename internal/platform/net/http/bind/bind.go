// Package bind provides JSON bind and validation helpers for handlers
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "scotuspredict/internal/platform/errors"
	"scotuspredict/internal/platform/logger"
	pnet "scotuspredict/internal/platform/net"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	es_translations "github.com/go-playground/validator/v10/translations/es"
)

// FieldError aliases validator.FieldError
type FieldError = validator.FieldError

// ValidatorSvc holds a singleton validator and one translator per supported language
type ValidatorSvc struct {
	Validator   *validator.Validate
	translators map[string]ut.Translator
}

// short messages per language; {0} is the field, {1} the bound
var shortMessages = map[string]map[string]string{
	"en": {
		"required": "{0} is required",
		"min":      "{0} must be at least {1}",
		"max":      "{0} must be at most {1}",
	},
	"es": {
		"required": "{0} es obligatorio",
		"min":      "{0} debe ser como mínimo {1}",
		"max":      "{0} debe ser como máximo {1}",
	},
}

var (
	vOnce    sync.Once
	vSvc     *ValidatorSvc
	jsonMore = func(dec *json.Decoder) bool { return dec.More() } // seam
)

// Init initializes the singleton validator with en/es translations and json tag names
func Init() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc, esLoc := en.New(), es.New()
		uni := ut.New(enLoc, enLoc, esLoc)

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer json tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		svc := &ValidatorSvc{Validator: v, translators: map[string]ut.Translator{}}

		enT, _ := uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(v, enT)
		svc.translators["en"] = enT

		esT, _ := uni.GetTranslator("es")
		_ = es_translations.RegisterDefaultTranslations(v, esT)
		svc.translators["es"] = esT

		for lang, msgs := range shortMessages {
			for tag, text := range msgs {
				registerShort(v, svc.translators[lang], tag, text)
			}
		}

		vSvc = svc
	})
	return vSvc
}

// Get returns the validator singleton, initializing on first use
func Get() *ValidatorSvc { return Init() }

// Translator returns the translator for a language code, falling back to English
func (s *ValidatorSvc) Translator(lang string) ut.Translator {
	if t, ok := s.translators[lang]; ok {
		return t
	}
	return s.translators["en"]
}

// Struct validates v and maps the first failure to a Validation error carrying the field
func Struct(v any, lang string) error {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.JSONErrf("validation error")
	}
	field, msg := ValidationFieldAndMessage(err, lang)
	return perr.WithField(perr.Validationf("%s", msg), field)
}

// JSONOptions controls parsing behavior
type JSONOptions struct {
	MaxBytes        int64 // default 64KB
	DisallowUnknown bool  // default true
	AllowEmptyBody  bool  // default false
}

func defaultJSONOptions() JSONOptions {
	return JSONOptions{MaxBytes: 64 << 10, DisallowUnknown: true}
}

// ParseJSON decodes JSON into T, validates it in the request language, and maps failures to project errors
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := defaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Error().Err(err).Msg("failed to close request body")
		}
	}()

	var reader io.Reader = r.Body
	if !o.AllowEmptyBody {
		buf := make([]byte, 1)
		n, _ := r.Body.Read(buf)
		if n == 0 {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				return zero, nil
			}
			return zero, perr.JSONErrf("empty body")
		}
		reader = io.MultiReader(bytes.NewReader(buf[:n]), r.Body)
	}
	if o.MaxBytes > 0 {
		reader = io.LimitReader(reader, o.MaxBytes)
	}

	dec := json.NewDecoder(reader)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		if o.AllowEmptyBody && errors.Is(err, io.EOF) {
			return dst, nil
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if jsonMore(dec) {
		return zero, perr.JSONErrf("unexpected trailing data")
	}
	if err := Struct(dst, pnet.Code(pnet.Lang(r.Context()))); err != nil {
		return zero, err
	}
	return dst, nil
}

// ValidationFieldAndMessage returns the first field and its message translated to lang
func ValidationFieldAndMessage(err error, lang string) (field, message string) {
	if err == nil {
		return "", ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			return fe.Field(), fe.Translate(Get().Translator(lang))
		}
	}
	return "", err.Error()
}

func registerShort(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error { return ut.Add(tag, text, true) },
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}
