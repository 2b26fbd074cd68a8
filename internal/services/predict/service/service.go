// Package service runs a prediction against the shared classifier
package service

import (
	"context"

	"scotuspredict/internal/core/artifact"
	"scotuspredict/internal/core/codebook"
	perr "scotuspredict/internal/platform/errors"
	"scotuspredict/internal/platform/logger"
	"scotuspredict/internal/services/predict/domain"

	"github.com/google/uuid"
)

// Service defines the predict service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the predict service; it holds no per-request state
type Svc struct {
	model  *artifact.Handle
	labels domain.CodebookPort
	newID  func() uuid.UUID
}

// New constructs a predict service; labels may be nil to use the embedded codebook
func New(model *artifact.Handle, labels domain.CodebookPort) *Svc {
	if model == nil {
		panic("predict.Service requires a non nil model handle")
	}
	return &Svc{model: model, labels: labels, newID: uuid.New}
}

func (s *Svc) codebook(ctx context.Context) *codebook.Codebook {
	if s.labels != nil {
		if cb := s.labels.Codebook(ctx); cb != nil {
			return cb
		}
	}
	return codebook.Default()
}

// Predict checks the vector, loads the classifier on first use and decodes its class
func (s *Svc) Predict(ctx context.Context, in domain.Features) (domain.Result, error) {
	if err := CheckBounds(s.codebook(ctx), in); err != nil {
		return domain.Result{}, err
	}

	f, err := s.model.Get(ctx)
	if err != nil {
		return domain.Result{}, err
	}

	class, proba, err := f.Predict(in.Vector())
	if err != nil {
		return domain.Result{}, perr.WithOp(err, "predict")
	}
	label := domain.Decode(class)

	res := domain.Result{
		ID:            s.newID(),
		Label:         label,
		Class:         class,
		Probabilities: proba,
		Message:       domain.Message(label),
	}
	logger.C(ctx).Debug().
		Str("prediction_id", res.ID.String()).
		Str("label", label).
		Floats64("proba", proba).
		Msg("prediction")
	return res, nil
}

// Form lists the widgets in vector order with labels in lang
func (s *Svc) Form(ctx context.Context, lang string) (domain.Form, error) {
	cb := s.codebook(ctx)
	fields := cb.Fields()
	out := domain.Form{Lang: lang, Fields: make([]domain.FieldDescriptor, 0, len(fields))}
	for _, f := range fields {
		out.Fields = append(out.Fields, domain.FieldDescriptor{
			Name:    f.Name,
			Kind:    f.Kind,
			Label:   cb.Label(f.Name, lang),
			Help:    cb.Help(f.Name, lang),
			Min:     f.Min,
			Max:     f.Max,
			Options: cb.Options(f.Name, lang),
		})
	}
	return out, nil
}

// Ready returns the memoized load error, if a load has run
func (s *Svc) Ready() error {
	_, _, err := s.model.Status()
	return err
}

// CheckBounds rejects a vector with a missing or out of range field before any inference
func CheckBounds(cb *codebook.Codebook, in domain.Features) error {
	for _, v := range in.Values() {
		if v.Value == nil {
			return perr.WithField(perr.Validationf("%s is required", v.Name), v.Name)
		}
		if !cb.InBounds(v.Name, *v.Value) {
			f, _ := cb.Field(v.Name)
			return perr.WithField(
				perr.Validationf("%s must be between %d and %d", v.Name, f.Min, f.Max),
				v.Name,
			)
		}
	}
	return nil
}
