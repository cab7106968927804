package services

import (
	"fmt"
	"log/slog"
	"math"

	"toxicity-coach/domain"
	"toxicity-coach/errors"
	"toxicity-coach/infrastructure/storage"
	"toxicity-coach/policy"

	"github.com/go-playground/validator/v10"
)

type EffectiveThreshold struct {
	Label      domain.Label
	Value      float64
	Overridden bool
}

type IPolicyService interface {
	SetThreshold(scope domain.Scope, label string, value float64) (float64, error)
	EffectiveThresholds(scope domain.Scope) ([]EffectiveThreshold, error)
}

type PolicyService struct {
	log        *slog.Logger
	validate   *validator.Validate
	repository storage.IPolicyRepository
	evaluator  *policy.Evaluator
}

func NewPolicyService(log *slog.Logger, repository storage.IPolicyRepository) *PolicyService {
	return &PolicyService{
		log:        log,
		validate:   validator.New(),
		repository: repository,
		evaluator:  policy.NewEvaluator(repository),
	}
}

// SetThreshold stores an override for one label of a scope.
// Values outside [0,1] are clamped; the stored value is returned.
func (s *PolicyService) SetThreshold(scope domain.Scope, label string, value float64) (float64, error) {
	if err := s.validate.Struct(scope); err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrInvalidScope, err)
	}
	l, err := domain.ParseLabel(label)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) {
		return 0, errors.ErrInvalidThreshold
	}
	clamped := math.Min(1, math.Max(0, value))
	if err := s.repository.UpsertThreshold(scope, l, clamped); err != nil {
		return 0, fmt.Errorf("store threshold %s %s: %w", scope, l, err)
	}
	s.log.Info("Threshold updated", "guild", scope.Guild, "channel", scope.Channel, "label", l, "threshold", clamped)
	return clamped, nil
}

// EffectiveThresholds lists the threshold in force for every label, in label order.
func (s *PolicyService) EffectiveThresholds(scope domain.Scope) ([]EffectiveThreshold, error) {
	if err := s.validate.Struct(scope); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidScope, err)
	}
	thresholds := make([]EffectiveThreshold, 0, len(domain.Labels))
	for _, l := range domain.Labels {
		value, overridden, err := s.evaluator.Threshold(scope, l)
		if err != nil {
			return nil, err
		}
		thresholds = append(thresholds, EffectiveThreshold{Label: l, Value: value, Overridden: overridden})
	}
	return thresholds, nil
}
