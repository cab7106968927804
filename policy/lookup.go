//go:generate go run go.uber.org/mock/mockgen -source=lookup.go -destination=../mocks/mock_threshold_lookup.go -package=mocks
package policy

import "toxicity-coach/domain"

// ThresholdLookup returns the override configured for a scope and label.
// A nil threshold with a nil error means "no override configured".
type ThresholdLookup interface {
	Threshold(scope domain.Scope, label domain.Label) (*float64, error)
}
