// Package policy compares label scores against per-scope thresholds.
package policy

import (
	"fmt"
	"strings"

	"toxicity-coach/domain"
	"toxicity-coach/errors"
)

// DefaultThresholds apply to every label without an override.
var DefaultThresholds = map[domain.Label]float64{
	domain.Toxicity:       0.50,
	domain.SevereToxicity: 0.40,
	domain.Insult:         0.45,
	domain.Threat:         0.35,
	domain.Obscene:        0.45,
	domain.IdentityAttack: 0.35,
}

type LabelDecision struct {
	Score     float64
	Threshold float64
	Over      bool
}

// Decision holds the detail of every label plus the OR of their Over flags.
type Decision struct {
	Triggered bool
	Labels    map[domain.Label]LabelDecision
}

// OverLabels lists the labels at or above their threshold, in label order.
func (d Decision) OverLabels() []domain.Label {
	var over []domain.Label
	for _, l := range domain.Labels {
		if d.Labels[l].Over {
			over = append(over, l)
		}
	}
	return over
}

// Explain renders one line per label over threshold for the author's private panel.
func (d Decision) Explain() string {
	var lines []string
	for _, l := range d.OverLabels() {
		ld := d.Labels[l]
		lines = append(lines, fmt.Sprintf("- %s: %.2f ≥ %.2f", l.Title(), ld.Score, ld.Threshold))
	}
	if len(lines) == 0 {
		return "- Nothing exceeded configured limits."
	}
	return strings.Join(lines, "\n")
}

type Evaluator struct {
	lookup ThresholdLookup
}

func NewEvaluator(lookup ThresholdLookup) *Evaluator {
	return &Evaluator{lookup: lookup}
}

// Threshold returns the override for the scope and label, or the default when none is configured.
// Lookup errors are returned wrapped in ErrLookupFailure, never replaced by the default.
func (e *Evaluator) Threshold(scope domain.Scope, label domain.Label) (float64, bool, error) {
	override, err := e.lookup.Threshold(scope, label)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s %s: %w", errors.ErrLookupFailure, scope, label, err)
	}
	if override != nil {
		return *override, true, nil
	}
	return DefaultThresholds[label], false, nil
}

// Decide marks a label over when its score is >= its threshold.
func (e *Evaluator) Decide(scope domain.Scope, scores domain.LabelScores) (Decision, error) {
	decision := Decision{Labels: make(map[domain.Label]LabelDecision, len(domain.Labels))}
	for _, l := range domain.Labels {
		threshold, _, err := e.Threshold(scope, l)
		if err != nil {
			return Decision{}, err
		}
		score := scores.Get(l)
		over := score >= threshold
		decision.Labels[l] = LabelDecision{Score: score, Threshold: threshold, Over: over}
		decision.Triggered = decision.Triggered || over
	}
	return decision, nil
}
