// Package domain contains the core concepts of the toxicity coach.
// This file defines the fixed label set and the per-message score record.
package domain

import (
	"fmt"
	"math"

	"toxicity-coach/errors"
)

// Label is one of the six toxicity dimensions scored independently.
type Label string

const (
	Toxicity       Label = "toxicity"
	SevereToxicity Label = "severe_toxicity"
	Insult         Label = "insult"
	Threat         Label = "threat"
	Obscene        Label = "obscene"
	IdentityAttack Label = "identity_attack"
)

// Labels lists every label in display order.
var Labels = []Label{Toxicity, SevereToxicity, Insult, Threat, Obscene, IdentityAttack}

var titles = map[Label]string{
	Toxicity:       "Overall Toxic Tone",
	SevereToxicity: "Severely Toxic Content",
	Insult:         "Insulting Language",
	Threat:         "Threatening Language",
	Obscene:        "Obscene Language",
	IdentityAttack: "Identity-Based Attack",
}

// Title is the human readable name used in explanations.
func (l Label) Title() string {
	if t, ok := titles[l]; ok {
		return t
	}
	return string(l)
}

func ParseLabel(s string) (Label, error) {
	for _, l := range Labels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", errors.ErrUnknownLabel, s)
}

// LabelScores holds one score in [0,1] per label.
type LabelScores struct {
	Toxicity       float64
	SevereToxicity float64
	Insult         float64
	Threat         float64
	Obscene        float64
	IdentityAttack float64
}

// Get returns the score for a label, 0 for an unknown one.
func (s LabelScores) Get(l Label) float64 {
	switch l {
	case Toxicity:
		return s.Toxicity
	case SevereToxicity:
		return s.SevereToxicity
	case Insult:
		return s.Insult
	case Threat:
		return s.Threat
	case Obscene:
		return s.Obscene
	case IdentityAttack:
		return s.IdentityAttack
	default:
		return 0
	}
}

// Map flattens the scores, keyed by label name.
func (s LabelScores) Map() map[string]float64 {
	out := make(map[string]float64, len(Labels))
	for _, l := range Labels {
		out[string(l)] = s.Get(l)
	}
	return out
}

// ScoresFromMap is the inverse of Map; missing labels stay at zero.
func ScoresFromMap(m map[string]float64) LabelScores {
	return LabelScores{
		Toxicity:       m[string(Toxicity)],
		SevereToxicity: m[string(SevereToxicity)],
		Insult:         m[string(Insult)],
		Threat:         m[string(Threat)],
		Obscene:        m[string(Obscene)],
		IdentityAttack: m[string(IdentityAttack)],
	}
}

// Rounded rounds every score to 4 decimal places.
func (s LabelScores) Rounded() LabelScores {
	return LabelScores{
		Toxicity:       round4(s.Toxicity),
		SevereToxicity: round4(s.SevereToxicity),
		Insult:         round4(s.Insult),
		Threat:         round4(s.Threat),
		Obscene:        round4(s.Obscene),
		IdentityAttack: round4(s.IdentityAttack),
	}
}

func round4(x float64) float64 {
	return math.Round(x*1e4) / 1e4
}
