// Package scoring turns lexicon hits and pattern heuristics into calibrated label scores.
package scoring

import (
	"math"
	"sort"
	"strings"

	"toxicity-coach/domain"
	"toxicity-coach/errors"
	"toxicity-coach/lexicon"

	"github.com/samber/lo"
)

const (
	DefaultRampRate = 0.6

	// baseToxicityCap leaves headroom for always-flag escalation.
	baseToxicityCap    = 0.85
	alwaysFlagToxicity = 0.98
	alwaysFlagIdentity = 0.90
	threatCoupling     = 0.9
	severeScore        = 0.85
)

// Ramp saturates an unbounded weight sum into [0,1): 1 - e^(-k*max(0,x)).
func Ramp(x, k float64) float64 {
	return 1.0 - math.Exp(-k*math.Max(0, x))
}

// Analysis is the full trace of one scoring call.
type Analysis struct {
	Hits        lexicon.Hits
	PerCategory map[domain.Category]float64
	Fired       []string
	Scores      domain.LabelScores
}

// Scorer is stateless apart from the immutable lexicon and rules; share one per process.
type Scorer struct {
	lex   *lexicon.Lexicon
	rules []Rule
}

func NewScorer(lex *lexicon.Lexicon) (*Scorer, error) {
	if lex == nil {
		return nil, errors.ErrConfiguration
	}
	rules := append(append([]Rule{}, ThreatRules...), StereotypeRules...)
	return &Scorer{lex: lex, rules: rules}, nil
}

// Score returns the six label scores, rounded to 4 decimals.
func (s *Scorer) Score(text string) domain.LabelScores {
	return s.Analyze(text).Scores
}

func (s *Scorer) Analyze(text string) Analysis {
	if strings.TrimSpace(text) == "" {
		return Analysis{Hits: lexicon.Hits{}, PerCategory: map[domain.Category]float64{}}
	}

	hits := s.lex.Match(text)
	perCategory := lexicon.SummarizeByCategory(hits)
	var scores domain.LabelScores

	if len(hits) > 0 {
		total := sumWeights(perCategory, func(domain.Category) bool { return true })
		scores.Toxicity = math.Min(baseToxicityCap, Ramp(total, DefaultRampRate))
		scores.Obscene = Ramp(groupWeight(perCategory, domain.ObsceneGroup), DefaultRampRate)
		scores.Insult = Ramp(groupWeight(perCategory, domain.InsultGroup), DefaultRampRate)
		scores.IdentityAttack = Ramp(groupWeight(perCategory, domain.IdentityAttackGroup), DefaultRampRate)
	}

	var fired []string
	for _, r := range s.rules {
		if !r.Fires(text) {
			continue
		}
		fired = append(fired, r.Name)
		raise(&scores, r.Label, r.Score)
	}

	if lexicon.HasAlwaysFlagCategory(hits) {
		scores.Toxicity = math.Max(scores.Toxicity, alwaysFlagToxicity)
		if hasCategoryIn(perCategory, domain.IdentityEscalation) {
			scores.IdentityAttack = math.Max(scores.IdentityAttack, alwaysFlagIdentity)
		}
	}

	if scores.Threat >= threatCoupling {
		scores.Toxicity = math.Max(scores.Toxicity, threatCoupling)
	}

	if scores.Toxicity >= 0.9 && (scores.Obscene >= 0.6 || scores.Threat >= 0.8 || scores.IdentityAttack >= 0.8) {
		scores.SevereToxicity = severeScore
	}

	return Analysis{
		Hits:        hits,
		PerCategory: perCategory,
		Fired:       fired,
		Scores:      scores.Rounded(),
	}
}

func groupWeight(perCategory map[domain.Category]float64, group domain.CategorySet) float64 {
	return sumWeights(perCategory, group.Contains)
}

// sumWeights adds weights in category order so repeated calls give bit-identical sums.
func sumWeights(perCategory map[domain.Category]float64, keep func(domain.Category) bool) float64 {
	categories := lo.Filter(lo.Keys(perCategory), func(c domain.Category, _ int) bool { return keep(c) })
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	var sum float64
	for _, c := range categories {
		sum += perCategory[c]
	}
	return sum
}

func hasCategoryIn(perCategory map[domain.Category]float64, group domain.CategorySet) bool {
	return lo.SomeBy(lo.Keys(perCategory), group.Contains)
}

func raise(scores *domain.LabelScores, label domain.Label, value float64) {
	switch label {
	case domain.Toxicity:
		scores.Toxicity = math.Max(scores.Toxicity, value)
	case domain.Insult:
		scores.Insult = math.Max(scores.Insult, value)
	case domain.Threat:
		scores.Threat = math.Max(scores.Threat, value)
	case domain.Obscene:
		scores.Obscene = math.Max(scores.Obscene, value)
	case domain.IdentityAttack:
		scores.IdentityAttack = math.Max(scores.IdentityAttack, value)
	}
}
