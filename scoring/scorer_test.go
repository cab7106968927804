package scoring

import (
	"math"
	"strings"
	"sync"
	"testing"

	"toxicity-coach/domain"
	"toxicity-coach/errors"
	"toxicity-coach/lexicon"

	"github.com/stretchr/testify/require"
)

func newTestScorer(t *testing.T) *Scorer {
	t.Helper()
	lex := lexicon.New([]lexicon.Entry{
		{Term: "kill", Weight: 1.5, Categories: []domain.Category{domain.RE}},
		{Term: "moron", Weight: 1.0, Categories: []domain.Category{domain.QAS}},
		{Term: "pig", Weight: 1.0, Categories: []domain.Category{domain.AN, domain.IS}},
		{Term: "trash", Weight: 1.0, Categories: []domain.Category{domain.DMC}},
		{Term: "dumb ass", Weight: 2.0, Categories: []domain.Category{domain.DDP, domain.ASM}},
		{Term: "cripple", Weight: 2.5, Categories: []domain.Category{domain.DDF}},
	})
	scorer, err := NewScorer(lex)
	require.NoError(t, err)
	return scorer
}

func TestNewScorer_Without_Lexicon(t *testing.T) {
	req := require.New(t)
	_, err := NewScorer(nil)
	req.ErrorIs(err, errors.ErrConfiguration)
}

func TestRamp(t *testing.T) {
	req := require.New(t)
	req.Equal(0.0, Ramp(0, DefaultRampRate))
	req.Equal(0.0, Ramp(-3, DefaultRampRate))
	req.InDelta(0.4512, Ramp(1, DefaultRampRate), 1e-4)
	req.Less(Ramp(100, DefaultRampRate), 1.0+1e-12)
	prev := 0.0
	for x := 0.5; x < 20; x += 0.5 {
		cur := Ramp(x, DefaultRampRate)
		req.Greater(cur, prev)
		prev = cur
	}
}

func TestScore_Empty_Input_Is_Zero(t *testing.T) {
	scorer := newTestScorer(t)
	for _, text := range []string{"", " ", "\t\n  "} {
		require.Equal(t, domain.LabelScores{}, scorer.Score(text))
	}
}

func TestScore_Lexicon_Only(t *testing.T) {
	scorer := newTestScorer(t)
	tests := []struct {
		name     string
		text     string
		expected domain.LabelScores
	}{
		{
			name:     "Clean text",
			text:     "have a nice day",
			expected: domain.LabelScores{},
		},
		{
			name:     "Single obscene word",
			text:     "what a moron",
			expected: domain.LabelScores{Toxicity: 0.4512, Obscene: 0.4512},
		},
		{
			name:     "Word in insult and identity groups",
			text:     "you pig",
			expected: domain.LabelScores{Toxicity: 0.6988, Insult: 0.4512, IdentityAttack: 0.6988},
		},
		{
			name: "Base toxicity is capped",
			text: "kill the moron pig, trash",
			expected: domain.LabelScores{
				Toxicity:       0.85,
				Insult:         0.4512,
				Obscene:        0.8775,
				IdentityAttack: 0.6988,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, scorer.Score(tt.text))
		})
	}
}

func TestScore_Always_Flag_Categories(t *testing.T) {
	req := require.New(t)
	scorer := newTestScorer(t)

	scores := scorer.Score("you dumb ass")
	req.Equal(domain.LabelScores{
		Toxicity:       0.98,
		SevereToxicity: 0.85,
		IdentityAttack: 0.9,
	}, scores)

	// DDF is always-flag but not in the identity escalation group.
	scores = scorer.Score("cripple")
	req.Equal(0.98, scores.Toxicity)
	req.Equal(0.0, scores.IdentityAttack)
	req.Equal(0.0, scores.SevereToxicity)
}

func TestScore_Threat(t *testing.T) {
	req := require.New(t)
	scorer := newTestScorer(t)

	scores := scorer.Score("I will kill you")
	req.Equal(domain.LabelScores{
		Toxicity:       0.9,
		SevereToxicity: 0.85,
		Threat:         0.95,
		Obscene:        0.5934,
	}, scores)

	scores = scorer.Score("gonna dox you tonight")
	req.Equal(0.95, scores.Threat)
	req.Equal(0.9, scores.Toxicity)
}

func TestScore_Stereotype(t *testing.T) {
	scorer := newTestScorer(t)
	tests := []struct {
		text     string
		identity float64
	}{
		{"all muslim are bad", 0.8},
		{"ALL Women ARE lazy", 0.8},
		{"every woman is lazy", 0.8},
		{"all r bad", 0},
		{"all dogs are loyal", 0},
		{"all muslims are terrible", 0},
		{"every immigrant is welcome", 0},
		{"all dogs are cute and all women are bad", 0},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			scores := scorer.Score(tt.text)
			require.Equal(t, tt.identity, scores.IdentityAttack)
			require.Equal(t, 0.0, scores.SevereToxicity)
		})
	}
}

func TestScore_Invariants(t *testing.T) {
	scorer := newTestScorer(t)
	texts := []string{
		"", "hello", "you dumb ass", "I'm going to stab you, pig",
		"all jews are greedy trash", "kill kill kill", strings.Repeat("moron ", 500),
		"ünïcödé ☃ 😀 <@123> https://example.com", "shoot up the place", "cripple",
	}
	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			req := require.New(t)
			scores := scorer.Score(text)
			for _, l := range domain.Labels {
				v := scores.Get(l)
				req.False(math.IsNaN(v) || math.IsInf(v, 0), l)
				req.GreaterOrEqual(v, 0.0, l)
				req.LessOrEqual(v, 1.0, l)
			}
			req.Equal(scores, scorer.Score(text))
			if scores.SevereToxicity > 0 {
				req.GreaterOrEqual(scores.Toxicity, 0.9)
			}
			analysis := scorer.Analyze(text)
			if lexicon.HasAlwaysFlagCategory(analysis.Hits) {
				req.GreaterOrEqual(scores.Toxicity, 0.98)
			}
		})
	}
}

func TestScore_Monotonic_In_Occurrences(t *testing.T) {
	req := require.New(t)
	scorer := newTestScorer(t)
	prev := 0.0
	text := "well"
	for _, add := range []string{"moron", "moron", "trash", "pig", "pig", "kill", "dumb ass"} {
		text += " " + add
		cur := scorer.Score(text).Toxicity
		req.GreaterOrEqual(cur, prev, text)
		prev = cur
	}
}

func TestAnalyze_Reports_Fired_Rules(t *testing.T) {
	req := require.New(t)
	analysis := newTestScorer(t).Analyze("i'll shoot, all gays are sinners")
	req.Equal([]string{"first-person-violence", "all-x-are-y"}, analysis.Fired)
	req.Empty(analysis.Hits)
}

func TestScore_Concurrent_Callers(t *testing.T) {
	req := require.New(t)
	scorer := newTestScorer(t)
	expected := scorer.Score("I will kill you, dumb ass pig")

	var wg sync.WaitGroup
	got := make([]domain.LabelScores, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = scorer.Score("I will kill you, dumb ass pig")
		}(i)
	}
	wg.Wait()
	for _, s := range got {
		req.Equal(expected, s)
	}
}
