package lexicon

import (
	"sync"
	"testing"

	"toxicity-coach/domain"

	"github.com/stretchr/testify/require"
)

func testLexicon() *Lexicon {
	return New([]Entry{
		{Term: "kill", Weight: 1.5, Categories: []domain.Category{domain.RE}},
		{Term: "bully", Weight: 1.0, Categories: []domain.Category{domain.DMC}},
		{Term: "a", Weight: 1.0, Categories: []domain.Category{domain.QAS}},
		{Term: "dumb ass", Weight: 2.0, Categories: []domain.Category{domain.DDP, domain.ASM}},
		{Term: "low-life scum", Weight: 1.5, Categories: []domain.Category{domain.CDS}},
		{Term: "life scum", Weight: 1.5, Categories: []domain.Category{domain.DMC}},
		{Term: "scum bag", Weight: 1.5, Categories: []domain.Category{domain.DMC}},
		{Term: "pig", Weight: 1.0, Categories: []domain.Category{domain.AN, domain.IS}},
		{Term: "jerk", Weight: 1.0},
	})
}

func TestMatch_Phrase_Hit_Without_Registered_Words(t *testing.T) {
	req := require.New(t)
	hits := testLexicon().Match("You are such a DUMB  ass, honestly.")

	req.Contains(hits, "dumb ass")
	req.Equal(KindPhrase, hits["dumb ass"].Kind)
	req.Equal(2.0, hits["dumb ass"].Weight)
	req.NotContains(hits, "dumb")
	req.NotContains(hits, "ass")
}

func TestMatch_Overlapping_Phrases_Are_All_Kept(t *testing.T) {
	req := require.New(t)
	hits := testLexicon().Match("what a low life scum bag")

	req.Equal([]string{"a", "life scum", "low-life scum", "scum bag"}, hits.Terms())
	req.Equal(KindPhrase, hits["low-life scum"].Kind)
	req.Equal(KindWord, hits["a"].Kind)
}

func TestMatch_Inflections(t *testing.T) {
	lex := testLexicon()
	for _, text := range []string{"killing", "killed", "kills", "killer", "KILL"} {
		t.Run(text, func(t *testing.T) {
			req := require.New(t)
			hits := lex.Match(text)
			req.Contains(hits, "kill")
			req.Equal(KindWord, hits["kill"].Kind)
		})
	}

	t.Run("ies becomes y", func(t *testing.T) {
		require.Contains(t, lex.Match("stop the bullies"), "bully")
	})
}

func TestMatch_Short_Words_Are_Not_Stripped(t *testing.T) {
	req := require.New(t)
	hits := testLexicon().Match("as is")
	req.Empty(hits)
}

func TestMatch_No_Fuzzy_Matching(t *testing.T) {
	req := require.New(t)
	req.Empty(testLexicon().Match("kil k1ll skill"))
}

func TestMatch_Empty_Input(t *testing.T) {
	req := require.New(t)
	req.Empty(testLexicon().Match(""))
	req.Empty(testLexicon().Match("   "))
}

func TestSummarizeByCategory(t *testing.T) {
	req := require.New(t)
	hits := testLexicon().Match("you pig, you dumb ass, i will kill")

	summary := SummarizeByCategory(hits)
	req.Equal(map[domain.Category]float64{
		domain.AN:  1.0,
		domain.IS:  1.0,
		domain.DDP: 2.0,
		domain.ASM: 2.0,
		domain.RE:  1.5,
	}, summary)
}

func TestSummarizeByCategory_Hit_Without_Category(t *testing.T) {
	req := require.New(t)
	hits := testLexicon().Match("jerk")
	req.Len(hits, 1)
	req.Empty(SummarizeByCategory(hits))
}

func TestHasAlwaysFlagCategory(t *testing.T) {
	req := require.New(t)
	lex := testLexicon()
	req.True(HasAlwaysFlagCategory(lex.Match("dumb ass")))
	req.True(HasAlwaysFlagCategory(lex.Match("low life scum")))
	req.False(HasAlwaysFlagCategory(lex.Match("kill the pig")))
	req.False(HasAlwaysFlagCategory(Hits{}))
}

func TestMatch_Concurrent_Readers(t *testing.T) {
	req := require.New(t)
	lex := testLexicon()
	expected := lex.Match("you dumb ass killer pig")

	var wg sync.WaitGroup
	results := make([]Hits, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = lex.Match("you dumb ass killer pig")
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		req.Equal(expected, r)
	}
}
