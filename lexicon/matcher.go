package lexicon

import (
	"sort"
	"strings"

	"toxicity-coach/domain"

	"github.com/samber/lo"
)

type HitKind string

const (
	KindPhrase HitKind = "phrase"
	KindWord   HitKind = "word"
)

// MatchHit is one lexicon term found in a text.
type MatchHit struct {
	Term       string
	Categories []domain.Category
	Weight     float64
	Kind       HitKind
}

// Hits is keyed by term; phrase and word hits share the keyspace.
type Hits map[string]MatchHit

// Match scans text for phrase hits first, then for single words with inflection backoff.
// A word hit never overwrites an existing hit for the same term.
func (l *Lexicon) Match(text string) Hits {
	hits := make(Hits)
	tokens := Tokenize(text)
	n := len(tokens)

	if l.maxPhraseLength > 1 {
		for start := 0; start < n; start++ {
			for size := min(l.maxPhraseLength, n-start); size >= 2; size-- {
				window := strings.Join(tokens[start:start+size], " ")
				for _, term := range l.phraseIndex[window] {
					hits[term] = l.hit(term, KindPhrase)
				}
			}
		}
	}

	for _, tok := range tokens {
		for _, lemma := range Lemmas(tok) {
			if _, seen := hits[lemma]; seen || !l.HasWord(lemma) {
				continue
			}
			hits[lemma] = l.hit(lemma, KindWord)
		}
	}
	return hits
}

func (l *Lexicon) hit(term string, kind HitKind) MatchHit {
	return MatchHit{
		Term:       term,
		Categories: l.Categories(term),
		Weight:     l.Weight(term),
		Kind:       kind,
	}
}

// SummarizeByCategory sums hit weights per category.
// A hit bearing N categories contributes its full weight to each of them.
func SummarizeByCategory(hits Hits) map[domain.Category]float64 {
	perCategory := make(map[domain.Category]float64)
	for _, term := range hits.Terms() {
		h := hits[term]
		for _, c := range h.Categories {
			perCategory[c] += h.Weight
		}
	}
	return perCategory
}

// HasAlwaysFlagCategory reports whether any hit carries an always-flag category.
func HasAlwaysFlagCategory(hits Hits) bool {
	return lo.SomeBy(lo.Values(hits), func(h MatchHit) bool {
		return domain.AlwaysFlag.ContainsAny(h.Categories)
	})
}

// Terms returns the matched terms in lexical order.
func (h Hits) Terms() []string {
	keys := lo.Keys(h)
	sort.Strings(keys)
	return keys
}
