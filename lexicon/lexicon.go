// Package lexicon loads the compiled term table and matches free text against it.
// A Lexicon is immutable once loaded and safe for concurrent readers.
package lexicon

import (
	"encoding/json"
	goerrors "errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"sort"
	"strings"

	"toxicity-coach/domain"
	"toxicity-coach/errors"
)

var phraseSeparator = regexp.MustCompile(`[\s\-]+`)

// Entry is one term of the lexicon with its weight and categories.
type Entry struct {
	Term       string
	Weight     float64
	Categories []domain.Category
}

// Phrase is a multi-word term split into its token sequence.
type Phrase struct {
	Tokens []string
	Term   string
}

type Lexicon struct {
	weights    map[string]float64
	categories map[string][]domain.Category
	words      map[string]struct{}
	phrases    []Phrase
	// phraseIndex maps a space-joined token window to the phrase terms it spells.
	phraseIndex     map[string][]string
	maxPhraseLength int
}

// artifact is the on-disk shape written by the lexicon compiler.
type artifact struct {
	Weights    map[string]json.RawMessage `json:"weights"`
	Categories map[string][]string        `json:"categories"`
}

// Load reads and parses the compiled artifact at path.
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if goerrors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", errors.ErrLexiconNotFound, path)
		}
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}
	lex, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lex, nil
}

// Parse builds a Lexicon from the JSON artifact bytes.
// Term keys are lowercased and category codes uppercased.
func Parse(data []byte) (*Lexicon, error) {
	var raw artifact
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrLexiconMalformed, err)
	}
	if raw.Weights == nil {
		return nil, fmt.Errorf("%w: missing \"weights\"", errors.ErrLexiconMalformed)
	}
	if raw.Categories == nil {
		return nil, fmt.Errorf("%w: missing \"categories\"", errors.ErrLexiconMalformed)
	}

	entries := make([]Entry, 0, len(raw.Weights))
	categories := make(map[string][]domain.Category, len(raw.Categories))
	for term, codes := range raw.Categories {
		normalized := make([]domain.Category, 0, len(codes))
		for _, c := range codes {
			normalized = append(normalized, domain.NormalizeCategory(c))
		}
		categories[strings.ToLower(term)] = normalized
	}
	for term, value := range raw.Weights {
		var weight *float64
		if err := json.Unmarshal(value, &weight); err != nil || weight == nil {
			return nil, fmt.Errorf("%w: weight of %q is not numeric", errors.ErrLexiconMalformed, term)
		}
		w := *weight
		if w < 0 {
			return nil, fmt.Errorf("%w: weight of %q is negative", errors.ErrLexiconMalformed, term)
		}
		key := strings.ToLower(term)
		entries = append(entries, Entry{Term: key, Weight: w, Categories: categories[key]})
	}
	return New(entries), nil
}

// New builds a Lexicon from entries, splitting phrases from single words.
// Any term holding a space or hyphen is a phrase; phrases spelling fewer than two tokens are never matched.
func New(entries []Entry) *Lexicon {
	lex := &Lexicon{
		weights:     make(map[string]float64, len(entries)),
		categories:  make(map[string][]domain.Category, len(entries)),
		words:       make(map[string]struct{}),
		phraseIndex: make(map[string][]string),
	}
	for _, e := range entries {
		term := strings.ToLower(e.Term)
		lex.weights[term] = e.Weight
		cats := make([]domain.Category, len(e.Categories))
		copy(cats, e.Categories)
		lex.categories[term] = cats

		if !strings.ContainsAny(term, " -") {
			lex.words[term] = struct{}{}
			continue
		}
		tokens := splitPhrase(term)
		if len(tokens) < 2 {
			continue
		}
		lex.phrases = append(lex.phrases, Phrase{Tokens: tokens, Term: term})
		lex.maxPhraseLength = max(lex.maxPhraseLength, len(tokens))
	}

	// Longest phrases first, then alphabetical, so iteration order is stable.
	sort.Slice(lex.phrases, func(i, j int) bool {
		if len(lex.phrases[i].Tokens) != len(lex.phrases[j].Tokens) {
			return len(lex.phrases[i].Tokens) > len(lex.phrases[j].Tokens)
		}
		return lex.phrases[i].Term < lex.phrases[j].Term
	})
	for _, p := range lex.phrases {
		key := strings.Join(p.Tokens, " ")
		lex.phraseIndex[key] = append(lex.phraseIndex[key], p.Term)
	}
	return lex
}

func splitPhrase(term string) []string {
	var tokens []string
	for _, t := range phraseSeparator.Split(term, -1) {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Len is the number of terms, words and phrases included.
func (l *Lexicon) Len() int { return len(l.weights) }

func (l *Lexicon) WordCount() int { return len(l.words) }

func (l *Lexicon) Phrases() []Phrase { return l.phrases }

// MaxPhraseLength is the longest phrase in tokens, 0 when there is no phrase.
func (l *Lexicon) MaxPhraseLength() int { return l.maxPhraseLength }

// Weight returns the weight of a term, 1.0 when the term is unknown.
func (l *Lexicon) Weight(term string) float64 {
	if w, ok := l.weights[term]; ok {
		return w
	}
	return 1.0
}

func (l *Lexicon) Categories(term string) []domain.Category {
	return l.categories[term]
}

func (l *Lexicon) HasWord(term string) bool {
	_, ok := l.words[term]
	return ok
}

// Terms returns every term in lexical order.
func (l *Lexicon) Terms() []string {
	terms := make([]string, 0, len(l.weights))
	for t := range l.weights {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}
