package moderation

import (
	"slices"
	"sort"
	"strings"
	"unicode"

	"toxicity-coach/lexicon"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Moderator masks lexicon terms in a message to build the preview shown to its author.
// It is built once from the loaded lexicon and is read-only afterwards.
type Moderator struct {
	matcher      *goahocorasick.Machine
	terms        map[string]string
	censoredChar rune
}

type TextMapping struct {
	Normalized []rune
	OrigIdx    []int
}

// NewModerator initializes the Aho-Corasick automaton with a normalized version of the provided terms.
// Terms normalizing to nothing are ignored; an empty list yields a Moderator that censors nothing.
func NewModerator(terms []string, censoredChar rune) (Moderator, error) {
	byPattern := make(map[string]string, len(terms))
	for _, term := range terms {
		pattern := string(normalizeRunes([]rune(term)))
		if pattern == "" {
			continue
		}
		if _, ok := byPattern[pattern]; !ok {
			byPattern[pattern] = term
		}
	}
	if len(byPattern) == 0 {
		return Moderator{censoredChar: censoredChar}, nil
	}

	keys := make([]string, 0, len(byPattern))
	for k := range byPattern {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	patterns := make([][]rune, len(keys))
	for i, k := range keys {
		patterns[i] = []rune(k)
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Moderator{}, err
	}
	return Moderator{matcher: m, terms: byPattern, censoredChar: censoredChar}, nil
}

// Censor replaces every whole-word occurrence of a term with the censor character and
// returns the masked text with the terms found, in order of appearance.
// A term followed by an inflection suffix ("kill" in "killing") masks the whole word.
// Leet spellings and inner punctuation ("b.4.d") are still caught.
func (m *Moderator) Censor(original string) (string, []string) {
	if m.matcher == nil {
		return original, nil
	}
	mapping := normalize(original)
	if len(mapping.Normalized) == 0 {
		return original, nil
	}

	origRunes := []rune(original)
	spans := m.matcher.MultiPatternSearch(mapping.Normalized, false)
	if len(spans) == 0 {
		return original, nil
	}

	var found []string
	masked := false
	for _, span := range spans {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)
		if normStart < 0 || normEnd > len(mapping.OrigIdx) {
			continue
		}

		origStart := mapping.OrigIdx[normStart]
		origEnd := mapping.OrigIdx[normEnd-1] + 1
		if !isBoundary(origRunes, origStart-1) {
			continue
		}
		if !isBoundary(origRunes, origEnd) {
			wordEnd, inflected := inflectedEnd(origRunes, origEnd, string(span.Word))
			if !inflected {
				continue
			}
			origEnd = wordEnd
		}

		for i := origStart; i < origEnd; i++ {
			if !unicode.IsSpace(origRunes[i]) {
				origRunes[i] = m.censoredChar
			}
		}
		found = append(found, m.terms[string(span.Word)])
		masked = true
	}
	if !masked {
		return original, nil
	}
	return string(origRunes), found
}

// normalize transforms the input string into a searchable format and tracks original rune positions.
// Whitespace runs collapse to a single space so multi-word terms still line up.
func normalize(input string) TextMapping {
	origRunes := []rune(input)
	norm := make([]rune, 0, len(origRunes))
	origIdx := make([]int, 0, len(origRunes))

	for i, r := range origRunes {
		if unicode.IsSpace(r) {
			if len(norm) > 0 && norm[len(norm)-1] != ' ' {
				norm = append(norm, ' ')
				origIdx = append(origIdx, i)
			}
			continue
		}
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		norm = append(norm, unicode.ToLower(clean))
		origIdx = append(origIdx, i)
	}
	return TextMapping{Normalized: norm, OrigIdx: origIdx}
}

// normalizeRunes applies the same rules to a term. Hyphens vanish, so "low-life" becomes "lowlife".
func normalizeRunes(input []rune) []rune {
	mapping := normalize(string(input))
	out := mapping.Normalized
	for len(out) > 0 && out[len(out)-1] == ' ' {
		out = out[:len(out)-1]
	}
	return out
}

// simplifyRune maps common Leet speak characters back to their standard alphabet counterparts.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

// isNoise identifies characters that should be ignored during the pattern matching phase.
func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// inflectedEnd extends a match to the end of its word when the trailing letters are an
// inflection the lexicon backs off from.
func inflectedEnd(runes []rune, end int, term string) (int, bool) {
	wordEnd := end
	for !isBoundary(runes, wordEnd) {
		wordEnd++
	}
	word := term + strings.ToLower(string(runes[end:wordEnd]))
	return wordEnd, slices.Contains(lexicon.Lemmas(word), term)
}

// isBoundary is true outside the text or on a rune that cannot extend a word.
func isBoundary(runes []rune, i int) bool {
	if i < 0 || i >= len(runes) {
		return true
	}
	r := runes[i]
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
