package lexicon

import (
	"regexp"
	"strings"
)

// wordPattern keeps runs of letters with at most one internal apostrophe ("don't").
// Digits, punctuation, URLs and mentions fall between matches and are dropped.
var wordPattern = regexp.MustCompile(`[a-z]+(?:'[a-z]+)?`)

// Tokenize lowercases text and extracts its word tokens.
func Tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}
