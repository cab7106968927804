package moderation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

// TestModerator_Censor
// The dictionary uses specific words to avoid partial collisions (e.g., "he" inside "The")
func TestModerator_Censor(t *testing.T) {
	req := require.New(t)
	dictionary := []string{"badger", "snake", "mushroom"}
	mod, err := NewModerator(dictionary, replacementChar)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word and space preservation",
			input:    "The badger is here",
			expected: "The ****** is here",
			words:    []string{"badger"},
		},
		{
			name:     "Multiple occurrences and preserved spacing",
			input:    "badger badger badger",
			expected: "****** ****** ******",
			words:    []string{"badger", "badger", "badger"},
		},
		{
			name: "Leet speak and internal punctuation",
			// B (index 8) . 4 . d . g . € r (index 17) -> 10 characters
			input:    "Look at B.4.d.g.€r !",
			expected: "Look at ********** !",
			words:    []string{"badger"},
		},
		{
			name:     "Uppercase and extreme noise",
			input:    "S-N-A-K-E is a B.A.D.G.E.R",
			expected: "********* is a ***********",
			words:    []string{"snake", "badger"},
		},
		{
			name:     "Accents and special characters (UTF-8)",
			input:    "Un été avec un badger",
			expected: "Un été avec un ******",
			words:    []string{"badger"},
		},
		{
			name:     "Word adjacent to trailing punctuation",
			input:    "I love badger!",
			expected: "I love ******!",
			words:    []string{"badger"},
		},
		{
			name:     "Term inside a longer word is left alone",
			input:    "honeybadgers everywhere",
			expected: "honeybadgers everywhere",
			words:    nil,
		},
		{
			name:     "Nothing to censor",
			input:    "Coach is amazing",
			expected: "Coach is amazing",
			words:    nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, words := mod.Censor(tt.input)
			req.Equal(tt.expected, content, "test=%s,", tt.name)
			req.Equal(tt.words, words, "expected=%s,words=%s", tt.expected, words)
		})
	}
}

func TestModerator_CornerCases(t *testing.T) {
	req := require.New(t)

	// Given real noise and not Leet Speak associated
	dictionary := []string{"...", ",,,", "", "badger"}

	mod, err := NewModerator(dictionary, replacementChar)
	req.NoError(err)

	// Then the sentence is censored
	content, words := mod.Censor("The badger is safe")
	req.Equal("The ****** is safe", content)
	req.Equal([]string{"badger"}, words)

	// Then real noise is uncensored
	content, words = mod.Censor("Hello ...")
	req.Equal("Hello ...", content)
	req.Nil(words)
}

func TestModerator_Phrases_And_Word_Boundaries(t *testing.T) {
	req := require.New(t)
	mod, err := NewModerator([]string{"ass", "dumb ass", "low-life"}, '#')
	req.NoError(err)

	content, words := mod.Censor("you dumb   ass")
	req.Equal("you ####   ###", content)
	req.ElementsMatch([]string{"dumb ass", "ass"}, words)

	content, words = mod.Censor("an assassin passes")
	req.Equal("an assassin passes", content)
	req.Nil(words)

	content, words = mod.Censor("what a low-life")
	req.Equal("what a ########", content)
	req.Equal([]string{"low-life"}, words)
}

func TestModerator_Inflected_Words(t *testing.T) {
	req := require.New(t)
	mod, err := NewModerator([]string{"kill", "badger"}, replacementChar)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{"Gerund", "stop killing it", "stop ******* it", []string{"kill"}},
		{"Plural", "two badgers", "two *******", []string{"badger"}},
		{"Past tense with leet", "k1lled again", "****** again", []string{"kill"}},
		{"Not an inflection", "killjoy", "killjoy", nil},
		{"Term inside a word", "skills", "skills", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			content, words := mod.Censor(tt.input)
			req.Equal(tt.expected, content)
			req.Equal(tt.words, words)
		})
	}
}

func TestModerator_Empty_Dictionary(t *testing.T) {
	req := require.New(t)
	mod, err := NewModerator(nil, replacementChar)
	req.NoError(err)

	content, words := mod.Censor("nothing to see")
	req.Equal("nothing to see", content)
	req.Nil(words)
}

func BenchmarkModerator_Censor(b *testing.B) {
	words := make([]string, 0, 100_000)
	for i := 0; i < 100_000; i++ {
		words = append(words, fmt.Sprintf("word%dx", i))
	}
	mod, err := NewModerator(append(words, "badger"), replacementChar)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mod.Censor("The b4dger is hiding in the garden with word42x and friends")
	}
}
