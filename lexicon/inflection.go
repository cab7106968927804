package lexicon

import "strings"

var suffixes = []string{"s", "es", "ed", "ing", "er", "est"}

// Lemmas returns the candidate base forms of a token: the token itself, "ies" -> "y",
// and each stripped suffix. A suffix is only stripped when the token is longer than the
// suffix plus one letter, so short words such as "as" survive untouched.
func Lemmas(token string) []string {
	t := strings.ToLower(token)
	out := []string{t}
	seen := map[string]struct{}{t: {}}
	add := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	if len(t) > 3 && strings.HasSuffix(t, "ies") {
		add(t[:len(t)-3] + "y")
	}
	for _, suf := range suffixes {
		if len(t) > len(suf)+1 && strings.HasSuffix(t, suf) {
			add(t[:len(t)-len(suf)])
		}
	}
	return out
}
