package scoring

import (
	"regexp"
	"strings"

	"toxicity-coach/domain"
)

// Rule is a hand-tuned pattern over the raw text. When it fires, Label is raised to at least Score.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	// Gate, when set, must accept the first captured word of the first match.
	Gate  func(captured string) bool
	Label domain.Label
	Score float64
}

// Fires reports whether the rule matches text. Only the first match of the pattern is considered.
func (r Rule) Fires(text string) bool {
	if r.Gate == nil {
		return r.Pattern.MatchString(text)
	}
	m := r.Pattern.FindStringSubmatch(text)
	return len(m) > 1 && r.Gate(m[1])
}

const (
	threatScore     = 0.95
	stereotypeScore = 0.80
)

// ThreatRules flag first-person violent intent and targeted harassment.
var ThreatRules = []Rule{
	{
		Name:    "first-person-violence",
		Pattern: regexp.MustCompile(`(?i)\b(i\s*('|’)?m\s+going\s+to|i\s*will|i'll)\s+(kill|hurt|beat|stab|shoot)\b`),
		Label:   domain.Threat,
		Score:   threatScore,
	},
	{
		Name:    "kill-you",
		Pattern: regexp.MustCompile(`(?i)\bkill\s+(you|u|ya)\b`),
		Label:   domain.Threat,
		Score:   threatScore,
	},
	{
		Name:    "shoot-up",
		Pattern: regexp.MustCompile(`(?i)\bshoot\s+up\b`),
		Label:   domain.Threat,
		Score:   threatScore,
	},
	{
		Name:    "dox-swat",
		Pattern: regexp.MustCompile(`(?i)\b(dox|swat)\s+you\b`),
		Label:   domain.Threat,
		Score:   threatScore,
	},
}

// StereotypeRules flag "all X are Y" generalisations when X is an identity word. Y is not inspected.
var StereotypeRules = []Rule{
	{
		Name:    "all-x-are-y",
		Pattern: regexp.MustCompile(`(?i)\ball\s+([a-z]{3,})\s+(are|r)\s+[a-z]{3,}`),
		Gate:    IsIdentityWord,
		Label:   domain.IdentityAttack,
		Score:   stereotypeScore,
	},
	{
		Name:    "every-x-is-y",
		Pattern: regexp.MustCompile(`(?i)\bevery\s+([a-z]{3,})\s+(is|are)\s+[a-z]{3,}`),
		Gate:    IsIdentityWord,
		Label:   domain.IdentityAttack,
		Score:   stereotypeScore,
	},
}

var identityWords = toSet(`
asians asian chinese japanese korean viet filipino indian hindu muslim jew jewish christian arab
black blacks white whites latino latina hispanic mexicans russians ukrainians turks kurds
women woman girls males men guys gays lgbt trans transgender queer
immigrants refugees foreigners
`)

// IsIdentityWord matches verbatim against the identity list, no inflection.
func IsIdentityWord(word string) bool {
	_, ok := identityWords[strings.ToLower(word)]
	return ok
}

func toSet(words string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(words) {
		set[w] = struct{}{}
	}
	return set
}
