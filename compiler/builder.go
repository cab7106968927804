package compiler

import (
	"sort"
	"strings"

	"toxicity-coach/domain"
)

// Weight boosts per category group, added once per group present.
var (
	derogatoryGroup = domain.NewCategorySet(domain.DMC, domain.QAS, domain.SVP, domain.RE)
	physicalGroup   = domain.NewCategorySet(domain.ASM, domain.ASF)
	slurGroup       = domain.NewCategorySet(domain.PS, domain.DDP, domain.DDF, domain.CDS)
)

const (
	baseWeight      = 1.0
	derogatoryBoost = 0.5
	physicalBoost   = 1.0
	slurBoost       = 1.5
	multiWordBoost  = 0.5
	MinTermsToWrite = 100
	DefaultOutput   = "models/hurtlex_model.json"
)

// Artifact is the compiled lexicon: exactly the two fields the lexicon loader reads.
type Artifact struct {
	Weights    map[string]float64  `json:"weights"`
	Categories map[string][]string `json:"categories"`
}

// TermWeight computes the weight of a lemma from its categories and shape.
func TermWeight(term string, cats []domain.Category) float64 {
	w := baseWeight
	if derogatoryGroup.ContainsAny(cats) {
		w += derogatoryBoost
	}
	if physicalGroup.ContainsAny(cats) {
		w += physicalBoost
	}
	if slurGroup.ContainsAny(cats) {
		w += slurBoost
	}
	if strings.ContainsAny(term, " -") {
		w += multiWordBoost
	}
	return w
}

func BuildArtifact(terms TermCategories) Artifact {
	a := Artifact{
		Weights:    make(map[string]float64, len(terms)),
		Categories: make(map[string][]string, len(terms)),
	}
	for term, cats := range terms {
		a.Weights[term] = TermWeight(term, cats)
		codes := make([]string, len(cats))
		for i, c := range cats {
			codes[i] = string(c)
		}
		a.Categories[term] = codes
	}
	return a
}

// CategoryCount is one line of the compile report.
type CategoryCount struct {
	Category domain.Category
	Count    int
}

// TopCategories counts lemmas per category, most frequent first.
func TopCategories(terms TermCategories, n int) []CategoryCount {
	counts := make(map[domain.Category]int)
	for _, cats := range terms {
		for _, c := range cats {
			counts[c]++
		}
	}
	out := make([]CategoryCount, 0, len(counts))
	for c, k := range counts {
		out = append(out, CategoryCount{Category: c, Count: k})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
