package domain

import "strings"

// Category is a short uppercase code classifying why a term is flagged.
type Category string

// Codes of the HurtLex taxonomy.
const (
	PS  Category = "PS"  // negative stereotypes, ethnic slurs
	RCI Category = "RCI" // locations and demonyms
	PA  Category = "PA"  // professions and occupations
	DDF Category = "DDF" // physical disabilities and diversity
	DDP Category = "DDP" // cognitive disabilities and diversity
	DMC Category = "DMC" // moral and behavioral defects
	IS  Category = "IS"  // words related to social and economic disadvantage
	OR  Category = "OR"  // plants
	AN  Category = "AN"  // animals
	ASM Category = "ASM" // male genitalia
	ASF Category = "ASF" // female genitalia
	PR  Category = "PR"  // words related to prostitution
	OM  Category = "OM"  // words related to homosexuality
	QAS Category = "QAS" // potential negative connotations
	CDS Category = "CDS" // derogatory words
	RE  Category = "RE"  // felonies and crime
	SVP Category = "SVP" // seven deadly sins
)

// KnownCategories is the full taxonomy accepted by the lexicon compiler.
var KnownCategories = NewCategorySet(PS, RCI, PA, DDF, DDP, DMC, IS, OR, AN, ASM, ASF, PR, OM, QAS, CDS, RE, SVP)

// Category groups used by the scorer and the compiler.
var (
	AlwaysFlag          = NewCategorySet(PS, DDP, DDF, CDS, ASM, ASF)
	IdentityEscalation  = NewCategorySet(ASM, ASF, CDS)
	ObsceneGroup        = NewCategorySet(QAS, SVP, RE, DMC)
	InsultGroup         = NewCategorySet(IS, OM, PR)
	IdentityAttackGroup = NewCategorySet(ASM, ASF, CDS, RCI, OR, AN, IS)
)

func NormalizeCategory(code string) Category {
	return Category(strings.ToUpper(strings.TrimSpace(code)))
}

// CategorySet is an immutable membership set of category codes.
type CategorySet map[Category]struct{}

func NewCategorySet(codes ...Category) CategorySet {
	set := make(CategorySet, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}

func (s CategorySet) Contains(c Category) bool {
	_, ok := s[c]
	return ok
}

// ContainsAny reports whether at least one code belongs to the set.
func (s CategorySet) ContainsAny(codes []Category) bool {
	for _, c := range codes {
		if s.Contains(c) {
			return true
		}
	}
	return false
}
