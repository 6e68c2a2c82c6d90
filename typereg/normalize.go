package typereg

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseStrategy selects how NormalizeFieldName folds a field name's case,
// grounded on the teacher's builder.SchemaNamingStrategy family
// (builder/naming.go) — generalized from "Go type name to schema name" to
// "arbitrary field name to a canonical comparison key".
type CaseStrategy int

const (
	// CaseFold removes ASCII/Unicode case differences via cases.Fold, so
	// "HP" and "hp" normalize identically. It is also the fallback for any
	// unrecognized strategy value. NewTypeReference itself never
	// normalizes; only NewNormalizedTypeReference applies a strategy.
	CaseFold CaseStrategy = iota
	// CaseLower normalizes to lower case (cases.Lower).
	CaseLower
	// CaseUpper normalizes to upper case (cases.Upper).
	CaseUpper
	// CaseTitle normalizes to title case (cases.Title), mirroring the
	// teacher's "title" template func (builder/naming.go templateFuncs).
	CaseTitle
)

var normalizeLang = language.Und

// NormalizeFieldName applies strategy to s using golang.org/x/text/cases,
// Unicode-aware (not the byte-oriented strings.ToUpper/ToLower). Used by
// rules.RenameFieldFold to match the old field name case-insensitively,
// and by NewNormalizedTypeReference to build a canonical id before
// interning.
func NormalizeFieldName(s string, strategy CaseStrategy) string {
	switch strategy {
	case CaseLower:
		return cases.Lower(normalizeLang).String(s)
	case CaseUpper:
		return cases.Upper(normalizeLang).String(s)
	case CaseTitle:
		return cases.Title(normalizeLang).String(s)
	default:
		return cases.Fold().String(s)
	}
}

// NewNormalizedTypeReference interns NormalizeFieldName(id, strategy) rather
// than id verbatim, so "Entity.Player" and "entity.player" resolve to the
// same TypeReference under CaseFold.
func NewNormalizedTypeReference(id string, strategy CaseStrategy) TypeReference {
	return NewTypeReference(NormalizeFieldName(id, strategy))
}
