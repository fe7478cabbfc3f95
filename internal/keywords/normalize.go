package keywords

import (
	"sort"

	"github.com/jonathan/resume-matcher/internal/dictionary"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Normalize maps every keyword's canonical form through the synonym table,
// merging entries that collapse to the same canonical form and unioning
// their surface forms. Keywords whose canonical form turns out to be a known
// dictionary term are reassigned to that term's category. Must run before
// any set comparison so surface variation never produces false negatives.
func Normalize(set types.KeywordSet, dict *dictionary.Dictionary) types.KeywordSet {
	out := types.NewKeywordSet()
	for _, category := range types.Categories() {
		for _, canonical := range sortedForms(set[category]) {
			kw := set[category][canonical]
			normalized := dict.Canonical(canonical)
			target := classify(normalized, category, dict)
			for _, surface := range kw.SurfaceForms {
				out.Add(normalized, target, surface)
			}
		}
	}
	return out
}

// classify resolves the category for a normalized canonical form: dictionary
// membership wins, then the extraction-time category is kept.
func classify(canonical string, fallback types.Category, dict *dictionary.Dictionary) types.Category {
	switch {
	case dict.LookupTechnical(canonical):
		return types.CategoryTechnical
	case dict.LookupSoft(canonical):
		return types.CategorySoft
	}
	return fallback
}

// sortedForms returns the canonical forms of a category bucket in sorted
// order for deterministic iteration.
func sortedForms(bucket map[string]*types.Keyword) []string {
	forms := make([]string, 0, len(bucket))
	for form := range bucket {
		forms = append(forms, form)
	}
	sort.Strings(forms)
	return forms
}
