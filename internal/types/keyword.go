package types

import "sort"

// Keyword is a deduplicated skill term extracted from a document.
type Keyword struct {
	// CanonicalForm is the synonym-normalized lowercase lemma used for all
	// set comparisons.
	CanonicalForm string `json:"canonical_form"`
	// Category is the skill category the keyword was classified into.
	Category Category `json:"category"`
	// SurfaceForms records the original spellings seen in the source text,
	// kept sorted for deterministic output.
	SurfaceForms []string `json:"surface_forms"`
}

// AddSurfaceForm records an original spelling, keeping SurfaceForms sorted
// and free of duplicates.
func (k *Keyword) AddSurfaceForm(form string) {
	for _, existing := range k.SurfaceForms {
		if existing == form {
			return
		}
	}
	k.SurfaceForms = append(k.SurfaceForms, form)
	sort.Strings(k.SurfaceForms)
}

// KeywordSet groups a document's keywords by category, indexed by canonical
// form. Invariant: a canonical form appears in at most one category.
type KeywordSet map[Category]map[string]*Keyword

// NewKeywordSet returns an empty set with all category buckets allocated.
func NewKeywordSet() KeywordSet {
	set := make(KeywordSet, len(Categories()))
	for _, cat := range Categories() {
		set[cat] = make(map[string]*Keyword)
	}
	return set
}

// Add inserts a keyword, merging surface forms when the canonical form is
// already present in any category. The first classification wins: a term
// already held by another category is not moved.
func (s KeywordSet) Add(canonical string, category Category, surface string) {
	if existing := s.Find(canonical); existing != nil {
		existing.AddSurfaceForm(surface)
		return
	}
	kw := &Keyword{CanonicalForm: canonical, Category: category}
	kw.AddSurfaceForm(surface)
	s[category][canonical] = kw
}

// Find returns the keyword for a canonical form regardless of category,
// or nil if absent. Lookup follows the deterministic category order.
func (s KeywordSet) Find(canonical string) *Keyword {
	for _, cat := range Categories() {
		if kw, ok := s[cat][canonical]; ok {
			return kw
		}
	}
	return nil
}

// Count returns the number of keywords in a category.
func (s KeywordSet) Count(category Category) int {
	return len(s[category])
}

// Total returns the number of keywords across all categories.
func (s KeywordSet) Total() int {
	total := 0
	for _, cat := range Categories() {
		total += len(s[cat])
	}
	return total
}
