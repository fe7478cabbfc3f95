// Package suggest derives keyword gaps, conceptual gaps and templated
// improvement suggestions from an analysis.
package suggest

import (
	"sort"

	"github.com/jonathan/resume-matcher/internal/types"
)

// MissingKeywords diffs the categorized keyword sets (job minus resume, on
// canonical forms, post synonym normalization) and orders each category's
// gaps by descending frequency in the job description, ties broken
// alphabetically by canonical form.
func MissingKeywords(resume, job types.KeywordSet, jobFreq map[string]int) map[types.Category][]types.Keyword {
	missing := make(map[types.Category][]types.Keyword, len(types.Categories()))
	for _, category := range types.Categories() {
		// Non-nil even when empty so the category encodes as a JSON array.
		gaps := []types.Keyword{}
		for canonical, kw := range job[category] {
			if _, ok := resume[category][canonical]; ok {
				continue
			}
			gaps = append(gaps, *kw)
		}
		sort.Slice(gaps, func(i, j int) bool {
			fi, fj := jobFreq[gaps[i].CanonicalForm], jobFreq[gaps[j].CanonicalForm]
			if fi != fj {
				return fi > fj
			}
			return gaps[i].CanonicalForm < gaps[j].CanonicalForm
		})
		missing[category] = gaps
	}
	return missing
}

// ConceptualGaps flags categories the resume has no representation of while
// the job description holds at least threshold distinct keywords there. The
// keyword diff alone would list the terms but miss that the entire skill
// area is absent.
func ConceptualGaps(resume, job types.KeywordSet, threshold int) []types.Category {
	var gaps []types.Category
	for _, category := range types.Categories() {
		if resume.Count(category) == 0 && job.Count(category) >= threshold {
			gaps = append(gaps, category)
		}
	}
	return gaps
}

// matchCount returns the number of job keywords present in the resume,
// across all categories.
func matchCount(resume, job types.KeywordSet) int {
	matches := 0
	for _, category := range types.Categories() {
		for canonical := range job[category] {
			if _, ok := resume[category][canonical]; ok {
				matches++
			}
		}
	}
	return matches
}
