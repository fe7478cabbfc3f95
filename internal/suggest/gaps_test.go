package suggest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func set(byCategory map[types.Category][]string) types.KeywordSet {
	out := types.NewKeywordSet()
	for category, terms := range byCategory {
		for _, term := range terms {
			out.Add(term, category, term)
		}
	}
	return out
}

func TestMissingKeywords_JobMinusResume(t *testing.T) {
	resume := set(map[types.Category][]string{
		types.CategoryTechnical: {"python"},
	})
	job := set(map[types.Category][]string{
		types.CategoryTechnical: {"python", "docker", "kubernetes"},
	})

	missing := MissingKeywords(resume, job, nil)

	var canonicals []string
	for _, kw := range missing[types.CategoryTechnical] {
		canonicals = append(canonicals, kw.CanonicalForm)
	}
	assert.ElementsMatch(t, []string{"docker", "kubernetes"}, canonicals)
	assert.Empty(t, missing[types.CategorySoft])
	assert.Empty(t, missing[types.CategoryGeneral])
}

func TestMissingKeywords_OrderedByFrequencyThenName(t *testing.T) {
	resume := types.NewKeywordSet()
	job := set(map[types.Category][]string{
		types.CategoryTechnical: {"java", "python", "docker", "ansible"},
	})
	jobFreq := map[string]int{"python": 3, "java": 1, "docker": 1}

	missing := MissingKeywords(resume, job, jobFreq)

	got := make([]string, 0, 4)
	for _, kw := range missing[types.CategoryTechnical] {
		got = append(got, kw.CanonicalForm)
	}
	// python leads on frequency; the rest tie and fall back to name order.
	assert.Equal(t, []string{"python", "ansible", "docker", "java"}, got)
}

func TestMissingKeywords_EmptyCategoriesEncodeAsArrays(t *testing.T) {
	resume := set(map[types.Category][]string{
		types.CategoryTechnical: {"python"},
	})
	job := set(map[types.Category][]string{
		types.CategoryTechnical: {"python"},
	})

	missing := MissingKeywords(resume, job, nil)
	for _, category := range types.Categories() {
		assert.NotNil(t, missing[category])
	}

	encoded, err := json.Marshal(missing)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "null")
	assert.Contains(t, string(encoded), `"technical":[]`)
}

func TestMissingKeywords_NothingMissing(t *testing.T) {
	resume := set(map[types.Category][]string{
		types.CategoryTechnical: {"python"},
	})
	job := set(map[types.Category][]string{
		types.CategoryTechnical: {"python"},
	})

	missing := MissingKeywords(resume, job, nil)
	for _, category := range types.Categories() {
		assert.Empty(t, missing[category])
	}
}

func TestConceptualGaps_FlagsAbsentCategory(t *testing.T) {
	resume := set(map[types.Category][]string{
		types.CategoryTechnical: {"python"},
	})
	job := set(map[types.Category][]string{
		types.CategoryTechnical: {"python"},
		types.CategorySoft:      {"communication", "leadership", "teamwork"},
	})

	gaps := ConceptualGaps(resume, job, 3)
	assert.Equal(t, []types.Category{types.CategorySoft}, gaps)
}

func TestConceptualGaps_BelowThresholdNotFlagged(t *testing.T) {
	resume := types.NewKeywordSet()
	job := set(map[types.Category][]string{
		types.CategorySoft: {"communication", "leadership"},
	})

	gaps := ConceptualGaps(resume, job, 3)
	assert.Empty(t, gaps)
}

func TestConceptualGaps_PartialCoverageNotFlagged(t *testing.T) {
	// One matching keyword in the category is enough to clear the flag,
	// even when most of the job's demands there are still missing.
	resume := set(map[types.Category][]string{
		types.CategorySoft: {"communication"},
	})
	job := set(map[types.Category][]string{
		types.CategorySoft: {"communication", "leadership", "teamwork", "mentoring"},
	})

	gaps := ConceptualGaps(resume, job, 3)
	assert.Empty(t, gaps)
}

func TestMatchCount_AcrossCategories(t *testing.T) {
	resume := set(map[types.Category][]string{
		types.CategoryTechnical: {"python", "docker"},
		types.CategorySoft:      {"communication"},
	})
	job := set(map[types.Category][]string{
		types.CategoryTechnical: {"python", "docker", "kubernetes"},
		types.CategorySoft:      {"communication"},
		types.CategoryGeneral:   {"fintech"},
	})

	assert.Equal(t, 3, matchCount(resume, job))
}
