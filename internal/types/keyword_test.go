package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordSet_AddAndFind(t *testing.T) {
	set := NewKeywordSet()
	set.Add("python", CategoryTechnical, "Python")

	kw := set.Find("python")
	assert.NotNil(t, kw)
	assert.Equal(t, CategoryTechnical, kw.Category)
	assert.Equal(t, []string{"Python"}, kw.SurfaceForms)
}

func TestKeywordSet_AddMergesSurfaceForms(t *testing.T) {
	set := NewKeywordSet()
	set.Add("javascript", CategoryTechnical, "JS")
	set.Add("javascript", CategoryTechnical, "JavaScript")
	set.Add("javascript", CategoryTechnical, "JS")

	kw := set.Find("javascript")
	assert.Equal(t, []string{"JS", "JavaScript"}, kw.SurfaceForms)
	assert.Equal(t, 1, set.Count(CategoryTechnical))
}

func TestKeywordSet_CanonicalFormInOneCategoryOnly(t *testing.T) {
	set := NewKeywordSet()
	set.Add("leadership", CategorySoft, "Leadership")
	// A later add under a different category must not move the keyword.
	set.Add("leadership", CategoryGeneral, "leadership")

	assert.Equal(t, 1, set.Count(CategorySoft))
	assert.Equal(t, 0, set.Count(CategoryGeneral))
	assert.Equal(t, CategorySoft, set.Find("leadership").Category)
	assert.Equal(t, []string{"Leadership", "leadership"}, set.Find("leadership").SurfaceForms)
}

func TestKeywordSet_Total(t *testing.T) {
	set := NewKeywordSet()
	assert.Equal(t, 0, set.Total())

	set.Add("python", CategoryTechnical, "Python")
	set.Add("communication", CategorySoft, "communication")
	set.Add("pipeline", CategoryGeneral, "pipelines")
	assert.Equal(t, 3, set.Total())
}

func TestCategory_Valid(t *testing.T) {
	assert.True(t, CategoryTechnical.Valid())
	assert.True(t, CategorySoft.Valid())
	assert.True(t, CategoryGeneral.Valid())
	assert.False(t, Category("bogus").Valid())
}

func TestMatchResult_HasConceptualGap(t *testing.T) {
	result := &MatchResult{ConceptualGaps: []Category{CategorySoft}}
	assert.True(t, result.HasConceptualGap(CategorySoft))
	assert.False(t, result.HasConceptualGap(CategoryTechnical))
}

func TestMatchResult_MissingNilSafe(t *testing.T) {
	var result MatchResult
	assert.Nil(t, result.Missing(CategoryTechnical))
}
