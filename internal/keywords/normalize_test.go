package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestNormalize_MergesSynonyms(t *testing.T) {
	dict := loadDict(t)

	set := types.NewKeywordSet()
	set.Add("js", types.CategoryTechnical, "JS")
	set.Add("javascript", types.CategoryTechnical, "JavaScript")

	normalized := Normalize(set, dict)

	assert.Equal(t, 1, normalized.Count(types.CategoryTechnical))
	kw := normalized[types.CategoryTechnical]["javascript"]
	require.NotNil(t, kw)
	assert.Equal(t, []string{"JS", "JavaScript"}, kw.SurfaceForms)
}

func TestNormalize_UnknownTermsPassThrough(t *testing.T) {
	dict := loadDict(t)

	set := types.NewKeywordSet()
	set.Add("blockchain", types.CategoryGeneral, "blockchain")

	normalized := Normalize(set, dict)
	assert.NotNil(t, normalized[types.CategoryGeneral]["blockchain"])
}

func TestNormalize_ReassignsDictionaryTerms(t *testing.T) {
	dict := loadDict(t)

	// A general keyword whose canonical form is a known technical term
	// moves to the technical category.
	set := types.NewKeywordSet()
	set.Add("golang", types.CategoryGeneral, "Golang")

	normalized := Normalize(set, dict)
	assert.Equal(t, 0, normalized.Count(types.CategoryGeneral))
	require.NotNil(t, normalized[types.CategoryTechnical]["go"])
}

func TestNormalize_Idempotent(t *testing.T) {
	dict := loadDict(t)

	set := types.NewKeywordSet()
	set.Add("js", types.CategoryTechnical, "JS")
	set.Add("leadership", types.CategorySoft, "Leadership")
	set.Add("pipeline", types.CategoryGeneral, "pipelines")

	once := Normalize(set, dict)
	twice := Normalize(once, dict)
	assert.Equal(t, once, twice)
}
