package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity_IdenticalTexts(t *testing.T) {
	text := "Senior Python developer with five years of Django and PostgreSQL experience."
	assert.InDelta(t, 100.0, Similarity(text, text), 1e-6)
}

func TestSimilarity_EmptyInputs(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("", "Python developer needed"))
	assert.Equal(t, 0.0, Similarity("Python developer", ""))
	assert.Equal(t, 0.0, Similarity("", ""))
	assert.Equal(t, 0.0, Similarity("   \n\t ", "Python developer"))
}

func TestSimilarity_NoExtractableVocabulary(t *testing.T) {
	// Stopwords and single characters only.
	assert.Equal(t, 0.0, Similarity("the and a of", "Python developer"))
}

func TestSimilarity_DisjointTexts(t *testing.T) {
	score := Similarity(
		"marine biology coral reefs oceanography",
		"python django postgresql backend",
	)
	assert.Equal(t, 0.0, score)
}

func TestSimilarity_PartialOverlap(t *testing.T) {
	score := Similarity(
		"python developer building django services",
		"python engineer maintaining flask services",
	)
	assert.Greater(t, score, 0.0)
	assert.Less(t, score, 100.0)
}

func TestSimilarity_Deterministic(t *testing.T) {
	resume := "Go engineer with Kubernetes, Docker and Terraform experience on AWS."
	job := "Looking for a Go developer familiar with Kubernetes and cloud infrastructure."

	first := Similarity(resume, job)
	second := Similarity(resume, job)
	assert.Equal(t, first, second)
}

func TestSimilarity_InRange(t *testing.T) {
	cases := [][2]string{
		{"a b c", "a b c"},
		{"python", "python python python"},
		{"frontend react typescript", "backend go postgresql"},
		{"one shared term here", "shared elsewhere entirely"},
	}
	for _, pair := range cases {
		score := Similarity(pair[0], pair[1])
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestTokenize_DropsStopwordsAndShortTokens(t *testing.T) {
	tokens := tokenize("the Python and Go of a C")
	assert.Contains(t, tokens, "python")
	assert.Contains(t, tokens, "go")
	assert.NotContains(t, tokens, "the")
	assert.NotContains(t, tokens, "c")
}
