// Package scoring blends keyword overlap and semantic similarity into the
// final match scores.
package scoring

import (
	"math"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Scores holds the blended scoring output for one analysis.
type Scores struct {
	// Keyword is the overall keyword overlap score in [0,100].
	Keyword float64
	// Semantic is the TF-IDF cosine score in [0,100].
	Semantic float64
	// Overall is round(KeywordWeight*Keyword + SemanticWeight*Semantic),
	// clamped to [0,100].
	Overall float64
	// Categories holds the per-category overlap scores.
	Categories map[types.Category]float64
}

// Compute derives all scores from the two normalized keyword sets and the
// semantic score. Job description keywords are the denominator: only terms
// the job demands count toward possible credit. A category the job has no
// keywords in scores EmptyCategoryScore ("nothing to match") and is excluded
// from the keyword-score average rather than zero-weighted, so absence of a
// requirement is never penalized.
func Compute(resume, job types.KeywordSet, semanticScore float64, cfg config.Config) Scores {
	categories := make(map[types.Category]float64, len(types.Categories()))

	var sum float64
	var counted int
	for _, category := range types.Categories() {
		jobKeywords := job[category]
		if len(jobKeywords) == 0 {
			categories[category] = cfg.EmptyCategoryScore
			continue
		}

		matched := 0
		for canonical := range jobKeywords {
			if _, ok := resume[category][canonical]; ok {
				matched++
			}
		}
		score := roundTo1(100 * float64(matched) / float64(max(1, len(jobKeywords))))
		categories[category] = score
		sum += score
		counted++
	}

	keywordScore := 0.0
	if counted > 0 {
		keywordScore = roundTo1(sum / float64(counted))
	}

	// The blend uses the rounded component values so the reported fields
	// satisfy Overall = round(w_k*Keyword + w_s*Semantic) exactly.
	semantic := roundTo1(semanticScore)
	overall := math.Round(cfg.KeywordWeight*keywordScore + cfg.SemanticWeight*semantic)
	overall = clamp(overall, 0, 100)

	return Scores{
		Keyword:    keywordScore,
		Semantic:   semantic,
		Overall:    overall,
		Categories: categories,
	}
}

// roundTo1 rounds to one decimal place, the precision the per-component
// scores are reported at.
func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
