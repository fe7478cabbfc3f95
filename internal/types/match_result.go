package types

// Suggestion kinds, mirrored in the suggestion templates.
const (
	SuggestionSuccess     = "success"
	SuggestionImprovement = "improvement"
	SuggestionFocus       = "focus"
	SuggestionTechnical   = "technical"
	SuggestionSoftSkill   = "soft_skill"
	SuggestionKeyword     = "keyword"
	SuggestionConceptual  = "conceptual"
	SuggestionStrategy    = "strategy"
)

// Suggestion is a single templated improvement hint.
type Suggestion struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// MatchResult is the complete outcome of one resume/job-description analysis.
// It is constructed once per analysis and never mutated after return.
type MatchResult struct {
	// OverallScore is the blended match percentage in [0,100], rounded to
	// the nearest integer: round(0.6*KeywordScore + 0.4*SemanticScore).
	OverallScore float64 `json:"overall_score"`
	// KeywordScore is the lexical overlap component in [0,100].
	KeywordScore float64 `json:"keyword_score"`
	// SemanticScore is the TF-IDF cosine component in [0,100].
	SemanticScore float64 `json:"semantic_score"`
	// CategoryScores holds the per-category keyword overlap scores.
	CategoryScores map[Category]float64 `json:"category_scores"`
	// MissingKeywords lists job-description keywords absent from the resume,
	// per category, ordered by job-description frequency descending, then
	// canonical form ascending.
	MissingKeywords map[Category][]Keyword `json:"missing_keywords"`
	// ConceptualGaps flags categories the resume does not represent at all
	// while the job description substantially requires them.
	ConceptualGaps []Category `json:"conceptual_gaps"`
	// Suggestions is the ordered list of templated improvement hints.
	Suggestions []Suggestion `json:"suggestions"`
}

// Missing returns the missing keywords for a category (nil-safe).
func (r *MatchResult) Missing(category Category) []Keyword {
	if r.MissingKeywords == nil {
		return nil
	}
	return r.MissingKeywords[category]
}

// HasConceptualGap reports whether the given category was flagged.
func (r *MatchResult) HasConceptualGap(category Category) bool {
	for _, c := range r.ConceptualGaps {
		if c == category {
			return true
		}
	}
	return false
}
