package suggest

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/dictionary"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Suggestion assembly limits, matching the report layout downstream.
const (
	maxSuggestions      = 8
	maxTechnicalAdvice  = 3
	maxSoftAdvice       = 2
	maxGeneralAdvice    = 2
	adviceScoreCutoff   = 80.0
	generalGapCutoff    = 5
	lowMatchCutoff      = 5
	strategyScoreCutoff = 50.0
	bracketSuccessScore = 70.0
	bracketImproveScore = 40.0
)

// Overall-score bracket texts.
const (
	textSuccess = "Excellent work! Your resume shows strong alignment with the job requirements. You're well-positioned for this role."
	textImprove = "Your resume shows good potential for this role. With some targeted improvements, you can significantly boost your match score."
	textFocus   = "This is a great opportunity to tailor your resume more closely to the job requirements. Small changes can make a big difference."

	textLowMatchStrategy = "Consider reviewing the job description carefully and incorporating more specific terminology throughout your resume sections."
	textLowScoreStrategy = "Focus on three key areas: 1) Skills section - add relevant technical skills, 2) Experience section - use job-specific language, 3) Summary - highlight matching qualifications."
)

// conceptualGapTexts describes each skill category for the category-level
// suggestion emitted on a conceptual gap.
var conceptualGapTexts = map[types.Category]string{
	types.CategoryTechnical: "technical skills and tooling experience",
	types.CategorySoft:      "interpersonal and leadership skills",
	types.CategoryGeneral:   "domain knowledge the role calls for",
}

// Build assembles the ordered suggestion list from fixed templates keyed on
// the overall-score bracket, per-category gap presence and conceptual-gap
// flags. Output is deterministic text; no free-form generation.
func Build(
	resume, job types.KeywordSet,
	missing map[types.Category][]types.Keyword,
	gaps []types.Category,
	scores scoring.Scores,
	dict *dictionary.Dictionary,
) []types.Suggestion {
	suggestions := make([]types.Suggestion, 0, maxSuggestions)

	switch {
	case scores.Overall >= bracketSuccessScore:
		suggestions = append(suggestions, types.Suggestion{Kind: types.SuggestionSuccess, Text: textSuccess})
	case scores.Overall >= bracketImproveScore:
		suggestions = append(suggestions, types.Suggestion{Kind: types.SuggestionImprovement, Text: textImprove})
	default:
		suggestions = append(suggestions, types.Suggestion{Kind: types.SuggestionFocus, Text: textFocus})
	}

	if len(missing[types.CategoryTechnical]) > 0 && scores.Categories[types.CategoryTechnical] < adviceScoreCutoff {
		suggestions = append(suggestions, skillAdvice(
			missing[types.CategoryTechnical], types.CategoryTechnical,
			types.SuggestionTechnical, maxTechnicalAdvice, dict)...)
	}
	if len(missing[types.CategorySoft]) > 0 && scores.Categories[types.CategorySoft] < adviceScoreCutoff {
		suggestions = append(suggestions, skillAdvice(
			missing[types.CategorySoft], types.CategorySoft,
			types.SuggestionSoftSkill, maxSoftAdvice, dict)...)
	}
	if len(missing[types.CategoryGeneral]) > generalGapCutoff {
		suggestions = append(suggestions, generalAdvice(missing[types.CategoryGeneral], maxGeneralAdvice)...)
	}

	for _, gap := range gaps {
		suggestions = append(suggestions, types.Suggestion{
			Kind: types.SuggestionConceptual,
			Text: fmt.Sprintf("Conceptual gap: the job description emphasizes %s, but your resume shows none. Add a section or examples covering this area.", conceptualGapTexts[gap]),
		})
	}

	if matchCount(resume, job) < lowMatchCutoff {
		suggestions = append(suggestions, types.Suggestion{Kind: types.SuggestionStrategy, Text: textLowMatchStrategy})
	}
	if scores.Overall < strategyScoreCutoff {
		suggestions = append(suggestions, types.Suggestion{Kind: types.SuggestionStrategy, Text: textLowScoreStrategy})
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// skillAdvice emits per-skill suggestions for the top missing keywords in a
// category, using curated advice when the dictionary carries it.
func skillAdvice(missing []types.Keyword, category types.Category, kind string, limit int, dict *dictionary.Dictionary) []types.Suggestion {
	if len(missing) > limit {
		missing = missing[:limit]
	}
	out := make([]types.Suggestion, 0, len(missing))
	for _, kw := range missing {
		text, ok := dict.Advice(category, kw.CanonicalForm)
		if !ok {
			text = "Consider adding this skill to your Skills section or describing related experience in your work history"
		}
		out = append(out, types.Suggestion{
			Kind: kind,
			Text: fmt.Sprintf("%s: %s", titleCase(kw.CanonicalForm), text),
		})
	}
	return out
}

// generalAdvice emits generic incorporate-this-term suggestions for general
// keyword gaps.
func generalAdvice(missing []types.Keyword, limit int) []types.Suggestion {
	if len(missing) > limit {
		missing = missing[:limit]
	}
	out := make([]types.Suggestion, 0, len(missing))
	for _, kw := range missing {
		out = append(out, types.Suggestion{
			Kind: types.SuggestionKeyword,
			Text: fmt.Sprintf("%s: Look for opportunities to naturally incorporate this term in your Experience or Skills sections", titleCase(kw.CanonicalForm)),
		})
	}
	return out
}

// titleCase uppercases the first letter of each word for display.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
