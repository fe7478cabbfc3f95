// Package keywords extracts categorized skill keywords from annotated token
// streams and normalizes them through the synonym dictionary.
package keywords

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/dictionary"
	"github.com/jonathan/resume-matcher/internal/textproc"
	"github.com/jonathan/resume-matcher/internal/types"
)

// minKeywordLen filters out tokens too short to be meaningful keywords.
const minKeywordLen = 3

// occurrence is one keyword hit at a position in the token stream.
type occurrence struct {
	canonical string
	category  types.Category
	surface   string
}

// scan walks the token stream once, matching dictionary phrases with a
// sliding window (widest first) and classifying leftover nouns as general
// keywords. Matched windows are consumed, so overlapping phrases are never
// double-counted. The walk is deterministic for identical input.
func scan(tokens []textproc.Token, dict *dictionary.Dictionary) []occurrence {
	var hits []occurrence
	n := len(tokens)
	consumed := make([]bool, n)
	maxWindow := dict.MaxPhraseLen()

	for i := 0; i < n; i++ {
		if consumed[i] {
			continue
		}

		matched := false
		for width := maxWindow; width >= 1 && !matched; width-- {
			if i+width > n {
				continue
			}
			if anyConsumed(consumed, i, i+width) {
				continue
			}

			lemmas := make([]string, 0, width)
			surfaces := make([]string, 0, width)
			for j := i; j < i+width; j++ {
				lemmas = append(lemmas, tokens[j].Lemma)
				surfaces = append(surfaces, tokens[j].Text)
			}

			// Try the surface phrase first, then the lemma phrase:
			// dictionary entries are surface terms ("machine learning")
			// that lemmatization can distort ("machine learn"). Both are
			// canonicalized before lookup so synonym variants ("js",
			// "amazon web services") hit their dictionary entries.
			canonical, category := lookup(dict,
				dict.Canonical(strings.Join(surfaces, " ")),
				dict.Canonical(strings.Join(lemmas, " ")),
			)
			if canonical == "" {
				continue
			}

			hits = append(hits, occurrence{
				canonical: canonical,
				category:  category,
				surface:   strings.Join(surfaces, " "),
			})
			for j := i; j < i+width; j++ {
				consumed[j] = true
			}
			matched = true
		}
		if matched {
			continue
		}

		// Fallback: unmatched nouns become general keywords, everything
		// else is discarded.
		tok := tokens[i]
		if tok.IsNoun() && !tok.Stop && len(tok.Lemma) >= minKeywordLen {
			hits = append(hits, occurrence{
				canonical: dict.Canonical(tok.Lemma),
				category:  types.CategoryGeneral,
				surface:   tok.Text,
			})
			consumed[i] = true
		}
	}

	return hits
}

// lookup classifies the first candidate form found in the term dictionaries.
// Returns empty strings when no candidate is a known term.
func lookup(dict *dictionary.Dictionary, candidates ...string) (string, types.Category) {
	for _, candidate := range candidates {
		switch {
		case dict.LookupTechnical(candidate):
			return candidate, types.CategoryTechnical
		case dict.LookupSoft(candidate):
			return candidate, types.CategorySoft
		}
	}
	return "", ""
}

func anyConsumed(consumed []bool, from, to int) bool {
	for j := from; j < to; j++ {
		if consumed[j] {
			return true
		}
	}
	return false
}

// Extract produces the deduplicated, categorized keyword set for a token
// stream. Extraction is idempotent: identical input yields an identical set.
func Extract(tokens []textproc.Token, dict *dictionary.Dictionary) types.KeywordSet {
	set := types.NewKeywordSet()
	for _, hit := range scan(tokens, dict) {
		set.Add(hit.canonical, hit.category, hit.surface)
	}
	return set
}

// Frequencies counts how often each canonical keyword occurs in the token
// stream. Used to order missing keywords by job-description relevance.
func Frequencies(tokens []textproc.Token, dict *dictionary.Dictionary) map[string]int {
	freq := make(map[string]int)
	for _, hit := range scan(tokens, dict) {
		freq[hit.canonical]++
	}
	return freq
}
