// Package semantic computes vector-space similarity between a resume and a
// job description using a TF-IDF model fit jointly over the two documents.
//
// The corpus size is always 2, so IDF only distinguishes terms present in
// one document from terms present in both. That is a documented limitation
// of the design, not a bug: with smoothing the shared terms still carry most
// of the cosine weight.
package semantic

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/textproc"
)

// tokenPattern is compiled once at package initialization. It keeps the
// punctuation used inside skill names, matching the annotator's cleaning.
var tokenPattern = regexp.MustCompile(`[^a-z0-9.+#/_-]+`)

// vector is a sparse term-weight vector.
type vector map[string]float64

// tokenize lowercases and splits text for vectorization, dropping stopwords
// and single characters.
func tokenize(text string) []string {
	cleaned := strings.ToLower(textproc.CleanText(text))
	parts := tokenPattern.Split(cleaned, -1)
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if len(part) < 2 || textproc.IsStopword(part) {
			continue
		}
		tokens = append(tokens, part)
	}
	return tokens
}

// termFrequency computes normalized term frequencies for one document.
func termFrequency(tokens []string) vector {
	tf := make(vector, len(tokens))
	for _, token := range tokens {
		tf[token]++
	}
	total := float64(len(tokens))
	for term := range tf {
		tf[term] /= total
	}
	return tf
}

// fit builds smoothed-IDF weighted vectors for the two documents:
// idf = log((1+N)/(1+df)) + 1 with N fixed at 2.
func fit(resumeTokens, jobTokens []string) (vector, vector) {
	resumeTF := termFrequency(resumeTokens)
	jobTF := termFrequency(jobTokens)

	df := make(map[string]int, len(resumeTF)+len(jobTF))
	for term := range resumeTF {
		df[term]++
	}
	for term := range jobTF {
		df[term]++
	}

	const docs = 2.0
	resumeVec := make(vector, len(resumeTF))
	jobVec := make(vector, len(jobTF))
	for term, count := range df {
		idf := math.Log((1+docs)/(1+float64(count))) + 1
		if tf, ok := resumeTF[term]; ok {
			resumeVec[term] = tf * idf
		}
		if tf, ok := jobTF[term]; ok {
			jobVec[term] = tf * idf
		}
	}
	return resumeVec, jobVec
}

// cosine computes cosine similarity between two sparse vectors. Terms are
// accumulated in sorted order so repeated calls produce bit-identical
// results despite floating point addition being order sensitive.
func cosine(a, b vector) float64 {
	var dot, normA, normB float64
	for _, term := range sortedTerms(a) {
		weight := a[term]
		normA += weight * weight
		if other, ok := b[term]; ok {
			dot += weight * other
		}
	}
	for _, term := range sortedTerms(b) {
		weight := b[term]
		normB += weight * weight
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func sortedTerms(v vector) []string {
	terms := make([]string, 0, len(v))
	for term := range v {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// Similarity returns the semantic score in [0,100] for the document pair.
// Either text empty or without extractable vocabulary yields 0, never an
// error. Identical non-empty texts yield 100.
func Similarity(resumeText, jobText string) float64 {
	resumeTokens := tokenize(resumeText)
	jobTokens := tokenize(jobText)
	if len(resumeTokens) == 0 || len(jobTokens) == 0 {
		return 0
	}

	resumeVec, jobVec := fit(resumeTokens, jobTokens)
	similarity := cosine(resumeVec, jobVec)

	// Guard against floating point drift past the valid range.
	if similarity > 1 {
		similarity = 1
	}
	if similarity < 0 {
		similarity = 0
	}
	return similarity * 100
}
