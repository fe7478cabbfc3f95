// Package textproc wraps the linguistic pipeline: tokenization,
// part-of-speech tagging, lemmatization and stopword flags over raw text.
// The Annotator is built once at process start and is immutable afterwards,
// so a single instance is safe to share across concurrent analyses.
package textproc

import (
	"regexp"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	prose "github.com/jdkato/prose/v2"
)

// Token is one annotated unit of input text.
type Token struct {
	// Text is the surface form as it appeared after cleaning.
	Text string
	// Lemma is the lowercase lemmatized form used for dictionary lookups.
	Lemma string
	// Tag is the Penn Treebank part-of-speech tag (for example NN, NNP, VBD).
	Tag string
	// Stop marks common English words excluded from keyword extraction.
	Stop bool
}

// IsNoun reports whether the token is a noun or proper noun.
func (t Token) IsNoun() bool {
	switch t.Tag {
	case "NN", "NNS", "NNP", "NNPS":
		return true
	}
	return false
}

// specialChars matches everything except word characters, whitespace and the
// punctuation that is meaningful inside skill names ("node.js", "c++", "c#",
// "ci/cd", "scikit-learn").
var specialChars = regexp.MustCompile(`[^\w\s.+#/-]`)

// trailingDots strips sentence punctuation left attached to a token after
// cleaning ("Python." at end of sentence).
var trailingDots = regexp.MustCompile(`^\.+|\.+$`)

// Annotator runs the linguistic pipeline over raw text.
type Annotator struct {
	lemmatizer *golem.Lemmatizer
}

// NewAnnotator builds the pipeline. Failure to load the lemmatizer dictionary
// is an InitializationError; the caller should treat it as fatal.
func NewAnnotator() (*Annotator, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, &InitializationError{Component: "english lemmatizer", Cause: err}
	}
	return &Annotator{lemmatizer: lemmatizer}, nil
}

// Annotate produces the ordered token sequence for text. Empty or
// whitespace-only input yields a nil slice, not an error. The result is
// deterministic for identical input.
func (a *Annotator) Annotate(text string) ([]Token, error) {
	cleaned := CleanText(text)
	if cleaned == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(cleaned,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, &ProcessingError{Message: "tokenization failed", Cause: err}
	}

	proseTokens := doc.Tokens()
	tokens := make([]Token, 0, len(proseTokens))
	for _, pt := range proseTokens {
		surface := trailingDots.ReplaceAllString(pt.Text, "")
		if surface == "" {
			continue
		}
		lower := strings.ToLower(surface)
		tokens = append(tokens, Token{
			Text:  surface,
			Lemma: a.lemma(lower),
			Tag:   pt.Tag,
			Stop:  IsStopword(lower),
		})
	}
	return tokens, nil
}

// lemma returns the lowercase lemma, falling back to the word itself for
// terms outside the lemmatizer dictionary (most tool and framework names).
func (a *Annotator) lemma(lower string) string {
	if a.lemmatizer.InDict(lower) {
		return strings.ToLower(a.lemmatizer.Lemma(lower))
	}
	return lower
}

// CleanText collapses whitespace and strips special characters while keeping
// the punctuation that appears inside technical skill names.
func CleanText(text string) string {
	text = specialChars.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}
