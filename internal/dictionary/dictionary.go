// Package dictionary provides the curated skill dictionary: technical terms,
// soft-skill phrases, the synonym map, and per-skill suggestion advice.
// The dictionary is loaded and schema-validated once at process start and is
// immutable afterwards, so a single instance is safe to share across
// concurrent analyses.
package dictionary

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-matcher/internal/types"
)

//go:embed data/skills.json
var skillsData []byte

//go:embed data/skills_schema.json
var skillsSchema []byte

// maxPhraseTokens caps multi-word dictionary phrases. Longer entries in the
// data file fail validation at load time.
const maxPhraseTokens = 3

// LoadError represents a failure to load or validate the embedded dictionary.
// It is fatal: the process must not serve requests without a dictionary.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dictionary load failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("dictionary load failed: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Dictionary is the read-only lookup state for keyword extraction,
// synonym normalization and suggestion templating.
type Dictionary struct {
	technical map[string]bool
	soft      map[string]bool
	synonyms  map[string]string
	advice    map[types.Category]map[string]string
	maxPhrase int
}

type dictionaryFile struct {
	Technical []string          `json:"technical"`
	Soft      []string          `json:"soft"`
	Synonyms  map[string]string `json:"synonyms"`
	Advice    struct {
		Technical map[string]string `json:"technical"`
		Soft      map[string]string `json:"soft"`
	} `json:"advice"`
}

// Load parses and validates the embedded dictionary data.
func Load() (*Dictionary, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(skillsSchema),
		gojsonschema.NewBytesLoader(skillsData),
	)
	if err != nil {
		return nil, &LoadError{Message: "schema validation could not run", Cause: err}
	}
	if !result.Valid() {
		descs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			descs = append(descs, desc.String())
		}
		return nil, &LoadError{Message: "dictionary data does not match schema: " + strings.Join(descs, "; ")}
	}

	var file dictionaryFile
	if err := json.Unmarshal(skillsData, &file); err != nil {
		return nil, &LoadError{Message: "failed to parse dictionary JSON", Cause: err}
	}

	d := &Dictionary{
		technical: make(map[string]bool, len(file.Technical)),
		soft:      make(map[string]bool, len(file.Soft)),
		synonyms:  make(map[string]string, len(file.Synonyms)),
		advice: map[types.Category]map[string]string{
			types.CategoryTechnical: file.Advice.Technical,
			types.CategorySoft:      file.Advice.Soft,
		},
		maxPhrase: 1,
	}

	for _, term := range file.Technical {
		if err := d.addTerm(d.technical, term); err != nil {
			return nil, err
		}
	}
	for _, term := range file.Soft {
		if err := d.addTerm(d.soft, term); err != nil {
			return nil, err
		}
	}
	for variant, canonical := range file.Synonyms {
		d.synonyms[normalizeTerm(variant)] = normalizeTerm(canonical)
	}

	return d, nil
}

func (d *Dictionary) addTerm(into map[string]bool, term string) error {
	normalized := normalizeTerm(term)
	if normalized == "" {
		return &LoadError{Message: fmt.Sprintf("empty dictionary term %q", term)}
	}
	n := len(strings.Fields(normalized))
	if n > maxPhraseTokens {
		return &LoadError{Message: fmt.Sprintf("dictionary phrase %q exceeds %d tokens", term, maxPhraseTokens)}
	}
	if n > d.maxPhrase {
		d.maxPhrase = n
	}
	into[normalized] = true
	return nil
}

// normalizeTerm lowercases and collapses internal whitespace.
func normalizeTerm(term string) string {
	return strings.Join(strings.Fields(strings.ToLower(term)), " ")
}

// MaxPhraseLen returns the longest phrase length, in tokens, across both
// term lists. Drives the sliding-window width during extraction.
func (d *Dictionary) MaxPhraseLen() int {
	return d.maxPhrase
}

// LookupTechnical reports whether term is a known technical term.
// Lookup is case-insensitive.
func (d *Dictionary) LookupTechnical(term string) bool {
	return d.technical[normalizeTerm(term)]
}

// LookupSoft reports whether term is a known soft-skill phrase.
// Lookup is case-insensitive.
func (d *Dictionary) LookupSoft(term string) bool {
	return d.soft[normalizeTerm(term)]
}

// Canonical maps a term through the synonym table, returning the canonical
// form. Unknown terms pass through normalized but otherwise unchanged.
func (d *Dictionary) Canonical(term string) string {
	normalized := normalizeTerm(term)
	if canonical, ok := d.synonyms[normalized]; ok {
		return canonical
	}
	return normalized
}

// Advice returns the curated suggestion text for a canonical skill in the
// given category, if any exists.
func (d *Dictionary) Advice(category types.Category, canonical string) (string, bool) {
	byCat, ok := d.advice[category]
	if !ok {
		return "", false
	}
	text, ok := byCat[canonical]
	return text, ok
}
