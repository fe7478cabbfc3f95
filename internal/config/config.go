// Package config provides configuration loading and validation for the CLI
// and server, including the scoring policy knobs.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// Default values for the scoring policy.
const (
	DefaultKeywordWeight          = 0.6
	DefaultSemanticWeight         = 0.4
	DefaultEmptyCategoryScore     = 100.0
	DefaultConceptualGapThreshold = 3
	DefaultPort                   = 8080
)

// Config holds the engine policy knobs and surface settings. All fields are
// optional in the JSON file; absent keys fall back to defaults while
// explicitly set values, including zeros, are kept.
type Config struct {
	// KeywordWeight is the blend weight for the keyword overlap score.
	KeywordWeight float64 `json:"keyword_weight,omitempty"`
	// SemanticWeight is the blend weight for the TF-IDF cosine score.
	// KeywordWeight and SemanticWeight must sum to 1.
	SemanticWeight float64 `json:"semantic_weight,omitempty"`
	// EmptyCategoryScore is the score assigned to a category the job
	// description has no keywords in ("nothing to match").
	EmptyCategoryScore float64 `json:"empty_category_score,omitempty"`
	// ConceptualGapThreshold is the minimum number of distinct job keywords
	// in a category before a keywordless resume triggers a conceptual gap.
	ConceptualGapThreshold int `json:"conceptual_gap_threshold,omitempty"`

	// Port is the HTTP server listen port.
	Port int `json:"port,omitempty"`
	// Verbose enables detailed CLI output.
	Verbose bool `json:"verbose,omitempty"`
}

// Default returns the configuration with all policy knobs at their defaults.
func Default() Config {
	return Config{
		KeywordWeight:          DefaultKeywordWeight,
		SemanticWeight:         DefaultSemanticWeight,
		EmptyCategoryScore:     DefaultEmptyCategoryScore,
		ConceptualGapThreshold: DefaultConceptualGapThreshold,
		Port:                   DefaultPort,
	}
}

// Load reads configuration from a JSON file, filling unset fields from
// defaults. Returns an error if the file cannot be read or parsed.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var file fileConfig
	if err := json.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return file.apply(Default()), nil
}

// fileConfig mirrors Config with pointer fields so an explicit zero in the
// file is distinguishable from an absent key.
type fileConfig struct {
	KeywordWeight          *float64 `json:"keyword_weight"`
	SemanticWeight         *float64 `json:"semantic_weight"`
	EmptyCategoryScore     *float64 `json:"empty_category_score"`
	ConceptualGapThreshold *int     `json:"conceptual_gap_threshold"`
	Port                   *int     `json:"port"`
	Verbose                *bool    `json:"verbose"`
}

// apply overlays the file's present keys on the defaults. The two blend
// weights are treated as a pair: a file setting only one of them leaves the
// other at zero for Validate to reject instead of silently rebalancing.
func (f fileConfig) apply(defaults Config) Config {
	result := defaults
	if f.KeywordWeight != nil || f.SemanticWeight != nil {
		result.KeywordWeight = 0
		result.SemanticWeight = 0
		if f.KeywordWeight != nil {
			result.KeywordWeight = *f.KeywordWeight
		}
		if f.SemanticWeight != nil {
			result.SemanticWeight = *f.SemanticWeight
		}
	}
	if f.EmptyCategoryScore != nil {
		result.EmptyCategoryScore = *f.EmptyCategoryScore
	}
	if f.ConceptualGapThreshold != nil {
		result.ConceptualGapThreshold = *f.ConceptualGapThreshold
	}
	if f.Port != nil {
		result.Port = *f.Port
	}
	if f.Verbose != nil {
		result.Verbose = *f.Verbose
	}
	return result
}

// Validate checks that the configuration has usable values.
func (c Config) Validate() error {
	if c.KeywordWeight < 0 || c.KeywordWeight > 1 {
		return fmt.Errorf("config error: 'keyword_weight' must be in [0,1], got %v", c.KeywordWeight)
	}
	if c.SemanticWeight < 0 || c.SemanticWeight > 1 {
		return fmt.Errorf("config error: 'semantic_weight' must be in [0,1], got %v", c.SemanticWeight)
	}
	if math.Abs(c.KeywordWeight+c.SemanticWeight-1) > 1e-9 {
		return fmt.Errorf("config error: blend weights must sum to 1, got %v", c.KeywordWeight+c.SemanticWeight)
	}
	if c.EmptyCategoryScore < 0 || c.EmptyCategoryScore > 100 {
		return fmt.Errorf("config error: 'empty_category_score' must be in [0,100], got %v", c.EmptyCategoryScore)
	}
	if c.ConceptualGapThreshold < 1 {
		return fmt.Errorf("config error: 'conceptual_gap_threshold' must be at least 1, got %d", c.ConceptualGapThreshold)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port, got %d", c.Port)
	}
	return nil
}
