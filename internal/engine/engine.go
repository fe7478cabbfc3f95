// Package engine orchestrates a full resume/job-description analysis:
// annotation, keyword extraction, synonym normalization, semantic
// similarity, score blending and gap/suggestion derivation.
package engine

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/dictionary"
	"github.com/jonathan/resume-matcher/internal/keywords"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/semantic"
	"github.com/jonathan/resume-matcher/internal/suggest"
	"github.com/jonathan/resume-matcher/internal/textproc"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Engine runs analyses against a fixed annotator, dictionary and policy
// configuration. All state is read-only after construction, so one Engine is
// safe for concurrent use; every call operates on independently owned
// documents and results.
type Engine struct {
	annotator *textproc.Annotator
	dict      *dictionary.Dictionary
	cfg       config.Config
}

// New builds an engine from already-initialized collaborators. The annotator
// and dictionary are injected rather than loaded here so tests can share a
// single load and callers control startup failure handling.
func New(annotator *textproc.Annotator, dict *dictionary.Dictionary, cfg config.Config) (*Engine, error) {
	if annotator == nil {
		return nil, fmt.Errorf("engine: annotator is required")
	}
	if dict == nil {
		return nil, fmt.Errorf("engine: dictionary is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	return &Engine{annotator: annotator, dict: dict, cfg: cfg}, nil
}

// Analyze compares a resume document against a job-description document and
// returns the complete match result. Both inputs carry plain extracted text;
// empty text is valid degenerate input yielding minimal scores, never an
// error. The result is either complete or nil with an error, never partial,
// and the same inputs always produce an identical result.
func (e *Engine) Analyze(resume, job types.Document) (*types.MatchResult, error) {
	resumeTokens, err := e.annotator.Annotate(resume.RawText)
	if err != nil {
		return nil, fmt.Errorf("annotating resume: %w", err)
	}
	jobTokens, err := e.annotator.Annotate(job.RawText)
	if err != nil {
		return nil, fmt.Errorf("annotating job description: %w", err)
	}

	resumeSet := keywords.Normalize(keywords.Extract(resumeTokens, e.dict), e.dict)
	jobSet := keywords.Normalize(keywords.Extract(jobTokens, e.dict), e.dict)
	jobFreq := keywords.Frequencies(jobTokens, e.dict)

	semanticScore := semantic.Similarity(resume.RawText, job.RawText)
	scores := scoring.Compute(resumeSet, jobSet, semanticScore, e.cfg)

	missing := suggest.MissingKeywords(resumeSet, jobSet, jobFreq)
	gaps := suggest.ConceptualGaps(resumeSet, jobSet, e.cfg.ConceptualGapThreshold)
	suggestions := suggest.Build(resumeSet, jobSet, missing, gaps, scores, e.dict)

	return &types.MatchResult{
		OverallScore:    scores.Overall,
		KeywordScore:    scores.Keyword,
		SemanticScore:   scores.Semantic,
		CategoryScores:  scores.Categories,
		MissingKeywords: missing,
		ConceptualGaps:  gaps,
		Suggestions:     suggestions,
	}, nil
}

// Config returns the engine's policy configuration.
func (e *Engine) Config() config.Config {
	return e.cfg
}
