package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	analyzeResume     string
	analyzeJob        string
	analyzeJobURL     string
	analyzeConfig     string
	analyzeJSON       bool
	analyzeVerbose    bool
	analyzeUseBrowser bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze how well a resume matches a job description",
	Long:  `Extract text from the resume and job description, run the matching engine, and print the match score, keyword gaps and improvement suggestions.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResume, "resume", "", "Path to resume file (.txt, .pdf or .docx)")
	analyzeCmd.Flags().StringVar(&analyzeJob, "job", "", "Path to job description file (.txt, .pdf or .docx)")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL of job posting to fetch")
	analyzeCmd.Flags().StringVar(&analyzeConfig, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full result as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print detailed output")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Render script-heavy job pages in a headless browser")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if analyzeResume == "" {
		return fmt.Errorf("--resume is required")
	}
	if (analyzeJob == "") == (analyzeJobURL == "") {
		return fmt.Errorf("exactly one of --job or --job-url is required")
	}

	cfg := config.Default()
	if analyzeConfig != "" {
		loaded, err := config.Load(analyzeConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if analyzeVerbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	// The two documents are independent; extract them concurrently.
	var resumeText, jobText string
	group, ctx := errgroup.WithContext(cmd.Context())
	group.Go(func() error {
		var err error
		resumeText, err = extract.FromFile(analyzeResume)
		return err
	})
	group.Go(func() error {
		var err error
		jobText, err = loadJobText(ctx)
		return err
	})
	if err := group.Wait(); err != nil {
		return err
	}

	result, err := eng.Analyze(
		types.Document{RawText: resumeText, SourceKind: types.SourceResume},
		types.Document{RawText: jobText, SourceKind: types.SourceJobDescription},
	)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScores(result)
	if cfg.Verbose {
		printer.PrintMissingKeywords(result)
	}
	printer.PrintSuggestions(result)
	return nil
}

// loadJobText reads the job description from a file or fetches it from a URL.
func loadJobText(ctx context.Context) (string, error) {
	if analyzeJob != "" {
		return extract.FromFile(analyzeJob)
	}
	opts := fetch.DefaultOptions()
	opts.UseBrowser = analyzeUseBrowser
	result, err := fetch.JobDescription(ctx, analyzeJobURL, opts)
	if err != nil {
		return "", err
	}
	return result.Text, nil
}

// buildEngine loads the process-wide immutable state (linguistic model and
// skill dictionary) and wires the engine. Any failure here is fatal.
func buildEngine(cfg config.Config) (*engine.Engine, error) {
	annotator, dict, err := loadLinguistics()
	if err != nil {
		return nil, err
	}
	return engine.New(annotator, dict, cfg)
}
