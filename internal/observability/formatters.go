// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScores outputs a human-readable summary of the match scores.
func (p *Printer) PrintScores(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:   %.0f%%\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Keywords:  %.1f%%\n", result.KeywordScore))
	sb.WriteString(fmt.Sprintf("Semantic:  %.1f%%\n", result.SemanticScore))
	sb.WriteString("\n")
	for _, category := range types.Categories() {
		sb.WriteString(fmt.Sprintf("  %-10s %.1f%%\n", string(category)+":", result.CategoryScores[category]))
	}

	p.printBox("Match Scores", strings.TrimRight(sb.String(), "\n"))
}

// PrintMissingKeywords outputs the per-category keyword gaps.
func (p *Printer) PrintMissingKeywords(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	for _, category := range types.Categories() {
		missing := result.Missing(category)
		if len(missing) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s:\n", category))
		count := min(len(missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", missing[i].CanonicalForm))
		}
		if len(missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(missing)-maxItemsToShow))
		}
	}
	if result.HasConceptualGap(types.CategoryTechnical) ||
		result.HasConceptualGap(types.CategorySoft) ||
		result.HasConceptualGap(types.CategoryGeneral) {
		sb.WriteString("\nConceptual gaps: ")
		gaps := make([]string, 0, len(result.ConceptualGaps))
		for _, gap := range result.ConceptualGaps {
			gaps = append(gaps, string(gap))
		}
		sb.WriteString(strings.Join(gaps, ", "))
		sb.WriteString("\n")
	}

	if sb.Len() == 0 {
		sb.WriteString("No keyword gaps found.")
	}

	p.printBox("Missing Keywords", strings.TrimRight(sb.String(), "\n"))
}

// PrintSuggestions outputs the improvement suggestions.
func (p *Printer) PrintSuggestions(result *types.MatchResult) {
	if result == nil || len(result.Suggestions) == 0 {
		return
	}

	var sb strings.Builder
	for i, suggestion := range result.Suggestions {
		sb.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, suggestion.Kind, suggestion.Text))
	}

	p.printBox("Suggestions", strings.TrimRight(sb.String(), "\n"))
}
