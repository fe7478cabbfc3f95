// Package main provides the entry point for the resume matcher CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Resume / job-description match analyzer",
	Long:  "Resume Matcher scores how well a resume matches a job description by combining keyword overlap with TF-IDF semantic similarity, and reports keyword gaps and improvement suggestions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
