package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/dictionary"
	"github.com/jonathan/resume-matcher/internal/server"
	"github.com/jonathan/resume-matcher/internal/textproc"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the matching engine as a REST endpoint.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Default()
	if serveConfig != "" {
		loaded, err := config.Load(serveConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if servePort != config.DefaultPort {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(eng, cfg.Port)
	if err != nil {
		return err
	}
	return srv.Start()
}

// loadLinguistics builds the annotator and loads the skill dictionary, the
// two pieces of process-wide immutable state. Either failure means the
// process must not serve requests.
func loadLinguistics() (*textproc.Annotator, *dictionary.Dictionary, error) {
	annotator, err := textproc.NewAnnotator()
	if err != nil {
		return nil, nil, err
	}
	dict, err := dictionary.Load()
	if err != nil {
		return nil, nil, err
	}
	return annotator, dict, nil
}
