package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/app"
	"alfredoptarigan/resume-screener/internal/config"
	applog "alfredoptarigan/resume-screener/internal/logger"
)

const appName = "screener"

var (
	artifactPath string
	debug        bool
	jsonLogs     bool

	rootCmd = &cobra.Command{
		Use:          appName,
		Short:        "screener classifies resumes into roles and screens them for suitability",
		SilenceUsage: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&artifactPath, "artifact", "", "model artifact (default is ARTIFACT_PATH or ./artifacts/resume_model.json)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&jsonLogs, "json", "j", false, "json format for logging")

	rootCmd.AddCommand(predictCmd, batchCmd, checkArtifactCmd)
}

func setup() (*config.Config, *zap.Logger, error) {
	cfg := config.Load()
	if artifactPath != "" {
		cfg.Model.ArtifactPath = artifactPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log, err := applog.New(jsonLogs || cfg.Log.JSON, debug || cfg.Log.Debug)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func newScreener() (*config.Config, *app.Screener, *zap.Logger, error) {
	cfg, log, err := setup()
	if err != nil {
		return nil, nil, nil, err
	}
	screener, err := app.NewScreener(cfg, cfg.Model.ArtifactPath, log)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, screener, log, nil
}
