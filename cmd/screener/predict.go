package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"alfredoptarigan/resume-screener/internal/models"
)

var predictCmd = &cobra.Command{
	Use:   "predict <resume.pdf|resume.txt>",
	Short: "Screen a single resume and print the prediction as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, screener, log, err := newScreener()
		if err != nil {
			return err
		}
		defer log.Sync()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		var result *models.PredictionResult
		if strings.EqualFold(filepath.Ext(args[0]), ".pdf") {
			result, err = screener.Classifier.PredictPDF(cmd.Context(), data)
		} else {
			result, err = screener.Classifier.Predict(cmd.Context(), string(data))
		}
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}
