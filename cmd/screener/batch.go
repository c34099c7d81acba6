package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/services"
)

var batchOut string

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Screen every PDF and text resume in a directory and export an XLSX report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, screener, log, err := newScreener()
		if err != nil {
			return err
		}
		defer log.Sync()

		batch := services.NewBatchScreener(screener.Classifier, cfg.Worker.Concurrency, log)
		results, err := batch.ScreenDir(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.2f%%\tsuitable=%t\n",
				r.Path, r.Result.RecommendedRole, r.Result.RoleConfidence, r.Result.IsSuitable)
		}

		if err := services.WriteBatchXLSX(batchOut, results); err != nil {
			return err
		}

		log.Info("batch complete",
			zap.Int("files", len(results)),
			zap.Int("failed", failed),
			zap.String("report", batchOut),
		)
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "screening_results.xlsx", "path of the XLSX report")
}
