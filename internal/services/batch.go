package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"alfredoptarigan/resume-screener/internal/models"
)

// BatchResult is the outcome for one file; Err is set instead of Result when
// that file could not be screened.
type BatchResult struct {
	Path   string
	Result *models.PredictionResult
	Err    error
}

type BatchScreener interface {
	ScreenDir(ctx context.Context, dir string) ([]BatchResult, error)
	ScreenFiles(ctx context.Context, paths []string) ([]BatchResult, error)
}

type batchScreener struct {
	classifier  ResumeClassifierService
	concurrency int
	logger      *zap.Logger
}

func NewBatchScreener(classifier ResumeClassifierService, concurrency int, logger *zap.Logger) BatchScreener {
	if concurrency < 1 {
		concurrency = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &batchScreener{
		classifier:  classifier,
		concurrency: concurrency,
		logger:      logger,
	}
}

// ScreenDir screens every .pdf and .txt file directly inside dir, in name order.
func (b *batchScreener) ScreenDir(ctx context.Context, dir string) ([]BatchResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".pdf", ".txt":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	return b.ScreenFiles(ctx, paths)
}

// ScreenFiles keeps the input order. Only cancellation aborts the batch.
func (b *batchScreener) ScreenFiles(ctx context.Context, paths []string) ([]BatchResult, error) {
	results := make([]BatchResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result, err := b.screenFile(gctx, path)
			results[i] = BatchResult{Path: path, Result: result, Err: err}

			if err != nil {
				b.logger.Warn("screening failed", zap.String("path", path), zap.Error(err))
			} else {
				b.logger.Info("screened",
					zap.String("path", path),
					zap.String("recommended_role", result.RecommendedRole),
					zap.Bool("is_suitable", result.IsSuitable),
				)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (b *batchScreener) screenFile(ctx context.Context, path string) (*models.PredictionResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return b.classifier.PredictPDF(ctx, data)
	}
	return b.classifier.Predict(ctx, string(data))
}
