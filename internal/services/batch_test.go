package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBatchScreener_ScreenDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "c_python.txt", "Sam Lee\nPython, SQL\n2 years")
	writeFile(t, dir, "a_java.txt", sampleResume)
	writeFile(t, dir, "b_broken.pdf", "not a pdf at all")
	writeFile(t, dir, "notes.md", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.txt"), 0o755))

	b := NewBatchScreener(newTestClassifier(t), 2, nil)
	results, err := b.ScreenDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, filepath.Join(dir, "a_java.txt"), results[0].Path)
	require.NoError(t, results[0].Err)
	assert.Equal(t, "Software Engineer", results[0].Result.RecommendedRole)

	assert.Equal(t, filepath.Join(dir, "b_broken.pdf"), results[1].Path)
	assert.ErrorIs(t, results[1].Err, ErrUnreadablePDF)
	assert.Nil(t, results[1].Result)

	assert.Equal(t, filepath.Join(dir, "c_python.txt"), results[2].Path)
	require.NoError(t, results[2].Err)
	assert.Equal(t, "Data Scientist", results[2].Result.RecommendedRole)
}

func TestBatchScreener_ScreenFilesKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"3.txt", "1.txt", "2.txt", "missing.txt"} {
		if name == "missing.txt" {
			paths = append(paths, filepath.Join(dir, name))
			continue
		}
		paths = append(paths, writeFile(t, dir, name, sampleResume))
	}

	results, err := NewBatchScreener(newTestClassifier(t), 4, nil).ScreenFiles(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, results, len(paths))

	for i, r := range results {
		assert.Equal(t, paths[i], r.Path)
	}
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[3].Err, os.ErrNotExist)
}

func TestBatchScreener_Canceled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", sampleResume)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBatchScreener(newTestClassifier(t), 1, nil).ScreenDir(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBatchScreener_MissingDir(t *testing.T) {
	_, err := NewBatchScreener(newTestClassifier(t), 1, nil).ScreenDir(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
