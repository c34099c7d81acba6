package services

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"alfredoptarigan/resume-screener/internal/models"
)

func readSheet(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(screeningSheet)
	require.NoError(t, err)
	return rows
}

func TestExportBatchXLSX(t *testing.T) {
	results := []BatchResult{
		{
			Path: "/resumes/jane.pdf",
			Result: &models.PredictionResult{
				CandidateName:   "Jane Doe",
				Email:           "jane@example.com",
				Education:       "Master's degree in Statistics",
				Skills:          "python, sql",
				RecommendedRole: "Data Scientist",
				IsSuitable:      true,
				TopRoles:        []models.RoleMatch{{Role: "Data Scientist", Confidence: 0.7}},
				Recommendation:  "Strong candidate match for Data Scientist (80.00% confidence).",
			},
		},
		{Path: "/resumes/broken.pdf", Err: errors.New("unreadable PDF: bad header")},
	}

	data, err := ExportBatchXLSX(results)
	require.NoError(t, err)

	rows := readSheet(t, data)
	require.Len(t, rows, 3)
	assert.Equal(t, screeningHeaders, rows[0])

	assert.Equal(t, "jane.pdf", rows[1][0])
	assert.Equal(t, "Jane Doe", rows[1][1])
	assert.Equal(t, "Data Scientist", rows[1][7])
	assert.Equal(t, "yes", rows[1][9])
	assert.Equal(t, "Data Scientist (70.00%)", rows[1][11])

	assert.Equal(t, "broken.pdf", rows[2][0])
	require.Len(t, rows[2], len(screeningHeaders))
	assert.Equal(t, "unreadable PDF: bad header", rows[2][13])
}

func TestWriteBatchXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteBatchXLSX(path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{screeningSheet}, f.GetSheetList())
}
