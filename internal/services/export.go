package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

const screeningSheet = "Screenings"

var screeningHeaders = []string{
	"File",
	"Candidate",
	"Email",
	"Phone",
	"Education",
	"Experience (years)",
	"Skills",
	"Recommended Role",
	"Role Confidence (%)",
	"Suitable",
	"Suitability Confidence (%)",
	"Top Roles",
	"Recommendation",
	"Error",
}

// ExportBatchXLSX renders batch results as a workbook, one row per file.
func ExportBatchXLSX(results []BatchResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", screeningSheet); err != nil {
		return nil, fmt.Errorf("xlsx sheet: %w", err)
	}

	for i, h := range screeningHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(screeningSheet, cell, h)
	}

	for i, r := range results {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(screeningSheet, cell, v)
		}

		write(1, filepath.Base(r.Path))
		if r.Err != nil || r.Result == nil {
			write(14, errorText(r.Err))
			continue
		}

		res := r.Result
		write(2, res.CandidateName)
		write(3, res.Email)
		write(4, res.Phone)
		write(5, res.Education)
		write(6, res.ExperienceYears)
		write(7, res.Skills)
		write(8, res.RecommendedRole)
		write(9, res.RoleConfidence)
		write(10, yesNo(res.IsSuitable))
		write(11, res.SuitabilityConfidence)
		write(12, topRolesText(res.TopRoles))
		write(13, res.Recommendation)
	}

	_ = f.SetColWidth(screeningSheet, "A", "A", 28)
	_ = f.SetColWidth(screeningSheet, "B", "E", 24)
	_ = f.SetColWidth(screeningSheet, "G", "G", 48)
	_ = f.SetColWidth(screeningSheet, "H", "H", 22)
	_ = f.SetColWidth(screeningSheet, "L", "M", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func WriteBatchXLSX(path string, results []BatchResult) error {
	data, err := ExportBatchXLSX(results)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func errorText(err error) string {
	if err == nil {
		return "no result"
	}
	return err.Error()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
