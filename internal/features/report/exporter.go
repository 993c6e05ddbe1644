package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Weekly Activity"

var exportColumns = []string{"User", "Total Shifts", "Weekly Total Time", "Email"}

// ExportWorkbook writes the aggregate table to an .xlsx file under dir,
// named for the window's end date. An existing file for the same week is
// overwritten. Returns the bare filename.
func ExportWorkbook(agg *Aggregate, window Window, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, bucket := range agg.Buckets {
		row := rowIdx + 2
		setRow(f, row,
			bucket.User.Username,
			bucket.TotalShifts,
			FormatMinutes(bucket.TotalMinutes),
			bucket.User.Email,
		)
	}

	totalRow := len(agg.Buckets) + 2
	setRow(f, totalRow,
		"TOTAL",
		agg.TotalShifts(),
		FormatMinutes(agg.TotalMinutes()),
		"",
	)
	start, _ := excelize.CoordinatesToCellName(1, totalRow)
	end, _ := excelize.CoordinatesToCellName(len(exportColumns), totalRow)
	f.SetCellStyle(sheetName, start, end, boldStyle)

	for i := range exportColumns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 22)
	}

	filename := window.Filename()
	if err := f.SaveAs(filepath.Join(dir, filename)); err != nil {
		return "", fmt.Errorf("failed to write spreadsheet: %w", err)
	}

	return filename, nil
}

func setRow(f *excelize.File, row int, values ...interface{}) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheetName, cell, v)
	}
}
