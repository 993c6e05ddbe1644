package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"yapton-backend/internal/features/user"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testWindow(t *testing.T) Window {
	t.Helper()
	loc := mustLocation(t, "Europe/London")
	return LastWeek(time.Date(2025, 8, 27, 12, 0, 0, 0, loc), loc)
}

func TestExportWorkbook(t *testing.T) {
	dir := t.TempDir()
	window := testWindow(t)

	agg := &Aggregate{
		Buckets: []Bucket{
			{
				User:         user.User{ID: primitive.NewObjectID(), Username: "alice", Email: "alice@flatstudios.net"},
				TotalMinutes: 105,
				TotalShifts:  2,
			},
			{
				User:         user.User{ID: primitive.NewObjectID(), Username: "bob", Email: "bob@flatstudios.net"},
				TotalMinutes: 30,
				TotalShifts:  1,
			},
		},
	}

	filename, err := ExportWorkbook(agg, window, dir)
	if err != nil {
		t.Fatalf("ExportWorkbook() error = %v", err)
	}
	if filename != "weekly-activity-2025-08-25.xlsx" {
		t.Errorf("filename = %q, want weekly-activity-2025-08-25.xlsx", filename)
	}

	f, err := excelize.OpenFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatalf("failed to open exported workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("failed to read sheet: %v", err)
	}

	want := [][]string{
		{"User", "Total Shifts", "Weekly Total Time", "Email"},
		{"alice", "2", "1h45m", "alice@flatstudios.net"},
		{"bob", "1", "0h30m", "bob@flatstudios.net"},
		{"TOTAL", "3", "2h15m"},
	}

	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, wantRow := range want {
		for j, wantCell := range wantRow {
			if j >= len(rows[i]) || rows[i][j] != wantCell {
				t.Errorf("row %d col %d = %q, want %q", i, j, cellAt(rows, i, j), wantCell)
			}
		}
	}
}

func cellAt(rows [][]string, i, j int) string {
	if i < len(rows) && j < len(rows[i]) {
		return rows[i][j]
	}
	return ""
}

func TestExportWorkbookCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	window := testWindow(t)

	filename, err := ExportWorkbook(&Aggregate{}, window, dir)
	if err != nil {
		t.Fatalf("ExportWorkbook() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, filename)); err != nil {
		t.Errorf("artifact missing: %v", err)
	}
}

func TestExportWorkbookOverwrites(t *testing.T) {
	dir := t.TempDir()
	window := testWindow(t)

	agg := &Aggregate{
		Buckets: []Bucket{
			{User: user.User{Username: "alice", Email: "alice@flatstudios.net"}, TotalMinutes: 60, TotalShifts: 1},
		},
	}

	if _, err := ExportWorkbook(&Aggregate{}, window, dir); err != nil {
		t.Fatalf("first export failed: %v", err)
	}
	filename, err := ExportWorkbook(agg, window, dir)
	if err != nil {
		t.Fatalf("second export failed: %v", err)
	}

	f, err := excelize.OpenFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatalf("failed to open exported workbook: %v", err)
	}
	defer f.Close()

	val, err := f.GetCellValue(sheetName, "A2")
	if err != nil {
		t.Fatalf("failed to read cell: %v", err)
	}
	if val != "alice" {
		t.Errorf("A2 = %q, want alice (rerun should overwrite the prior file)", val)
	}
}
