package report

import (
	"fmt"
	"time"
)

// Window is the half-open [From, To) date range one report run covers.
// Both bounds are midnights on the weekly boundary in the reporting timezone.
type Window struct {
	From time.Time
	To   time.Time
}

// weekBoundary is the weekday the reporting week starts on.
const weekBoundary = time.Monday

// LastWeek computes the most recently completed reporting week relative to
// now, in the given location. If now falls exactly on the boundary midnight,
// that instant is the window's To.
func LastWeek(now time.Time, loc *time.Location) Window {
	local := now.In(loc)

	daysBack := (int(local.Weekday()) - int(weekBoundary) + 7) % 7
	boundary := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	boundary = boundary.AddDate(0, 0, -daysBack)

	return Window{
		From: boundary.AddDate(0, 0, -7),
		To:   boundary,
	}
}

// Contains reports whether t falls inside the half-open window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

// Label is the human-readable range used in email subjects, e.g.
// "18 Aug 2025 - 25 Aug 2025".
func (w Window) Label() string {
	return fmt.Sprintf("%s - %s", w.From.Format("2 Jan 2006"), w.To.Format("2 Jan 2006"))
}

// FileDate is the sortable date string used in artifact filenames.
func (w Window) FileDate() string {
	return w.To.Format("2006-01-02")
}

// Filename is the artifact name for this window.
func (w Window) Filename() string {
	return "weekly-activity-" + w.FileDate() + ".xlsx"
}
