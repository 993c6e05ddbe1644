package report

import (
	"testing"
	"time"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("failed to load location %s: %v", name, err)
	}
	return loc
}

func TestLastWeek(t *testing.T) {
	london := mustLocation(t, "Europe/London")

	tests := []struct {
		name     string
		now      time.Time
		wantFrom time.Time
		wantTo   time.Time
	}{
		{
			name:     "Midweek Wednesday",
			now:      time.Date(2025, 8, 27, 15, 30, 0, 0, london),
			wantFrom: time.Date(2025, 8, 18, 0, 0, 0, 0, london),
			wantTo:   time.Date(2025, 8, 25, 0, 0, 0, 0, london),
		},
		{
			name:     "Exactly on the boundary",
			now:      time.Date(2025, 8, 25, 0, 0, 0, 0, london),
			wantFrom: time.Date(2025, 8, 18, 0, 0, 0, 0, london),
			wantTo:   time.Date(2025, 8, 25, 0, 0, 0, 0, london),
		},
		{
			name:     "Sunday before the boundary",
			now:      time.Date(2025, 8, 24, 23, 59, 0, 0, london),
			wantFrom: time.Date(2025, 8, 11, 0, 0, 0, 0, london),
			wantTo:   time.Date(2025, 8, 18, 0, 0, 0, 0, london),
		},
		{
			name:     "Window spans the autumn clock change",
			now:      time.Date(2025, 10, 29, 12, 0, 0, 0, london),
			wantFrom: time.Date(2025, 10, 20, 0, 0, 0, 0, london),
			wantTo:   time.Date(2025, 10, 27, 0, 0, 0, 0, london),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := LastWeek(tt.now, london)
			if !w.From.Equal(tt.wantFrom) {
				t.Errorf("From = %v, want %v", w.From, tt.wantFrom)
			}
			if !w.To.Equal(tt.wantTo) {
				t.Errorf("To = %v, want %v", w.To, tt.wantTo)
			}
		})
	}
}

func TestLastWeekIgnoresServerLocalZone(t *testing.T) {
	london := mustLocation(t, "Europe/London")
	tokyo := mustLocation(t, "Asia/Tokyo")

	// Early Monday morning in Tokyo is still Sunday in London; the London
	// window must not have rolled over yet.
	now := time.Date(2025, 8, 25, 6, 0, 0, 0, tokyo)
	w := LastWeek(now, london)

	wantTo := time.Date(2025, 8, 18, 0, 0, 0, 0, london)
	if !w.To.Equal(wantTo) {
		t.Errorf("To = %v, want %v", w.To, wantTo)
	}
}

func TestWindowContains(t *testing.T) {
	london := mustLocation(t, "Europe/London")
	w := LastWeek(time.Date(2025, 8, 27, 12, 0, 0, 0, london), london)

	if !w.Contains(w.From) {
		t.Error("window should contain its From bound")
	}
	if w.Contains(w.To) {
		t.Error("window should not contain its To bound (half-open)")
	}
	if !w.Contains(w.To.Add(-time.Second)) {
		t.Error("window should contain the instant just before To")
	}
	if w.Contains(w.From.Add(-time.Second)) {
		t.Error("window should not contain the instant just before From")
	}
}

func TestWindowLabels(t *testing.T) {
	london := mustLocation(t, "Europe/London")
	w := LastWeek(time.Date(2025, 8, 27, 12, 0, 0, 0, london), london)

	if got, want := w.Label(), "18 Aug 2025 - 25 Aug 2025"; got != want {
		t.Errorf("Label() = %q, want %q", got, want)
	}
	if got, want := w.FileDate(), "2025-08-25"; got != want {
		t.Errorf("FileDate() = %q, want %q", got, want)
	}
	if got, want := w.Filename(), "weekly-activity-2025-08-25.xlsx"; got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}
