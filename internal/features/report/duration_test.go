package report

import "testing"

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"Clock H:MM", "1:30", 90},
		{"Clock with seconds", "1:30:45", 90},
		{"Clock zero padded", "02:05", 125},
		{"Clock zero", "0:00", 0},
		{"Hours and minutes", "2h 15m", 135},
		{"Hours and minutes upper", "2H 15M", 135},
		{"Hours and minutes no space", "2h15m", 135},
		{"No space smaller", "1h30m", 90},
		{"Hr min no space", "1hr30min", 90},
		{"Hours only", "3h", 180},
		{"Minutes only", "45m", 45},
		{"Long words", "2 hours 15 minutes", 135},
		{"Hrs and mins", "1 hr 5 mins", 65},
		{"Bare integer", "50", 50},
		{"Bare integer padded", "  90 ", 90},
		{"Garbage", "banana", 0},
		{"Empty", "", 0},
		{"Negative integer", "-30", 0},
		{"Mixed garbage", "about an hour", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseMinutes(tt.input); got != tt.want {
				t.Errorf("ParseMinutes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0h0m"},
		{30, "0h30m"},
		{60, "1h0m"},
		{105, "1h45m"},
		{135, "2h15m"},
	}

	for _, tt := range tests {
		if got := FormatMinutes(tt.minutes); got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
