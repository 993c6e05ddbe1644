package report

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Staff type shift durations free-form, so parsing is a best-effort ladder:
// clock style ("1:30", "1:30:00"), token style ("2h 15m", "2 hrs", "45 min"),
// then a bare number of minutes. Anything else counts as zero so a single
// malformed entry never blocks the weekly report.
var (
	clockRe = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})(?::(\d{2}))?\s*$`)
	// Suffix alternations are ordered longest-first: RE2 has no lookahead,
	// so a bare "h" must not win before "hrs" gets a chance, and anchoring
	// the whole string keeps "2h15m" from losing its hour token.
	tokenRe = regexp.MustCompile(`(?i)^\s*(?:(\d+)\s*(?:hours?|hrs?|h))?\s*(?:(\d+)\s*(?:minutes?|mins?|m))?\s*$`)
)

// ParseMinutes converts a free-form duration string to whole minutes.
// It is a total function: every input maps to an integer >= 0.
func ParseMinutes(s string) int {
	if m := clockRe.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.Atoi(m[1])
		mins, _ := strconv.Atoi(m[2])
		// seconds, if present, are ignored
		return hours*60 + mins
	}

	if m := tokenRe.FindStringSubmatch(s); m != nil && (m[1] != "" || m[2] != "") {
		total := 0
		if m[1] != "" {
			hours, _ := strconv.Atoi(m[1])
			total += hours * 60
		}
		if m[2] != "" {
			mins, _ := strconv.Atoi(m[2])
			total += mins
		}
		return total
	}

	if n, err := parseBareInt(s); err == nil {
		return n
	}

	return 0
}

var errNotAMinuteCount = errors.New("not a minute count")

func parseBareInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, errNotAMinuteCount
	}
	return n, nil
}

// FormatMinutes renders a minute total as "XhYm", the format used in the
// spreadsheet's time column.
func FormatMinutes(total int) string {
	if total < 0 {
		total = 0
	}
	return strconv.Itoa(total/60) + "h" + strconv.Itoa(total%60) + "m"
}
