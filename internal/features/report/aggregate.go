package report

import (
	"yapton-backend/internal/features/activity"
	"yapton-backend/internal/features/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AggregateRecords groups the window's activity records by owning user and
// sums parsed minutes and shift counts. Bucket order is insertion order of
// first appearance, which carries straight through to spreadsheet row order.
//
// Records whose owner is missing from users are excluded and reported in
// Skipped. Records with an unparseable duration stay in their bucket (the
// shift still counts, at zero minutes) but are reported in Skipped too.
func AggregateRecords(records []activity.Record, users map[primitive.ObjectID]user.User) *Aggregate {
	agg := &Aggregate{}
	index := make(map[primitive.ObjectID]int)

	for _, rec := range records {
		usr, ok := users[rec.UserID]
		if !ok {
			agg.Skipped = append(agg.Skipped, SkippedRecord{
				RecordID: rec.ID,
				UserID:   rec.UserID,
				Reason:   SkipReasonUnknownUser,
			})
			continue
		}

		i, seen := index[rec.UserID]
		if !seen {
			i = len(agg.Buckets)
			index[rec.UserID] = i
			agg.Buckets = append(agg.Buckets, Bucket{User: usr})
		}

		minutes := ParseMinutes(rec.Duration)
		if minutes == 0 && !isZeroDuration(rec.Duration) {
			agg.Skipped = append(agg.Skipped, SkippedRecord{
				RecordID: rec.ID,
				UserID:   rec.UserID,
				Duration: rec.Duration,
				Reason:   SkipReasonUnparseableDuration,
			})
		}

		agg.Buckets[i].TotalMinutes += minutes
		agg.Buckets[i].TotalShifts++
	}

	return agg
}

// isZeroDuration distinguishes a genuine "0"/"0m"/"0:00" entry from garbage
// that ParseMinutes degraded to zero.
func isZeroDuration(s string) bool {
	if m := tokenRe.FindStringSubmatch(s); clockRe.MatchString(s) || (m != nil && (m[1] != "" || m[2] != "")) {
		return true
	}
	if _, err := parseBareInt(s); err == nil {
		return true
	}
	return false
}
