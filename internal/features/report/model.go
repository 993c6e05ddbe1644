package report

import (
	"time"

	"yapton-backend/internal/features/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bucket is the per-user accumulator for one window.
type Bucket struct {
	User         user.User `json:"user"`
	TotalMinutes int       `json:"total_minutes"`
	TotalShifts  int       `json:"total_shifts"`
}

// SkippedRecord captures a record that degraded during aggregation, so
// operators can audit data quality per run instead of losing it silently.
type SkippedRecord struct {
	RecordID primitive.ObjectID `json:"record_id" bson:"record_id"`
	UserID   primitive.ObjectID `json:"user_id" bson:"user_id"`
	Duration string             `json:"duration,omitempty" bson:"duration,omitempty"`
	Reason   string             `json:"reason" bson:"reason"`
}

const (
	SkipReasonUnknownUser         = "unresolvable user"
	SkipReasonUnparseableDuration = "unparseable duration"
)

// Aggregate is the full result of one aggregation pass.
type Aggregate struct {
	Buckets []Bucket
	Skipped []SkippedRecord
}

// TotalMinutes sums minutes across all buckets.
func (a *Aggregate) TotalMinutes() int {
	total := 0
	for _, b := range a.Buckets {
		total += b.TotalMinutes
	}
	return total
}

// TotalShifts sums shift counts across all buckets.
func (a *Aggregate) TotalShifts() int {
	total := 0
	for _, b := range a.Buckets {
		total += b.TotalShifts
	}
	return total
}

// Run is the persisted record of one pipeline execution.
type Run struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	WindowFrom   time.Time          `json:"window_from" bson:"window_from"`
	WindowTo     time.Time          `json:"window_to" bson:"window_to"`
	StartTime    time.Time          `json:"start_time" bson:"start_time"`
	EndTime      *time.Time         `json:"end_time,omitempty" bson:"end_time,omitempty"`
	Status       string             `json:"status" bson:"status"` // "running", "success", "failed"
	Users        int                `json:"users" bson:"users"`
	Shifts       int                `json:"shifts" bson:"shifts"`
	Minutes      int                `json:"minutes" bson:"minutes"`
	Skipped      []SkippedRecord    `json:"skipped,omitempty" bson:"skipped,omitempty"`
	StatsWritten int                `json:"stats_written" bson:"stats_written"`
	StatsFailed  int                `json:"stats_failed" bson:"stats_failed"`
	EmailsSent   int                `json:"emails_sent" bson:"emails_sent"`
	EmailsFailed int                `json:"emails_failed" bson:"emails_failed"`
	Artifact     string             `json:"artifact,omitempty" bson:"artifact,omitempty"`
	Error        string             `json:"error,omitempty" bson:"error,omitempty"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}

const (
	RunStatusRunning = "running"
	RunStatusSuccess = "success"
	RunStatusFailed  = "failed"
)
