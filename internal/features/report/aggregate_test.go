package report

import (
	"reflect"
	"testing"
	"time"

	"yapton-backend/internal/features/activity"
	"yapton-backend/internal/features/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testUsers() (user.User, user.User, map[primitive.ObjectID]user.User) {
	userA := user.User{
		ID:       primitive.NewObjectID(),
		Username: "alice",
		Email:    "alice@flatstudios.net",
		Role:     user.RoleStaff,
	}
	userB := user.User{
		ID:       primitive.NewObjectID(),
		Username: "bob",
		Email:    "bob@flatstudios.net",
		Role:     user.RoleStaff,
	}
	return userA, userB, map[primitive.ObjectID]user.User{
		userA.ID: userA,
		userB.ID: userB,
	}
}

func record(userID primitive.ObjectID, duration string) activity.Record {
	return activity.Record{
		ID:       primitive.NewObjectID(),
		UserID:   userID,
		Date:     time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC),
		Duration: duration,
	}
}

func TestAggregateRecords(t *testing.T) {
	userA, userB, users := testUsers()

	records := []activity.Record{
		record(userA.ID, "1h"),
		record(userB.ID, "30"),
		record(userA.ID, "45m"),
	}

	agg := AggregateRecords(records, users)

	if len(agg.Buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(agg.Buckets))
	}

	// Insertion order of first appearance: alice first, then bob.
	if agg.Buckets[0].User.Username != "alice" {
		t.Errorf("bucket 0 = %s, want alice", agg.Buckets[0].User.Username)
	}
	if agg.Buckets[1].User.Username != "bob" {
		t.Errorf("bucket 1 = %s, want bob", agg.Buckets[1].User.Username)
	}

	if agg.Buckets[0].TotalMinutes != 105 || agg.Buckets[0].TotalShifts != 2 {
		t.Errorf("alice bucket = {%d min, %d shifts}, want {105, 2}",
			agg.Buckets[0].TotalMinutes, agg.Buckets[0].TotalShifts)
	}
	if agg.Buckets[1].TotalMinutes != 30 || agg.Buckets[1].TotalShifts != 1 {
		t.Errorf("bob bucket = {%d min, %d shifts}, want {30, 1}",
			agg.Buckets[1].TotalMinutes, agg.Buckets[1].TotalShifts)
	}

	if agg.TotalMinutes() != 135 {
		t.Errorf("TotalMinutes() = %d, want 135", agg.TotalMinutes())
	}
	if agg.TotalShifts() != 3 {
		t.Errorf("TotalShifts() = %d, want 3", agg.TotalShifts())
	}
	if len(agg.Skipped) != 0 {
		t.Errorf("expected no skipped records, got %v", agg.Skipped)
	}
}

func TestAggregateRecordsUnknownUser(t *testing.T) {
	userA, _, users := testUsers()

	orphan := record(primitive.NewObjectID(), "2h")
	records := []activity.Record{
		record(userA.ID, "1h"),
		orphan,
	}

	agg := AggregateRecords(records, users)

	if len(agg.Buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(agg.Buckets))
	}
	if agg.TotalMinutes() != 60 {
		t.Errorf("TotalMinutes() = %d, want 60", agg.TotalMinutes())
	}

	if len(agg.Skipped) != 1 {
		t.Fatalf("expected 1 skipped record, got %d", len(agg.Skipped))
	}
	if agg.Skipped[0].RecordID != orphan.ID {
		t.Errorf("skipped record id = %v, want %v", agg.Skipped[0].RecordID, orphan.ID)
	}
	if agg.Skipped[0].Reason != SkipReasonUnknownUser {
		t.Errorf("skip reason = %q, want %q", agg.Skipped[0].Reason, SkipReasonUnknownUser)
	}
}

func TestAggregateRecordsUnparseableDuration(t *testing.T) {
	userA, _, users := testUsers()

	bad := record(userA.ID, "banana")
	records := []activity.Record{
		record(userA.ID, "1h"),
		bad,
	}

	agg := AggregateRecords(records, users)

	// The shift still counts, at zero minutes, and is flagged for audit.
	if len(agg.Buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(agg.Buckets))
	}
	if agg.Buckets[0].TotalMinutes != 60 || agg.Buckets[0].TotalShifts != 2 {
		t.Errorf("bucket = {%d min, %d shifts}, want {60, 2}",
			agg.Buckets[0].TotalMinutes, agg.Buckets[0].TotalShifts)
	}

	if len(agg.Skipped) != 1 {
		t.Fatalf("expected 1 skipped record, got %d", len(agg.Skipped))
	}
	if agg.Skipped[0].Reason != SkipReasonUnparseableDuration {
		t.Errorf("skip reason = %q, want %q", agg.Skipped[0].Reason, SkipReasonUnparseableDuration)
	}
}

func TestAggregateRecordsGenuineZeroNotFlagged(t *testing.T) {
	userA, _, users := testUsers()

	records := []activity.Record{
		record(userA.ID, "0"),
		record(userA.ID, "0:00"),
		record(userA.ID, "0m"),
	}

	agg := AggregateRecords(records, users)

	if len(agg.Skipped) != 0 {
		t.Errorf("genuine zero durations should not be flagged, got %v", agg.Skipped)
	}
	if agg.Buckets[0].TotalShifts != 3 {
		t.Errorf("shifts = %d, want 3", agg.Buckets[0].TotalShifts)
	}
}

func TestAggregateRecordsIdempotent(t *testing.T) {
	userA, userB, users := testUsers()

	records := []activity.Record{
		record(userA.ID, "1h 30m"),
		record(userB.ID, "2:00"),
		record(userA.ID, "15m"),
	}

	first := AggregateRecords(records, users)
	second := AggregateRecords(records, users)

	if !reflect.DeepEqual(first.Buckets, second.Buckets) {
		t.Error("aggregating an unchanged store twice produced different buckets")
	}
	if !reflect.DeepEqual(first.Skipped, second.Skipped) {
		t.Error("aggregating an unchanged store twice produced different skip lists")
	}
}

func TestAggregateRecordsEmpty(t *testing.T) {
	_, _, users := testUsers()

	agg := AggregateRecords(nil, users)

	if len(agg.Buckets) != 0 || len(agg.Skipped) != 0 {
		t.Errorf("empty input should yield empty aggregate, got %+v", agg)
	}
	if agg.TotalMinutes() != 0 || agg.TotalShifts() != 0 {
		t.Error("empty aggregate totals should be zero")
	}
}
