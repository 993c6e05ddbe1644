package report

import (
	"context"
	"testing"
	"time"

	"yapton-backend/internal/config"

	"go.uber.org/zap"
)

type stubReportService struct {
	calls []time.Time
	err   error
}

func (s *stubReportService) RunWeeklyReport(ctx context.Context, now time.Time) (*Run, error) {
	s.calls = append(s.calls, now)
	return &Run{Status: RunStatusSuccess}, s.err
}
func (s *stubReportService) ListRuns(ctx context.Context, limit int64) ([]Run, error) {
	return nil, nil
}
func (s *stubReportService) GetRun(ctx context.Context, id string) (*Run, error) {
	return nil, nil
}
func (s *stubReportService) Location() *time.Location { return time.UTC }

func TestNewSchedulerRejectsBadExpression(t *testing.T) {
	cfg := &config.Config{ReportSchedule: "not a cron line"}
	if _, err := NewScheduler(&stubReportService{}, cfg, zap.NewNop()); err == nil {
		t.Error("expected error for invalid schedule")
	}
}

func TestSchedulerFire(t *testing.T) {
	cfg := &config.Config{ReportSchedule: "0 0 * * 1"}
	svc := &stubReportService{}

	s, err := NewScheduler(svc, cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("NewScheduler() error = %v", err)
	}

	anchor := time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return anchor }

	s.fire()

	if len(svc.calls) != 1 {
		t.Fatalf("expected 1 run, got %d", len(svc.calls))
	}
	if !svc.calls[0].Equal(anchor) {
		t.Errorf("run anchored at %v, want %v", svc.calls[0], anchor)
	}
}

func TestSchedulerFireToleratesOverlap(t *testing.T) {
	cfg := &config.Config{ReportSchedule: "0 0 * * 1"}
	svc := &stubReportService{err: ErrRunInProgress}

	s, err := NewScheduler(svc, cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("NewScheduler() error = %v", err)
	}
	s.now = func() time.Time { return time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC) }

	// Must not panic or escalate; the overlap is logged and skipped.
	s.fire()

	if len(svc.calls) != 1 {
		t.Fatalf("expected 1 attempted run, got %d", len(svc.calls))
	}
}

func TestSchedulerStartStop(t *testing.T) {
	cfg := &config.Config{ReportSchedule: "0 0 * * 1"}

	s, err := NewScheduler(&stubReportService{}, cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("NewScheduler() error = %v", err)
	}

	if err := s.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := s.Start(); err == nil {
		t.Error("second Start() should error")
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	// Stop is idempotent once stopped.
	if err := s.Stop(); err != nil {
		t.Fatalf("second Stop() error = %v", err)
	}
}
