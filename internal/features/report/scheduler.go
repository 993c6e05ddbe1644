package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yapton-backend/internal/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler owns the cron timer that fires the weekly report pipeline.
// It holds no pipeline state of its own; each firing is an independent run.
type Scheduler struct {
	service  ReportService
	logger   *zap.Logger
	schedule string

	cron *cron.Cron
	now  func() time.Time // injectable clock for tests
}

func NewScheduler(service ReportService, cfg *config.Config, logger *zap.Logger) (*Scheduler, error) {
	if _, err := cron.ParseStandard(cfg.ReportSchedule); err != nil {
		return nil, fmt.Errorf("invalid report schedule %q: %w", cfg.ReportSchedule, err)
	}

	return &Scheduler{
		service:  service,
		logger:   logger,
		schedule: cfg.ReportSchedule,
		now:      time.Now,
	}, nil
}

func (s *Scheduler) Start() error {
	if s.cron != nil {
		return errors.New("scheduler already started")
	}

	s.cron = cron.New(cron.WithLocation(s.service.Location()))
	if _, err := s.cron.AddFunc(s.schedule, s.fire); err != nil {
		return fmt.Errorf("failed to register report job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("report scheduler started",
		zap.String("schedule", s.schedule),
		zap.String("timezone", s.service.Location().String()),
	)
	return nil
}

func (s *Scheduler) Stop() error {
	if s.cron == nil {
		return nil
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.cron = nil
	return nil
}

// fire runs one pipeline pass. A run already in progress is not an error at
// this level; it means a previous firing overran its interval.
func (s *Scheduler) fire() {
	_, err := s.service.RunWeeklyReport(context.Background(), s.now())
	if err != nil {
		if errors.Is(err, ErrRunInProgress) {
			s.logger.Warn("skipping report firing: previous run still in progress")
			return
		}
		s.logger.Error("scheduled report run failed", zap.Error(err))
	}
}
