package report

import (
	"context"
	"errors"
	"fmt"
	"html"
	"sync"
	"time"

	"yapton-backend/internal/config"
	"yapton-backend/internal/features/activity"
	"yapton-backend/internal/features/email"
	"yapton-backend/internal/features/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ErrRunInProgress is returned when a run fires while another is still going.
var ErrRunInProgress = errors.New("a report run is already in progress")

type ReportService interface {
	// RunWeeklyReport executes the full pipeline for the week preceding now:
	// window compute, aggregation, per-user stat writes, spreadsheet export,
	// recipient notification. Exactly one run may be active at a time.
	RunWeeklyReport(ctx context.Context, now time.Time) (*Run, error)
	ListRuns(ctx context.Context, limit int64) ([]Run, error)
	GetRun(ctx context.Context, id string) (*Run, error)
	Location() *time.Location
}

type ReportServiceImpl struct {
	RunRepo      RunRepository
	ActivityRepo activity.ActivityRepository
	UserRepo     user.UserRepository
	Mailer       email.Mailer
	Config       *config.Config
	Logger       *zap.Logger

	loc     *time.Location
	mu      sync.Mutex
	running bool
}

func NewReportService(
	runRepo RunRepository,
	activityRepo activity.ActivityRepository,
	userRepo user.UserRepository,
	mailer email.Mailer,
	cfg *config.Config,
	logger *zap.Logger,
) (ReportService, error) {
	loc, err := time.LoadLocation(cfg.ReportTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid report timezone %q: %w", cfg.ReportTimezone, err)
	}

	return &ReportServiceImpl{
		RunRepo:      runRepo,
		ActivityRepo: activityRepo,
		UserRepo:     userRepo,
		Mailer:       mailer,
		Config:       cfg,
		Logger:       logger,
		loc:          loc,
	}, nil
}

func (s *ReportServiceImpl) Location() *time.Location {
	return s.loc
}

func (s *ReportServiceImpl) tryAcquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false
	}
	s.running = true
	return true
}

func (s *ReportServiceImpl) release() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

func (s *ReportServiceImpl) RunWeeklyReport(ctx context.Context, now time.Time) (*Run, error) {
	if !s.tryAcquire() {
		return nil, ErrRunInProgress
	}
	defer s.release()

	window := LastWeek(now, s.loc)

	run := &Run{
		WindowFrom: window.From,
		WindowTo:   window.To,
		StartTime:  time.Now(),
		Status:     RunStatusRunning,
	}
	if err := s.RunRepo.Create(ctx, run); err != nil {
		s.Logger.Error("failed to create report run record", zap.Error(err))
	}

	s.Logger.Info("starting weekly activity report",
		zap.Time("from", window.From),
		zap.Time("to", window.To),
	)

	agg, err := s.aggregate(ctx, window)
	if err != nil {
		return s.finishFailed(ctx, run, fmt.Errorf("aggregation failed: %w", err))
	}

	run.Users = len(agg.Buckets)
	run.Shifts = agg.TotalShifts()
	run.Minutes = agg.TotalMinutes()
	run.Skipped = agg.Skipped

	written, failed := s.persistStats(ctx, agg, window)
	run.StatsWritten = written
	run.StatsFailed = failed

	filename, err := ExportWorkbook(agg, window, s.Config.ReportsDir)
	if err != nil {
		// No artifact means nothing to notify about: fatal to the run.
		// Stats already written this run stand.
		return s.finishFailed(ctx, run, err)
	}
	run.Artifact = filename

	sent, sendFailed := s.notify(ctx, window, filename)
	run.EmailsSent = sent
	run.EmailsFailed = sendFailed

	run.Status = RunStatusSuccess
	endTime := time.Now()
	run.EndTime = &endTime
	if err := s.RunRepo.Update(ctx, run); err != nil {
		s.Logger.Error("failed to update report run record", zap.Error(err))
	}

	s.Logger.Info("weekly activity report complete",
		zap.String("artifact", filename),
		zap.Int("users", run.Users),
		zap.Int("shifts", run.Shifts),
		zap.Int("minutes", run.Minutes),
		zap.Int("skipped", len(run.Skipped)),
		zap.Int("emails_sent", run.EmailsSent),
	)

	return run, nil
}

func (s *ReportServiceImpl) aggregate(ctx context.Context, window Window) (*Aggregate, error) {
	records, err := s.ActivityRepo.ListInWindow(ctx, window.From, window.To)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(records))
	seen := make(map[primitive.ObjectID]bool)
	for _, rec := range records {
		if !seen[rec.UserID] {
			seen[rec.UserID] = true
			ids = append(ids, rec.UserID)
		}
	}

	users, err := s.UserRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	userMap := make(map[primitive.ObjectID]user.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}

	agg := AggregateRecords(records, userMap)

	for _, skipped := range agg.Skipped {
		s.Logger.Warn("degraded activity record",
			zap.String("record_id", skipped.RecordID.Hex()),
			zap.String("user_id", skipped.UserID.Hex()),
			zap.String("reason", skipped.Reason),
		)
	}

	return agg, nil
}

// persistStats overwrites each aggregated user's derived weekly fields.
// A failed write is logged and skipped; the run continues.
func (s *ReportServiceImpl) persistStats(ctx context.Context, agg *Aggregate, window Window) (written, failed int) {
	for _, bucket := range agg.Buckets {
		stats := user.WeeklyStats{
			Hours:      bucket.TotalMinutes / 60,
			Minutes:    bucket.TotalMinutes % 60,
			Shifts:     bucket.TotalShifts,
			ComputedAt: window.To,
		}

		if err := s.UserRepo.UpdateWeeklyStats(ctx, bucket.User.ID, stats); err != nil {
			s.Logger.Error("failed to persist weekly stats",
				zap.String("user_id", bucket.User.ID.Hex()),
				zap.String("username", bucket.User.Username),
				zap.Error(err),
			)
			failed++
			continue
		}
		written++
	}
	return written, failed
}

// notify emails every user holding the recipient role a link to the artifact.
// Sends are attempted independently; one failure never aborts the rest.
func (s *ReportServiceImpl) notify(ctx context.Context, window Window, filename string) (sent, failed int) {
	recipients, err := s.UserRepo.FindByRole(ctx, s.Config.ReportRecipientRole)
	if err != nil {
		s.Logger.Error("failed to look up report recipients", zap.Error(err))
		return 0, 0
	}

	if len(recipients) == 0 {
		s.Logger.Warn("no report recipients found",
			zap.String("role", s.Config.ReportRecipientRole),
		)
		return 0, 0
	}

	link := s.Config.BaseURL + s.Config.ReportsURL + "/" + filename
	subject := fmt.Sprintf("Weekly Activity Report (%s)", window.Label())

	for _, recipient := range recipients {
		body := reportEmailBody(recipient.Username, window, link)
		if err := s.Mailer.Send(ctx, []string{recipient.Email}, subject, body); err != nil {
			s.Logger.Error("failed to send report email",
				zap.String("to", recipient.Email),
				zap.Error(err),
			)
			failed++
			continue
		}
		sent++
	}
	return sent, failed
}

func (s *ReportServiceImpl) finishFailed(ctx context.Context, run *Run, err error) (*Run, error) {
	run.Status = RunStatusFailed
	run.Error = err.Error()
	endTime := time.Now()
	run.EndTime = &endTime
	if uerr := s.RunRepo.Update(ctx, run); uerr != nil {
		s.Logger.Error("failed to update report run record", zap.Error(uerr))
	}
	s.Logger.Error("weekly activity report failed", zap.Error(err))
	return run, err
}

func (s *ReportServiceImpl) ListRuns(ctx context.Context, limit int64) ([]Run, error) {
	return s.RunRepo.List(ctx, limit)
}

func (s *ReportServiceImpl) GetRun(ctx context.Context, id string) (*Run, error) {
	return s.RunRepo.GetByID(ctx, id)
}

func reportEmailBody(username string, window Window, link string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1a1a2e;">Weekly Activity Report</h2>
  <p>Hello %s,</p>
  <p>The staff activity report for <strong>%s</strong> is ready.</p>
  <p style="margin: 24px 0;">
    <a href="%s" style="background-color: #16213e; color: #ffffff; padding: 12px 24px; text-decoration: none; border-radius: 4px;">Download Report</a>
  </p>
  <p style="color: #666; font-size: 12px;">Flat Studios &middot; Yapton &amp; District</p>
</div>`, html.EscapeString(username), window.Label(), link)
}
