package main

import (
	"context"
	"flag"
	"log"
	"time"

	"yapton-backend/internal/config"
	"yapton-backend/internal/database"
	"yapton-backend/internal/features/activity"
	"yapton-backend/internal/features/email"
	"yapton-backend/internal/features/report"
	"yapton-backend/internal/features/user"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// One-shot runner for the weekly activity report. Used for manual reruns and
// backfills; pass -now to anchor the window somewhere other than today.
func main() {
	nowFlag := flag.String("now", "", "anchor time for the window, RFC3339 (default: current time)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	now := time.Now()
	if *nowFlag != "" {
		now, err = time.Parse(time.RFC3339, *nowFlag)
		if err != nil {
			log.Fatalf("Invalid -now value: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := &database.MongodbDB{DB: client.Database(cfg.DBName)}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	userRepo := user.NewUserRepository(db)
	activityRepo := activity.NewActivityRepository(db)
	emailRepo := email.NewEmailRepository(db)
	runRepo := report.NewRunRepository(db)
	mailer := email.NewEmailService(cfg, emailRepo, logger)

	svc, err := report.NewReportService(runRepo, activityRepo, userRepo, mailer, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to build report service: %v", err)
	}

	run, err := svc.RunWeeklyReport(context.Background(), now)
	if err != nil {
		log.Fatalf("Report run failed: %v", err)
	}

	log.Printf("Report run complete: artifact=%s users=%d shifts=%d minutes=%d skipped=%d emails_sent=%d emails_failed=%d",
		run.Artifact, run.Users, run.Shifts, run.Minutes, len(run.Skipped), run.EmailsSent, run.EmailsFailed)
}
