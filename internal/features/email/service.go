package email

import (
	"context"
	"errors"
	"fmt"

	"yapton-backend/internal/config"

	"go.uber.org/zap"
)

// Mailer is the outbound mail capability the rest of the app depends on.
// The report dispatcher takes this interface so tests can fake the transport.
type Mailer interface {
	Send(ctx context.Context, to []string, subject, htmlBody string) error
}

type EmailServiceImpl struct {
	Config *config.Config
	Repo   *EmailRepository
	Logger *zap.Logger
}

func NewEmailService(cfg *config.Config, repo *EmailRepository, logger *zap.Logger) Mailer {
	return &EmailServiceImpl{
		Config: cfg,
		Repo:   repo,
		Logger: logger,
	}
}

func (s *EmailServiceImpl) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	if s.Config.SMTPHost == "" || s.Config.SMTPPort == 0 {
		return errors.New("invalid email configuration: missing host or port")
	}
	if len(to) == 0 {
		return errors.New("no recipients")
	}

	fromAddr := s.Config.SMTPFrom
	if fromAddr == "" {
		fromAddr = s.Config.SMTPUser
	}
	fromHeader := fromAddr
	if s.Config.SMTPFromName != "" {
		fromHeader = fmt.Sprintf("%s <%s>", s.Config.SMTPFromName, fromAddr)
	}

	emailRecord := &Email{
		From:     fromHeader,
		To:       to,
		Subject:  subject,
		HtmlBody: htmlBody,
		Status:   EmailQueued,
	}
	if s.Repo != nil {
		_ = s.Repo.Create(ctx, emailRecord)
	}

	smtpCfg := SMTPConfig{
		Host:     s.Config.SMTPHost,
		Port:     s.Config.SMTPPort,
		Username: s.Config.SMTPUser,
		Password: s.Config.SMTPPassword,
	}

	s.Logger.Info("sending email", zap.Strings("to", to), zap.String("subject", subject))
	err := SendSMTP(smtpCfg, fromAddr, fromHeader, to, subject, htmlBody)

	status := EmailSent
	errMsg := ""
	if err != nil {
		status = EmailFailed
		errMsg = err.Error()
	}
	if s.Repo != nil {
		_ = s.Repo.UpdateStatus(ctx, emailRecord.ID, status, errMsg)
	}

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
