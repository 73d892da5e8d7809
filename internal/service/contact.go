package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/0tsuro/SparkCar/common/id"
	"github.com/0tsuro/SparkCar/common/logger"
	"github.com/0tsuro/SparkCar/core/config"
	"github.com/0tsuro/SparkCar/internal/mailer"
	"github.com/0tsuro/SparkCar/internal/model"
	"github.com/0tsuro/SparkCar/internal/queue"
)

var (
	ErrMissingCredentials = errors.New("email provider credentials are not configured")
	ErrDispatchFailed     = errors.New("contact email dispatch failed")
)

type ContactService interface {
	// Submit parses, validates and forwards one contact submission.
	// Validation problems come back as ValidationErrors; nothing is sent then.
	Submit(ctx context.Context, raw any) error
}

type contactService struct {
	cfg      config.ContactConfig
	mailer   mailer.Mailer
	failures queue.FailureRecorder
	logger   *slog.Logger
}

func NewContactService(cfg config.ContactConfig, m mailer.Mailer, failures queue.FailureRecorder, logger *slog.Logger) ContactService {
	if failures == nil {
		failures = queue.NopFailureRecorder()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &contactService{
		cfg:      cfg,
		mailer:   m,
		failures: failures,
		logger:   logger,
	}
}

func (s *contactService) Submit(ctx context.Context, raw any) error {
	submission, err := ParseSubmission(raw)
	if err != nil {
		return err
	}

	if errs := ValidateSubmission(submission); len(errs) > 0 {
		s.logger.DebugContext(ctx, "contact submission rejected", "error", errs)
		return errs
	}

	submissionID := id.New()
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		SubmissionID: logger.Ptr(submissionID),
		Component:    "sparkcar.contact",
	})

	if !s.cfg.Enabled() || s.mailer == nil {
		s.logger.ErrorContext(ctx, "contact email provider is not configured, submission dropped")
		s.recordFailure(ctx, submissionID, queue.FailureMissingCredentials, ErrMissingCredentials)
		return ErrMissingCredentials
	}

	sc := logger.StartSpan(ctx, "contact.dispatch", trace.WithSpanKind(trace.SpanKindClient))
	defer sc.End()
	ctx = sc.Context()
	sc.SetAttributes(attribute.Int64("contact.submission_id", submissionID))

	messageID, err := s.mailer.Send(ctx, BuildEmail(s.cfg, submission))
	if err != nil {
		sc.RecordError(err)
		s.logger.ErrorContext(ctx, "contact email dispatch failed", "error", err)
		s.recordFailure(ctx, submissionID, queue.FailureDispatch, err)
		return fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}

	s.logger.InfoContext(ctx, "contact email sent", "provider_message_id", messageID)
	return nil
}

// recordFailure never fails the request: diagnostics are best effort.
func (s *contactService) recordFailure(ctx context.Context, submissionID int64, kind queue.FailureKind, cause error) {
	f := queue.Failure{
		SubmissionID: submissionID,
		Kind:         kind,
		Error:        cause.Error(),
		AttemptedAt:  time.Now(),
	}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		f.TraceID = sc.TraceID().String()
	}
	if err := s.failures.Record(context.WithoutCancel(ctx), f); err != nil {
		s.logger.WarnContext(ctx, "failed to record contact failure", "error", err)
	}
}

// BuildEmail renders the notification sent to the business for a valid submission.
func BuildEmail(cfg config.ContactConfig, sub model.Submission) mailer.Email {
	return mailer.Email{
		From:    cfg.FromEmail,
		To:      cfg.ToEmail,
		ReplyTo: cfg.ReplyTo,
		Subject: fmt.Sprintf("Nouvelle demande SparkCar — %s", sub.Name),
		Text: fmt.Sprintf("Nom : %s\nTéléphone : %s\n\nMessage :\n%s\n",
			sub.Name, sub.Phone, sub.Message),
	}
}
