package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/0tsuro/SparkCar/common/logger"
)

type FailureKind string

const (
	FailureMissingCredentials FailureKind = "missing_credentials"
	FailureDispatch           FailureKind = "dispatch_failed"
)

// Failure describes a contact submission the server could not deliver.
// It never carries the submitter's name, phone or message.
type Failure struct {
	SubmissionID int64
	Kind         FailureKind
	Error        string
	TraceID      string
	AttemptedAt  time.Time
}

// FailureRecorder keeps delivery failures for operators.
type FailureRecorder interface {
	Record(ctx context.Context, f Failure) error
	Close() error
}

const maxErrorLength = 1024

type redisFailureRecorder struct {
	client *redis.Client
	stream string
	maxLen int64
	logger *slog.Logger
}

// NewRedisFailureRecorder appends failures to a capped Redis stream.
func NewRedisFailureRecorder(client *redis.Client, stream string, logger *slog.Logger) FailureRecorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisFailureRecorder{
		client: client,
		stream: stream,
		maxLen: 10000,
		logger: logger,
	}
}

func (r *redisFailureRecorder) Record(ctx context.Context, f Failure) error {
	if f.AttemptedAt.IsZero() {
		f.AttemptedAt = time.Now()
	}

	errMsg := logger.CutUTF8(f.Error, maxErrorLength)

	fields := map[string]any{
		"submission_id": f.SubmissionID,
		"kind":          string(f.Kind),
		"error":         errMsg,
		"attempted_at":  f.AttemptedAt.UTC().Format(time.RFC3339Nano),
	}
	if f.TraceID != "" {
		fields["trace_id"] = f.TraceID
	}

	if err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: r.stream,
		MaxLen: r.maxLen,
		Approx: true,
		Values: fields,
	}).Err(); err != nil {
		return fmt.Errorf("record contact failure: %w", err)
	}

	r.logger.InfoContext(ctx, "recorded contact failure", "submission_id", f.SubmissionID, "kind", f.Kind, "stream", r.stream)
	return nil
}

func (r *redisFailureRecorder) Close() error {
	return r.client.Close()
}

type nopFailureRecorder struct{}

// NopFailureRecorder discards failures; used when no Redis is configured.
func NopFailureRecorder() FailureRecorder {
	return nopFailureRecorder{}
}

func (nopFailureRecorder) Record(context.Context, Failure) error { return nil }

func (nopFailureRecorder) Close() error { return nil }
