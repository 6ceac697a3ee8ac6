package services

import (
	"context"
	"log/slog"
	"time"

	"crm-service/internal/models"

	"github.com/google/uuid"
)

// SyncLogger emits one structured event per reconciliation phase
type SyncLogger struct {
	logger *slog.Logger
}

func NewSyncLogger(logger *slog.Logger) SyncLoggerInterface {
	return &SyncLogger{logger: logger}
}

func (sl *SyncLogger) LogSyncStarted(ctx context.Context, kind string) {
	sl.logger.InfoContext(ctx, "sync started",
		slog.String("event_type", "sync_started"),
		slog.String("kind", kind),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (sl *SyncLogger) LogSyncCompleted(ctx context.Context, run *models.SyncRun) {
	level := slog.LevelInfo
	if run.Failed > 0 {
		level = slog.LevelWarn
	}

	sl.logger.Log(ctx, level, "sync completed",
		slog.String("event_type", "sync_completed"),
		slog.String("kind", run.Kind),
		slog.String("run_id", run.ID.String()),
		slog.Int("created", run.Created),
		slog.Int("updated", run.Updated),
		slog.Int("skipped", run.Skipped),
		slog.Int("failed", run.Failed),
		slog.Int("total", run.Total),
		slog.Int64("duration_ms", run.Duration().Milliseconds()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (sl *SyncLogger) LogSyncFailed(ctx context.Context, kind string, err error, durationMs int64) {
	sl.logger.ErrorContext(ctx, "sync failed",
		slog.String("event_type", "sync_failed"),
		slog.String("kind", kind),
		slog.String("error", err.Error()),
		slog.Int64("duration_ms", durationMs),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (sl *SyncLogger) LogRecordFailed(ctx context.Context, kind, key, reason string) {
	sl.logger.WarnContext(ctx, "sync record failed",
		slog.String("event_type", "sync_record_failed"),
		slog.String("kind", kind),
		slog.String("record_key", key),
		slog.String("reason", reason),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (sl *SyncLogger) LogCustomerMatched(ctx context.Context, customerID uuid.UUID, externalID, email, matchedBy string) {
	sl.logger.DebugContext(ctx, "remote customer matched",
		slog.String("event_type", "sync_customer_matched"),
		slog.String("customer_id", customerID.String()),
		slog.String("external_id", externalID),
		slog.String("email", redact(email)),
		slog.String("matched_by", matchedBy),
		slog.String("request_id", getRequestID(ctx)),
	)
}
