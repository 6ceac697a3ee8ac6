package services

import (
	"context"
	"log/slog"
	"time"

	"crm-service/internal/logging"

	"github.com/google/uuid"
)

const (
	// RedactedValue masks personal data in log lines
	RedactedValue = "***REDACTED***"
)

// CustomerLogger provides structured logging for CRM mutations
type CustomerLogger struct {
	logger *slog.Logger
}

func NewCustomerLogger(logger *slog.Logger) CustomerLoggerInterface {
	return &CustomerLogger{
		logger: logger,
	}
}

func (cl *CustomerLogger) LogCustomerCreated(ctx context.Context, customerID uuid.UUID, email string) {
	cl.logger.InfoContext(ctx, "customer created",
		slog.String("event_type", "customer_created"),
		slog.String("customer_id", customerID.String()),
		slog.String("email", redact(email)),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *CustomerLogger) LogCustomerUpdated(ctx context.Context, customerID uuid.UUID, updatedFields []string) {
	cl.logger.InfoContext(ctx, "customer updated",
		slog.String("event_type", "customer_updated"),
		slog.String("customer_id", customerID.String()),
		slog.Any("updated_fields", updatedFields),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *CustomerLogger) LogCustomerDeleted(ctx context.Context, customerID uuid.UUID, photosRemoved int) {
	cl.logger.InfoContext(ctx, "customer deleted",
		slog.String("event_type", "customer_deleted"),
		slog.String("customer_id", customerID.String()),
		slog.Int("photos_removed", photosRemoved),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *CustomerLogger) LogPhotosUploaded(ctx context.Context, customerID uuid.UUID, count int) {
	cl.logger.InfoContext(ctx, "customer photos uploaded",
		slog.String("event_type", "photos_uploaded"),
		slog.String("customer_id", customerID.String()),
		slog.Int("count", count),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *CustomerLogger) LogPhotoDeleted(ctx context.Context, customerID, photoID uuid.UUID) {
	cl.logger.InfoContext(ctx, "customer photo deleted",
		slog.String("event_type", "photo_deleted"),
		slog.String("customer_id", customerID.String()),
		slog.String("photo_id", photoID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogObjectCleanupFailed records a stored object that could not be removed
// after its photo row was deleted. The row deletion itself stands.
func (cl *CustomerLogger) LogObjectCleanupFailed(ctx context.Context, objectName string, err error) {
	cl.logger.WarnContext(ctx, "photo object cleanup failed",
		slog.String("event_type", "object_cleanup_failed"),
		slog.String("object_name", objectName),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *CustomerLogger) LogCacheFailure(ctx context.Context, key string, err error) {
	cl.logger.WarnContext(ctx, "cache operation failed",
		slog.String("event_type", "cache_failure"),
		slog.String("key", key),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *CustomerLogger) LogTaskChanged(ctx context.Context, taskID uuid.UUID, action string) {
	cl.logger.InfoContext(ctx, "task changed",
		slog.String("event_type", "task_"+action),
		slog.String("task_id", taskID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func getRequestID(ctx context.Context) string {
	return logging.RequestID(ctx)
}

func redact(value string) string {
	if value == "" {
		return ""
	}
	return RedactedValue
}
