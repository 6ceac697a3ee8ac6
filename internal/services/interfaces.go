package services

import (
	"context"
	"io"
	"time"

	"crm-service/internal/dto"
	"crm-service/internal/firebase"
	"crm-service/internal/models"
	"crm-service/internal/pricing"
	"crm-service/internal/repositories"

	"github.com/google/uuid"
)

// RemoteSource reads whole collections from the remote document store
type RemoteSource interface {
	Configured() bool
	FetchAll(ctx context.Context, collection string) ([]firebase.Document, error)
}

// ClaimsWriter sets custom auth claims on a remote user
type ClaimsWriter interface {
	SetCustomUserClaims(ctx context.Context, uid string, claims map[string]interface{}) error
}

// ObjectStore persists uploaded photo bytes and returns their public URL
type ObjectStore interface {
	Put(ctx context.Context, name, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, name string) error
}

// SyncServiceInterface defines the Firebase reconciliation operations
type SyncServiceInterface interface {
	Status(ctx context.Context) dto.SyncStatusResponse
	SyncCustomers(ctx context.Context) (*dto.CustomerSyncSummary, error)
	SyncOrders(ctx context.Context) (*dto.OrderSyncSummary, error)
	SyncStaffClaims(ctx context.Context) (*dto.StaffSyncSummary, error)
	ListRuns(kind string, limit int) ([]models.SyncRun, error)
}

// CustomerServiceInterface defines customer business operations
type CustomerServiceInterface interface {
	CreateCustomer(ctx context.Context, req *dto.CreateCustomerRequest) (*models.Customer, error)
	GetCustomer(id uuid.UUID) (*models.Customer, error)
	ListCustomers(filter repositories.CustomerFilter) ([]models.Customer, int64, error)
	UpdateCustomer(ctx context.Context, id uuid.UUID, req *dto.UpdateCustomerRequest) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
	ListCities(ctx context.Context) ([]string, error)
}

// PhotoServiceInterface defines customer photo operations
type PhotoServiceInterface interface {
	UploadPhotos(ctx context.Context, customerID uuid.UUID, uploads []dto.PhotoUpload) ([]models.CustomerPhoto, error)
	ListPhotos(customerID uuid.UUID) ([]models.CustomerPhoto, error)
	DeletePhoto(ctx context.Context, customerID, photoID uuid.UUID) error
}

// TaskServiceInterface defines task business operations
type TaskServiceInterface interface {
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(id uuid.UUID) (*models.Task, error)
	ListTasks(filter repositories.TaskFilter) ([]models.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

// PricingServiceInterface defines catalog and quote operations
type PricingServiceInterface interface {
	Schedule() pricing.Schedule
	Quote(ctx context.Context, items []pricing.ItemInput) (*pricing.PricedCart, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, slug string, req *dto.UpdateProductRequest) (*models.Product, error)
}

// CircuitBreakerInterface guards calls to the remote source
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration, tags map[string]string)
	RecordGauge(name string, value float64, tags map[string]string)
}

// SyncLoggerInterface emits structured events for reconciliation runs
type SyncLoggerInterface interface {
	LogSyncStarted(ctx context.Context, kind string)
	LogSyncCompleted(ctx context.Context, run *models.SyncRun)
	LogSyncFailed(ctx context.Context, kind string, err error, durationMs int64)
	LogRecordFailed(ctx context.Context, kind, key, reason string)
	LogCustomerMatched(ctx context.Context, customerID uuid.UUID, externalID, email, matchedBy string)
}

// CustomerLoggerInterface emits structured events for CRM mutations
type CustomerLoggerInterface interface {
	LogCustomerCreated(ctx context.Context, customerID uuid.UUID, email string)
	LogCustomerUpdated(ctx context.Context, customerID uuid.UUID, updatedFields []string)
	LogCustomerDeleted(ctx context.Context, customerID uuid.UUID, photosRemoved int)
	LogPhotosUploaded(ctx context.Context, customerID uuid.UUID, count int)
	LogPhotoDeleted(ctx context.Context, customerID, photoID uuid.UUID)
	LogObjectCleanupFailed(ctx context.Context, objectName string, err error)
	LogCacheFailure(ctx context.Context, key string, err error)
	LogTaskChanged(ctx context.Context, taskID uuid.UUID, action string)
}
