package repositories

import (
	"time"

	"crm-service/internal/models"

	"github.com/google/uuid"
)

// CustomerFilter narrows customer listings. Zero values match everything.
type CustomerFilter struct {
	Query  string
	City   string
	Tag    string
	Offset int
	Limit  int
}

// TaskFilter narrows task listings. Zero values match everything.
type TaskFilter struct {
	CustomerID *uuid.UUID
	Status     string
	Kind       string
	DueBefore  *time.Time
	Limit      int
}

// CustomerRepositoryInterface defines the contract for customer and customer photo persistence
type CustomerRepositoryInterface interface {
	Create(customer *models.Customer) error
	GetByID(id uuid.UUID) (*models.Customer, error)
	GetByExternalID(externalID string) (*models.Customer, error)
	GetByEmail(email string) (*models.Customer, error)
	GetUnlinkedByEmail(email string) (*models.Customer, error)
	List(filter CustomerFilter) ([]models.Customer, int64, error)
	ListAll() ([]models.Customer, error)
	Update(customer *models.Customer) error
	UpdateLastOrderAt(id uuid.UUID, lastOrderAt time.Time) error
	Delete(id uuid.UUID) error
	ListCities() ([]string, error)

	ListPhotos(customerID uuid.UUID) ([]models.CustomerPhoto, error)
	GetPhoto(customerID, photoID uuid.UUID) (*models.CustomerPhoto, error)
	AddPhotos(customerID uuid.UUID, photos []models.CustomerPhoto) ([]models.CustomerPhoto, error)
	ReplacePhotos(customerID uuid.UUID, urls []string) (removed []models.CustomerPhoto, err error)
	DeletePhoto(customerID, photoID uuid.UUID) error
}

// TaskRepositoryInterface defines the contract for task persistence
type TaskRepositoryInterface interface {
	Create(task *models.Task) error
	GetByID(id uuid.UUID) (*models.Task, error)
	List(filter TaskFilter) ([]models.Task, error)
	Update(task *models.Task) error
	Delete(id uuid.UUID) error
	DeleteByCustomerAndKind(customerID uuid.UUID, kind string) (int64, error)
	ReplaceByKind(task *models.Task) error
}

// ProductRepositoryInterface defines the contract for catalog persistence
type ProductRepositoryInterface interface {
	Create(product *models.Product) error
	GetBySlug(slug string) (*models.Product, error)
	List() ([]models.Product, error)
	Update(product *models.Product) error
}

// SyncRunRepositoryInterface defines the contract for sync run history
type SyncRunRepositoryInterface interface {
	Create(run *models.SyncRun) error
	List(kind string, limit int) ([]models.SyncRun, error)
}
