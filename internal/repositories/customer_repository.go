package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"crm-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepositoryInterface {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(customer *models.Customer) error {
	if customer == nil {
		return errors.New("customer cannot be nil")
	}

	if err := r.db.Omit(clause.Associations).Create(customer).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrCustomerAlreadyExists
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

func (r *customerRepository) GetByID(id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Preload("Photos", orderPhotos).Where("id = ?", id).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by ID: %w", err)
	}

	return &customer, nil
}

func (r *customerRepository) GetByExternalID(externalID string) (*models.Customer, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, ErrCustomerNotFound
	}

	var customer models.Customer
	if err := r.db.Where("external_id = ?", externalID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by external ID: %w", err)
	}

	return &customer, nil
}

// GetByEmail matches case-insensitively.
func (r *customerRepository) GetByEmail(email string) (*models.Customer, error) {
	email = models.NormalizeEmail(email)
	if email == "" {
		return nil, ErrCustomerNotFound
	}

	var customer models.Customer
	if err := r.db.Where("LOWER(email) = ?", email).Order("created_at ASC").First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by email: %w", err)
	}

	return &customer, nil
}

// GetUnlinkedByEmail matches case-insensitively among customers without an
// external id.
func (r *customerRepository) GetUnlinkedByEmail(email string) (*models.Customer, error) {
	email = models.NormalizeEmail(email)
	if email == "" {
		return nil, ErrCustomerNotFound
	}

	var customer models.Customer
	err := r.db.
		Where("LOWER(email) = ?", email).
		Where("external_id = '' OR external_id IS NULL").
		Order("created_at ASC").
		First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get unlinked customer by email: %w", err)
	}

	return &customer, nil
}

// List returns a page of customers, newest first, with photos preloaded.
func (r *customerRepository) List(filter CustomerFilter) ([]models.Customer, int64, error) {
	query := r.db.Model(&models.Customer{})

	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?", like, like, like)
	}
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.Tag != "" {
		query = query.Where("tag = ?", filter.Tag)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	var customers []models.Customer
	err := query.
		Preload("Photos", orderPhotos).
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(clampLimit(filter.Limit)).
		Find(&customers).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, total, nil
}

// ListAll loads every customer without associations.
func (r *customerRepository) ListAll() ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.Order("created_at ASC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list all customers: %w", err)
	}
	return customers, nil
}

func (r *customerRepository) Update(customer *models.Customer) error {
	if customer == nil {
		return errors.New("customer cannot be nil")
	}

	if err := r.db.Omit(clause.Associations).Save(customer).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrCustomerAlreadyExists
		}
		return fmt.Errorf("failed to update customer: %w", err)
	}

	return nil
}

func (r *customerRepository) UpdateLastOrderAt(id uuid.UUID, lastOrderAt time.Time) error {
	result := r.db.Model(&models.Customer{}).Where("id = ?", id).Updates(map[string]interface{}{
		"last_order_at": lastOrderAt.UTC(),
		"updated_at":    time.Now().UTC(),
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update last order date: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// Delete removes the customer with its photos and tasks.
func (r *customerRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", id).Delete(&models.CustomerPhoto{}).Error; err != nil {
			return fmt.Errorf("failed to delete customer photos: %w", err)
		}
		if err := tx.Where("customer_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return fmt.Errorf("failed to delete customer tasks: %w", err)
		}

		result := tx.Where("id = ?", id).Delete(&models.Customer{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete customer: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCustomerNotFound
		}
		return nil
	})
}

// ListCities returns the distinct non-empty cities in alphabetical order.
func (r *customerRepository) ListCities() ([]string, error) {
	var cities []string
	err := r.db.Model(&models.Customer{}).
		Where("city <> ''").
		Distinct("city").
		Order("city ASC").
		Pluck("city", &cities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	return cities, nil
}

func (r *customerRepository) ListPhotos(customerID uuid.UUID) ([]models.CustomerPhoto, error) {
	var photos []models.CustomerPhoto
	if err := orderPhotos(r.db.Where("customer_id = ?", customerID)).Find(&photos).Error; err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	return photos, nil
}

func (r *customerRepository) GetPhoto(customerID, photoID uuid.UUID) (*models.CustomerPhoto, error) {
	var photo models.CustomerPhoto
	err := r.db.Where("id = ? AND customer_id = ?", photoID, customerID).First(&photo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}
	return &photo, nil
}

// AddPhotos appends photos after the customer's current last position.
func (r *customerRepository) AddPhotos(customerID uuid.UUID, photos []models.CustomerPhoto) ([]models.CustomerPhoto, error) {
	if len(photos) == 0 {
		return nil, nil
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		next, err := nextPhotoPosition(tx, customerID)
		if err != nil {
			return err
		}

		for i := range photos {
			photos[i].ID = uuid.Nil
			photos[i].CustomerID = customerID
			photos[i].Position = next + i
		}

		if err := tx.Create(&photos).Error; err != nil {
			return fmt.Errorf("failed to add photos: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return photos, nil
}

// ReplacePhotos makes urls the customer's exact ordered photo list. Rows whose
// URL is kept are repositioned in place; the rest are deleted and returned.
func (r *customerRepository) ReplacePhotos(customerID uuid.UUID, urls []string) ([]models.CustomerPhoto, error) {
	var removed []models.CustomerPhoto

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing []models.CustomerPhoto
		if err := tx.Where("customer_id = ?", customerID).Find(&existing).Error; err != nil {
			return fmt.Errorf("failed to load photos: %w", err)
		}

		byURL := make(map[string]models.CustomerPhoto, len(existing))
		for _, p := range existing {
			if _, dup := byURL[p.URL]; dup {
				removed = append(removed, p)
				continue
			}
			byURL[p.URL] = p
		}

		position := 0
		for _, raw := range urls {
			url := strings.TrimSpace(raw)
			if url == "" {
				continue
			}

			if p, ok := byURL[url]; ok {
				delete(byURL, url)
				if err := tx.Model(&models.CustomerPhoto{}).Where("id = ?", p.ID).Update("position", position).Error; err != nil {
					return fmt.Errorf("failed to reposition photo: %w", err)
				}
			} else {
				photo := &models.CustomerPhoto{CustomerID: customerID, URL: url, Position: position}
				if err := tx.Create(photo).Error; err != nil {
					return fmt.Errorf("failed to create photo: %w", err)
				}
			}
			position++
		}

		for _, p := range byURL {
			removed = append(removed, p)
		}
		for _, p := range removed {
			if err := tx.Where("id = ?", p.ID).Delete(&models.CustomerPhoto{}).Error; err != nil {
				return fmt.Errorf("failed to delete photo: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return removed, nil
}

func (r *customerRepository) DeletePhoto(customerID, photoID uuid.UUID) error {
	result := r.db.Where("id = ? AND customer_id = ?", photoID, customerID).Delete(&models.CustomerPhoto{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete photo: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPhotoNotFound
	}
	return nil
}

func orderPhotos(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC").Order("created_at ASC")
}

func nextPhotoPosition(tx *gorm.DB, customerID uuid.UUID) (int, error) {
	var maxPosition sql.NullInt64
	row := tx.Model(&models.CustomerPhoto{}).
		Where("customer_id = ?", customerID).
		Select("MAX(position)").
		Row()
	if err := row.Scan(&maxPosition); err != nil {
		return 0, fmt.Errorf("failed to read photo positions: %w", err)
	}
	if !maxPosition.Valid {
		return 0, nil
	}
	return int(maxPosition.Int64) + 1, nil
}
