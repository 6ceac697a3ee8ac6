package repositories

import (
	"errors"
	"fmt"

	"crm-service/internal/models"

	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) ProductRepositoryInterface {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	if product == nil {
		return errors.New("product cannot be nil")
	}

	if err := r.db.Create(product).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrProductAlreadyExists
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *productRepository) GetBySlug(slug string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("slug = ?", slug).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by slug: %w", err)
	}
	return &product, nil
}

func (r *productRepository) List() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("slug ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (r *productRepository) Update(product *models.Product) error {
	if product == nil {
		return errors.New("product cannot be nil")
	}

	if err := r.db.Save(product).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrProductAlreadyExists
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}
