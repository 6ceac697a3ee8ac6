package repositories

import (
	"errors"
	"fmt"

	"crm-service/internal/models"

	"gorm.io/gorm"
)

type syncRunRepository struct {
	db *gorm.DB
}

// NewSyncRunRepository creates a new sync run repository
func NewSyncRunRepository(db *gorm.DB) SyncRunRepositoryInterface {
	return &syncRunRepository{db: db}
}

func (r *syncRunRepository) Create(run *models.SyncRun) error {
	if run == nil {
		return errors.New("sync run cannot be nil")
	}

	if err := r.db.Create(run).Error; err != nil {
		return fmt.Errorf("failed to record sync run: %w", err)
	}
	return nil
}

// List returns the most recent runs first. An empty kind matches all kinds.
func (r *syncRunRepository) List(kind string, limit int) ([]models.SyncRun, error) {
	query := r.db.Model(&models.SyncRun{})
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}

	var runs []models.SyncRun
	if err := query.Order("started_at DESC").Limit(clampLimit(limit)).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list sync runs: %w", err)
	}
	return runs, nil
}
