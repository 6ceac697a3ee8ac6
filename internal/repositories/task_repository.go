package repositories

import (
	"errors"
	"fmt"

	"crm-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) TaskRepositoryInterface {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(task *models.Task) error {
	if task == nil {
		return errors.New("task cannot be nil")
	}

	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *taskRepository) GetByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task by ID: %w", err)
	}
	return &task, nil
}

// List returns matching tasks ordered by due date, earliest first.
func (r *taskRepository) List(filter TaskFilter) ([]models.Task, error) {
	query := r.db.Model(&models.Task{})

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}
	if filter.DueBefore != nil {
		query = query.Where("due_at < ?", filter.DueBefore.UTC())
	}

	var tasks []models.Task
	if err := query.Order("due_at ASC").Limit(clampLimit(filter.Limit)).Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (r *taskRepository) Update(task *models.Task) error {
	if task == nil {
		return errors.New("task cannot be nil")
	}

	if err := r.db.Save(task).Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

func (r *taskRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Task{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) DeleteByCustomerAndKind(customerID uuid.UUID, kind string) (int64, error) {
	result := r.db.Where("customer_id = ? AND kind = ?", customerID, kind).Delete(&models.Task{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete %s tasks: %w", kind, result.Error)
	}
	return result.RowsAffected, nil
}

// ReplaceByKind deletes every task of the same customer and kind, then inserts
// task, in one transaction.
func (r *taskRepository) ReplaceByKind(task *models.Task) error {
	if task == nil {
		return errors.New("task cannot be nil")
	}
	if task.Kind == "" {
		return errors.New("task kind is required for replacement")
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ? AND kind = ?", task.CustomerID, task.Kind).Delete(&models.Task{}).Error; err != nil {
			return fmt.Errorf("failed to delete %s tasks: %w", task.Kind, err)
		}
		if err := tx.Create(task).Error; err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}
		return nil
	})
}
