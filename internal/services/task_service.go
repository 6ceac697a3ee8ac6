package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"crm-service/internal/dto"
	"crm-service/internal/models"
	"crm-service/internal/repositories"

	"github.com/google/uuid"
)

type taskService struct {
	tasks     repositories.TaskRepositoryInterface
	customers repositories.CustomerRepositoryInterface
	logger    CustomerLoggerInterface
	metrics   MetricsRecorderInterface
}

func NewTaskService(
	tasks repositories.TaskRepositoryInterface,
	customers repositories.CustomerRepositoryInterface,
	logger CustomerLoggerInterface,
	metrics MetricsRecorderInterface,
) TaskServiceInterface {
	return &taskService{
		tasks:     tasks,
		customers: customers,
		logger:    logger,
		metrics:   metrics,
	}
}

func (s *taskService) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, ErrCustomerNotFound
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTaskTitleRequired
	}

	dueAt, err := ParseTimestamp(req.DueAt)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.TaskStatusOpen
	}
	if !models.IsValidTaskStatus(status) {
		return nil, ErrInvalidTaskStatus
	}

	if _, err := s.customers.GetByID(customerID); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	task := &models.Task{
		CustomerID: customerID,
		Title:      title,
		DueAt:      dueAt,
		Status:     status,
		Kind:       strings.TrimSpace(req.Kind),
	}
	if err := s.tasks.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.recordChange(ctx, task, "created")
	return task, nil
}

func (s *taskService) GetTask(id uuid.UUID) (*models.Task, error) {
	task, err := s.tasks.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

func (s *taskService) ListTasks(filter repositories.TaskFilter) ([]models.Task, error) {
	if filter.Status != "" && !models.IsValidTaskStatus(filter.Status) {
		return nil, ErrInvalidTaskStatus
	}

	tasks, err := s.tasks.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *taskService) UpdateTask(ctx context.Context, id uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.GetTask(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, ErrTaskTitleRequired
		}
		task.Title = title
	}
	if req.DueAt != nil {
		dueAt, err := ParseTimestamp(*req.DueAt)
		if err != nil {
			return nil, err
		}
		task.DueAt = dueAt
	}
	if req.Status != nil {
		if !models.IsValidTaskStatus(*req.Status) {
			return nil, ErrInvalidTaskStatus
		}
		task.Status = *req.Status
	}
	if req.Kind != nil {
		task.Kind = strings.TrimSpace(*req.Kind)
	}

	if err := s.tasks.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.recordChange(ctx, task, "updated")
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	task, err := s.GetTask(id)
	if err != nil {
		return err
	}

	if err := s.tasks.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.recordChange(ctx, task, "deleted")
	return nil
}

func (s *taskService) recordChange(ctx context.Context, task *models.Task, action string) {
	s.logger.LogTaskChanged(ctx, task.ID, action)
	if s.metrics != nil {
		s.metrics.IncrementCounter(MetricTaskChanged, map[string]string{"action": action, "kind": task.Kind})
	}
}
