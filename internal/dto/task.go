package dto

import (
	"crm-service/internal/models"
)

type ListTasksRequest struct {
	CustomerID string `query:"customerId" validate:"omitempty,uuid"`
	Status     string `query:"status" validate:"omitempty,task_status"`
	Kind       string `query:"kind" validate:"omitempty,max=32"`
	DueBefore  string `query:"dueBefore"`
	Limit      int    `query:"limit" validate:"omitempty,min=1,max=500"`
}

type CreateTaskRequest struct {
	CustomerID string `json:"customerId" validate:"required,uuid"`
	Title      string `json:"title" validate:"required,max=255"`
	DueAt      string `json:"dueAt" validate:"required"`
	Status     string `json:"status" validate:"omitempty,task_status"`
	Kind       string `json:"kind" validate:"omitempty,max=32"`
}

type UpdateTaskRequest struct {
	Title  *string `json:"title" validate:"omitempty,min=1,max=255"`
	DueAt  *string `json:"dueAt"`
	Status *string `json:"status" validate:"omitempty,task_status"`
	Kind   *string `json:"kind" validate:"omitempty,max=32"`
}

// TaskResponse is the API shape of a task. Timestamps are epoch milliseconds.
type TaskResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
	Title      string `json:"title"`
	DueAt      int64  `json:"dueAt"`
	Status     string `json:"status"`
	Kind       string `json:"kind,omitempty"`
	CreatedAt  int64  `json:"createdAt"`
	UpdatedAt  int64  `json:"updatedAt"`
}

func NewTaskResponse(t *models.Task) TaskResponse {
	return TaskResponse{
		ID:         t.ID.String(),
		CustomerID: t.CustomerID.String(),
		Title:      t.Title,
		DueAt:      t.DueAt.UnixMilli(),
		Status:     t.Status,
		Kind:       t.Kind,
		CreatedAt:  t.CreatedAt.UnixMilli(),
		UpdatedAt:  t.UpdatedAt.UnixMilli(),
	}
}

func NewTaskResponses(tasks []models.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTaskResponse(&tasks[i]))
	}
	return out
}
