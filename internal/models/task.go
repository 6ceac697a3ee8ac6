package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TaskStatusOpen = "open"
	TaskStatusDone = "done"

	TaskKindFollowUp = "followup"

	FollowUpTitle       = "Follow-up call after last order"
	FollowUpDelayMonths = 6
)

var (
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

// Task is a reminder attached to a customer.
type Task struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customerId"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	DueAt      time.Time `gorm:"not null;index" json:"dueAt"`
	Status     string    `gorm:"type:varchar(16);not null;default:'open'" json:"status"`
	Kind       string    `gorm:"type:varchar(32);index" json:"kind,omitempty"`
	CreatedAt  time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"not null" json:"updatedAt"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = TaskStatusOpen
	}

	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

func (t *Task) BeforeUpdate(tx *gorm.DB) error {
	if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
		return nil
	}

	t.UpdatedAt = time.Now().UTC()
	return t.Validate()
}

func (t *Task) Validate() error {
	if t.CustomerID == uuid.Nil {
		return errors.New("customer ID is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("task title is required")
	}
	if t.DueAt.IsZero() {
		return errors.New("task due date is required")
	}
	if !IsValidTaskStatus(t.Status) {
		return fmt.Errorf("%w: %s", ErrInvalidTaskStatus, t.Status)
	}
	return nil
}

func (t *Task) IsFollowUp() bool {
	return t.Kind == TaskKindFollowUp
}

func (t *Task) TableName() string {
	return "tasks"
}

func IsValidTaskStatus(status string) bool {
	return status == TaskStatusOpen || status == TaskStatusDone
}

// NewFollowUpTask derives the follow-up reminder for a customer's latest order.
// The due date is six calendar months later; day overflow rolls into the next
// month the way time.AddDate normalizes it.
func NewFollowUpTask(customerID uuid.UUID, lastOrderAt time.Time) *Task {
	return &Task{
		CustomerID: customerID,
		Title:      FollowUpTitle,
		DueAt:      FollowUpDueAt(lastOrderAt),
		Status:     TaskStatusOpen,
		Kind:       TaskKindFollowUp,
	}
}

func FollowUpDueAt(lastOrderAt time.Time) time.Time {
	return lastOrderAt.UTC().AddDate(0, FollowUpDelayMonths, 0)
}
