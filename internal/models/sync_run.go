package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SyncKindCustomers = "customers"
	SyncKindOrders    = "orders"
	SyncKindStaff     = "staff"

	SyncStatusCompleted = "completed"
	SyncStatusFailed    = "failed"
)

// SyncRun records the outcome of one reconciliation run, including the records
// that could not be written.
type SyncRun struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Kind       string    `gorm:"type:varchar(32);not null;index" json:"kind"`
	Status     string    `gorm:"type:varchar(16);not null" json:"status"`
	Created    int       `gorm:"not null;default:0" json:"created"`
	Updated    int       `gorm:"not null;default:0" json:"updated"`
	Skipped    int       `gorm:"not null;default:0" json:"skipped"`
	Failed     int       `gorm:"not null;default:0" json:"failed"`
	Total      int       `gorm:"not null;default:0" json:"total"`
	Error      string    `gorm:"type:text" json:"error,omitempty"`
	Failures   JSONMap   `gorm:"type:text" json:"failures,omitempty"`
	StartedAt  time.Time `gorm:"not null;index" json:"startedAt"`
	FinishedAt time.Time `gorm:"not null" json:"finishedAt"`
}

func (r *SyncRun) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.StartedAt.IsZero() {
		r.StartedAt = time.Now().UTC()
	}
	if r.FinishedAt.IsZero() {
		r.FinishedAt = r.StartedAt
	}
	return nil
}

func (r *SyncRun) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

func (r *SyncRun) TableName() string {
	return "sync_runs"
}

// JSONMap is a JSON object column stored as text for SQLite compatibility.
type JSONMap map[string]interface{}

// Value implements driver.Valuer
func (m JSONMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

// Scan implements sql.Scanner
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(bytes, m)
}
