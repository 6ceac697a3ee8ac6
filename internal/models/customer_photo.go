package models

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerPhoto is one entry of a customer's ordered image list.
type CustomerPhoto struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customerId"`
	URL        string    `gorm:"type:text;not null" json:"url"`
	ObjectName string    `gorm:"type:varchar(255)" json:"-"`
	Position   int       `gorm:"not null;default:0" json:"position"`
	CreatedAt  time.Time `gorm:"not null" json:"createdAt"`
}

func (p *CustomerPhoto) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if p.CustomerID == uuid.Nil {
		return errors.New("customer ID is required")
	}
	if p.URL == "" {
		return errors.New("photo URL is required")
	}
	return nil
}

// IsUploaded reports whether the photo is backed by an object this service stored.
func (p *CustomerPhoto) IsUploaded() bool {
	return p.ObjectName != ""
}

func (p *CustomerPhoto) TableName() string {
	return "customer_photos"
}

// SortPhotos orders photos by position, then creation time.
func SortPhotos(photos []CustomerPhoto) []CustomerPhoto {
	sorted := make([]CustomerPhoto, len(photos))
	copy(sorted, photos)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Position != sorted[j].Position {
			return sorted[i].Position < sorted[j].Position
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return sorted
}
