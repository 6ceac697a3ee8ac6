package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TagLead     = "lead"
	TagProspect = "prospect"
	TagCustomer = "customer"
	TagVIP      = "vip"
)

var (
	ErrCustomerNameRequired = errors.New("customer name is required")
)

// Customer is the authoritative local customer record.
type Customer struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ExternalID  string     `gorm:"type:varchar(128);index" json:"firebaseUid,omitempty"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Email       string     `gorm:"type:varchar(255);index" json:"email,omitempty"`
	Phone       string     `gorm:"type:varchar(64)" json:"phone,omitempty"`
	City        string     `gorm:"type:varchar(128);index" json:"city,omitempty"`
	Tag         string     `gorm:"type:varchar(32)" json:"tag,omitempty"`
	Notes       string     `gorm:"type:text" json:"notes,omitempty"`
	LogoURL     string     `gorm:"type:text" json:"logoUrl,omitempty"`
	LastOrderAt *time.Time `gorm:"index" json:"lastOrderAt,omitempty"`
	CreatedAt   time.Time  `gorm:"not null;index" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updatedAt"`

	Photos []CustomerPhoto `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
	Tasks  []Task          `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

func (c *Customer) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	c.UpdatedAt = time.Now().UTC()
	return c.Validate()
}

// Validate checks the fields every stored customer must carry.
func (c *Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrCustomerNameRequired
	}
	return nil
}

// NormalizedEmail is the key used for email matching.
func (c *Customer) NormalizedEmail() string {
	return NormalizeEmail(c.Email)
}

// HasExternalID reports whether the customer is linked to a remote identity.
func (c *Customer) HasExternalID() bool {
	return strings.TrimSpace(c.ExternalID) != ""
}

// OrderImageURLs returns photo URLs in display order. Photos must be preloaded.
func (c *Customer) OrderImageURLs() []string {
	urls := make([]string, 0, len(c.Photos))
	for _, p := range SortPhotos(c.Photos) {
		urls = append(urls, p.URL)
	}
	return urls
}

func (c *Customer) TableName() string {
	return "customers"
}

// NormalizeEmail lowercases and trims an email for comparisons.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidTag reports whether tag is one of the known segments or empty.
func IsValidTag(tag string) bool {
	switch tag {
	case "", TagLead, TagProspect, TagCustomer, TagVIP:
		return true
	default:
		return false
	}
}
