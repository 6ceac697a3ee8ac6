package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrCustomerAlreadyExists = errors.New("customer with this external ID already exists")
	ErrPhotoNotFound         = errors.New("photo not found")
	ErrTaskNotFound          = errors.New("task not found")
	ErrProductNotFound       = errors.New("product not found")
	ErrProductAlreadyExists  = errors.New("product with this slug already exists")
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
