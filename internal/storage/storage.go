// Package storage persists uploaded customer images on local disk or in a
// Google Cloud Storage bucket.
package storage

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidObjectName = errors.New("invalid object name")

var contentTypeExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// IsAllowedContentType reports whether uploads of this MIME type are accepted.
func IsAllowedContentType(contentType string) bool {
	_, ok := contentTypeExtensions[strings.ToLower(contentType)]
	return ok
}

// NewObjectName returns a unique object name under customers/<id>/ with an
// extension derived from the content type.
func NewObjectName(customerID uuid.UUID, contentType string) string {
	ext := contentTypeExtensions[strings.ToLower(contentType)]
	return fmt.Sprintf("customers/%s/%s%s", customerID, uuid.NewString(), ext)
}

// cleanObjectName rejects absolute names and parent traversal.
func cleanObjectName(name string) (string, error) {
	if name == "" || strings.HasPrefix(name, "/") || strings.Contains(name, "\\") {
		return "", ErrInvalidObjectName
	}
	cleaned := path.Clean(name)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidObjectName
	}
	return cleaned, nil
}
