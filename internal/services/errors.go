package services

import "errors"

var (
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrCustomerAlreadyExists = errors.New("customer already exists")
	ErrCustomerNameRequired  = errors.New("customer name is required")
	ErrInvalidTimestamp      = errors.New("invalid timestamp")

	ErrPhotoNotFound        = errors.New("photo not found")
	ErrNoPhotos             = errors.New("no photos provided")
	ErrUnsupportedPhotoType = errors.New("unsupported photo type")
	ErrPhotoTooLarge        = errors.New("photo exceeds the upload limit")
	ErrStorageUnavailable   = errors.New("photo storage is not configured")

	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTaskStatus = errors.New("invalid task status")
	ErrTaskTitleRequired = errors.New("task title is required")

	ErrProductNotFound      = errors.New("product not found")
	ErrProductAlreadyExists = errors.New("product already exists")
	ErrInvalidProductSlug   = errors.New("invalid product slug")
	ErrInvalidProductPrice  = errors.New("product price cannot be negative")

	// ErrRemoteNotConfigured is returned before any read when no Firebase
	// credentials were provided.
	ErrRemoteNotConfigured = errors.New("remote source is not configured")
	ErrRemoteUnavailable   = errors.New("remote source is unavailable")
	ErrRemoteCircuitOpen   = errors.New("remote source is temporarily disabled")
)
