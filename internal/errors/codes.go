package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
)

// Customer error codes (CUSTOMER_*)
const (
	CustomerNotFound      ErrorCode = "CUSTOMER_001"
	CustomerAlreadyExists ErrorCode = "CUSTOMER_002"
	CustomerInvalidID     ErrorCode = "CUSTOMER_003"
)

// Photo error codes (PHOTO_*)
const (
	PhotoNotFound           ErrorCode = "PHOTO_001"
	PhotoInvalidID          ErrorCode = "PHOTO_002"
	PhotoUnsupportedType    ErrorCode = "PHOTO_003"
	PhotoTooLarge           ErrorCode = "PHOTO_004"
	PhotoNoFiles            ErrorCode = "PHOTO_005"
	PhotoStorageUnavailable ErrorCode = "PHOTO_006"
)

// Task error codes (TASK_*)
const (
	TaskNotFound      ErrorCode = "TASK_001"
	TaskInvalidID     ErrorCode = "TASK_002"
	TaskInvalidStatus ErrorCode = "TASK_003"
)

// Product error codes (PRODUCT_*)
const (
	ProductNotFound      ErrorCode = "PRODUCT_001"
	ProductAlreadyExists ErrorCode = "PRODUCT_002"
	ProductInvalidSlug   ErrorCode = "PRODUCT_003"
	ProductInvalidPrice  ErrorCode = "PRODUCT_004"
)

// Sync error codes (SYNC_*)
const (
	SyncNotConfigured ErrorCode = "SYNC_001"
	SyncUnavailable   ErrorCode = "SYNC_002"
	SyncCircuitOpen   ErrorCode = "SYNC_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemPayloadTooLarge    ErrorCode = "SYSTEM_007"
	SystemRouteNotFound      ErrorCode = "SYSTEM_008"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidEmail:  "Invalid email address format",
	ValidationInvalidDate:   "Invalid date format or range",

	CustomerNotFound:      "Customer not found",
	CustomerAlreadyExists: "A customer with this Firebase UID or email already exists",
	CustomerInvalidID:     "Invalid customer ID format",

	PhotoNotFound:           "Photo not found",
	PhotoInvalidID:          "Invalid photo ID format",
	PhotoUnsupportedType:    "Unsupported image type",
	PhotoTooLarge:           "Image exceeds the maximum upload size",
	PhotoNoFiles:            "No files were uploaded",
	PhotoStorageUnavailable: "Image storage is not available",

	TaskNotFound:      "Task not found",
	TaskInvalidID:     "Invalid task ID format",
	TaskInvalidStatus: "Task status must be open or done",

	ProductNotFound:      "Product not found",
	ProductAlreadyExists: "A product with this slug already exists",
	ProductInvalidSlug:   "Product slug may contain lowercase letters, digits, dashes and underscores",
	ProductInvalidPrice:  "Product price cannot be negative",

	SyncNotConfigured: "Firebase Admin is not configured",
	SyncUnavailable:   "Firebase could not be reached",
	SyncCircuitOpen:   "Firebase sync is temporarily disabled after repeated failures",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemPayloadTooLarge:    "Request body is too large",
	SystemRouteNotFound:      "Route not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
