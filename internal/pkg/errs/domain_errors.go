package errs

import "errors"

// Domain-specific sentinel errors for the inventory usecase layers
var (
	// Inventory record errors
	ErrInventoryNotFound      = errors.New("inventory record not found")
	ErrInventoryAlreadyExists = errors.New("inventory record already exists for product")

	// Idempotency errors
	ErrDuplicateRequest = errors.New("duplicate request")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
