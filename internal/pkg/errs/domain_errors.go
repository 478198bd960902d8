package errs

import "errors"

// Error categories shared by the usecase and handler layers
var (
	// Input rejected before touching the store
	ErrValidation = errors.New("validation error")

	// Requested date or time is not bookable
	ErrConflict = errors.New("availability conflict")

	// Reservation missing or token mismatch
	ErrNotFound = errors.New("not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
