package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Unit errors
	ErrUnitNotFound    = errors.New("unit not found")
	ErrUnitUnavailable = errors.New("unit is under maintenance")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationConflict = errors.New("reservation conflict")
	ErrReservationCanceled = errors.New("reservation is already cancelled")
	ErrInvalidStay         = errors.New("invalid stay")

	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)
