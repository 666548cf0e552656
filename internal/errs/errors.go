package errs

import "errors"

// Common sentinel errors for cross-layer signaling.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalid         = errors.New("invalid")
	ErrNotFound        = errors.New("not_found")
	ErrForbidden       = errors.New("forbidden")
	// ErrUnavailable indicates the underlying store could not be reached
	// or rejected the write.
	ErrUnavailable = errors.New("store_unavailable")
)
