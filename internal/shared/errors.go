package shared

import "fmt"

var (
	// Validation errors
	ErrInvalidUser = fmt.Errorf("invalid user")

	// Persistence errors
	ErrPersistence      = fmt.Errorf("persistence failure")
	ErrUnknownBackend   = fmt.Errorf("unknown storage backend")
	ErrStoreUnavailable = fmt.Errorf("store not initialized")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
