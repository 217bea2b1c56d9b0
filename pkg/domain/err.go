package domain

import "fmt"

// NotFoundError represents a failed lookup for a resource. It is used
// both for unknown lambda functions and for unrouted request paths.
type NotFoundError struct {
	// ID is the key used when looking for the resource.
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("resource (%s) not found", e.ID)
}

// ParameterError is emitted when a remotely stored configuration
// value cannot be resolved.
type ParameterError struct {
	// Name of the parameter that was requested.
	Name string
	// Reason is the underlying failure.
	Reason error
}

func (e ParameterError) Error() string {
	return fmt.Sprintf("parameter (%s) unavailable: %v", e.Name, e.Reason)
}

func (e ParameterError) Unwrap() error {
	return e.Reason
}
