package domain

import (
	"context"
)

// Greeter is the application service behind the root route.
type Greeter interface {
	// Greeting returns the message served to callers. Implementations
	// that depend on remote configuration may fail and must not cache
	// a failed lookup.
	Greeting(ctx context.Context) (string, error)
}
