package domain

import (
	"context"
)

// HandlerFetcher resolves the lambda functions that the local
// Invoke API is allowed to execute.
type HandlerFetcher interface {
	// FetchHandler returns the Handler registered under the given name.
	// If no Handler matches then this component must emit a NotFoundError.
	FetchHandler(ctx context.Context, name string) (Handler, error)
}
