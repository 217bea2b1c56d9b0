package domain

import (
	"context"
)

// URLParamFn extracts a named URL parameter for the request bound to the
// context. HTTP handlers accept this instead of importing the mux directly
// so that the router can be swapped without touching the handlers.
type URLParamFn func(ctx context.Context, name string) string
