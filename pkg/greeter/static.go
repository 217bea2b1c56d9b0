package greeter

import (
	"context"
)

// DefaultMessage is served when no other greeting is configured.
const DefaultMessage = "Hello World!"

// Static always returns the same message.
type Static struct {
	Message string
}

// Greeting returns the configured message, or DefaultMessage when unset.
func (g *Static) Greeting(context.Context) (string, error) {
	if g.Message == "" {
		return DefaultMessage, nil
	}
	return g.Message, nil
}
