package handlerfetcher

import (
	"context"
	"sort"

	"github.com/asecurityteam/scaffold/pkg/domain"
)

// Static maps function names, as declared in the deployment descriptor, to
// the Handlers compiled into this binary. The local Invoke API resolves
// function names through it so that a developer can replay gateway events
// against the same adapter that runs in the Lambda environment.
//
// There is no live reloading. Adding or renaming a function requires a new
// build, exactly as it does for the deployed image.
type Static struct {
	// Handlers keyed by function name.
	Handlers map[string]domain.Handler
}

// FetchHandler resolves the name using the internal mapping.
func (f *Static) FetchHandler(ctx context.Context, name string) (domain.Handler, error) {
	h, ok := f.Handlers[name]
	if !ok {
		return nil, domain.NotFoundError{ID: name}
	}
	return h, nil
}

// Names lists the registered function names in lexical order.
func (f *Static) Names() []string {
	names := make([]string, 0, len(f.Handlers))
	for name := range f.Handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
