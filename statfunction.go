package scaffold

import (
	"context"

	"github.com/asecurityteam/scaffold/pkg/domain"
	"github.com/rs/xstats"
)

type flushFailure struct {
	Message string `logevent:"message,default=stats-flush-failure"`
	Reason  string `logevent:"reason"`
}

// Flusher publishes buffered stats.
type Flusher interface {
	Flush(ctx context.Context) error
}

// statFunction injects the stat client into the invocation context and,
// when the client buffers, publishes everything recorded before the
// invocation returns. The execution environment may be frozen as soon as
// Invoke returns so nothing can be left in the buffer.
type statFunction struct {
	domain.Handler
	Stat    domain.Stat
	Flusher Flusher
	LogFn   domain.LogFn
}

func (f *statFunction) Invoke(ctx context.Context, b []byte) ([]byte, error) {
	ctx = xstats.NewContext(ctx, f.Stat)
	out, err := f.Handler.Invoke(ctx, b)
	if f.Flusher != nil {
		if errFlush := f.Flusher.Flush(ctx); errFlush != nil {
			f.LogFn(ctx).Warn(flushFailure{Reason: errFlush.Error()})
		}
	}
	return out, err
}
