package scaffold

import (
	"context"

	"github.com/asecurityteam/logevent/v2"
	"github.com/asecurityteam/scaffold/pkg/domain"
	"github.com/aws/aws-lambda-go/lambdacontext"
)

// loggingFunction injects a per-invocation copy of the logger into the
// invocation context. Outside of runhttp nothing else places a logger
// there, so this is what makes LogFn work in lambda mode. The Lambda
// request ID is attached to every event logged during the invocation.
type loggingFunction struct {
	domain.Handler
	Logger domain.Logger
}

func (f *loggingFunction) Invoke(ctx context.Context, b []byte) ([]byte, error) {
	logger := f.Logger.Copy()
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logger.SetField("aws_request_id", lc.AwsRequestID)
	}
	ctx = logevent.NewContext(ctx, logger)
	return f.Handler.Invoke(ctx, b)
}
