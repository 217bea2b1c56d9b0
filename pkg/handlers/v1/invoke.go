package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/asecurityteam/scaffold/pkg/domain"
)

const (
	invocationTypeHeader          = "X-Amz-Invocation-Type"
	invocationTypeRequestResponse = "RequestResponse"
	invocationTypeEvent           = "Event"
	invocationTypeDryRun          = "DryRun"
	invocationVersionHeader       = "X-Amz-Executed-Version"
	invocationErrorHeader         = "X-Amz-Function-Error"
	invocationErrorTypeHandled    = "Handled"
	invocationErrorTypeUnhandled  = "Unhandled"
)

// bgContext detaches a request context from the lifetime of the
// http.Handler that produced it. Values, such as the logger and the stat
// client, are still resolved from the request context but cancellation
// and deadlines come from context.Background(). Asynchronous invocations
// run on this context so they survive the 202 response.
type bgContext struct {
	context.Context
	Values context.Context
}

func (c *bgContext) Value(key interface{}) interface{} {
	return c.Values.Value(key)
}

type invocationFailure struct {
	Message  string `logevent:"message,default=invocation-failure"`
	Function string `logevent:"function"`
	Reason   string `logevent:"reason"`
}

type asyncInvocationFailure struct {
	Message  string `logevent:"message,default=async-invocation-failure"`
	Function string `logevent:"function"`
	Reason   string `logevent:"reason"`
}

// Invoke serves the Lambda Invoke API for the functions compiled into
// this binary. https://docs.aws.amazon.com/lambda/latest/dg/API_Invoke.html
//
// Posting an API Gateway proxy event to the gateway function runs it
// through the same cached adapter that serves the deployed function, which
// makes this endpoint the local stand-in for the gateway.
//
// Differences from the hosted API:
//
//   - The Qualifier parameter is ignored and the executed version is
//     always reported as "latest".
//
//   - LogType=Tail does not return log output.
type Invoke struct {
	LogFn      domain.LogFn
	StatFn     domain.StatFn
	URLParamFn domain.URLParamFn
	Fetcher    domain.HandlerFetcher
}

func (h *Invoke) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := h.URLParamFn(ctx, "functionName")
	fn, err := h.Fetcher.FetchHandler(ctx, name)
	if err != nil {
		var notFound domain.NotFoundError
		if errors.As(err, &notFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	invocationType := r.Header.Get(invocationTypeHeader)
	if invocationType == "" {
		invocationType = invocationTypeRequestResponse
	}
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	w.Header().Set(invocationVersionHeader, "latest")
	stat := h.StatFn(ctx)
	switch invocationType {
	case invocationTypeDryRun:
		w.WriteHeader(http.StatusNoContent)
	case invocationTypeEvent:
		bg := &bgContext{Context: context.Background(), Values: ctx}
		logger := h.LogFn(ctx)
		go func() {
			if _, err := fn.Invoke(bg, payload); err != nil {
				logger.Error(asyncInvocationFailure{Function: name, Reason: err.Error()})
			}
		}()
		stat.Count("invoke.event", 1, "function:"+name)
		w.WriteHeader(http.StatusAccepted)
	case invocationTypeRequestResponse:
		out, err := fn.Invoke(ctx, payload)
		status := statusFromError(err)
		stat.Count("invoke.request_response", 1, "function:"+name, fmt.Sprintf("status:%d", status))
		if err != nil {
			h.LogFn(ctx).Error(invocationFailure{Function: name, Reason: err.Error()})
			errorType := invocationErrorTypeHandled
			if status >= http.StatusInternalServerError {
				errorType = invocationErrorTypeUnhandled
			}
			w.Header().Set(invocationErrorHeader, errorType)
			writeError(w, status, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if len(out) > 0 {
			_, _ = w.Write(out)
		}
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(lambdaError{
			Message:    fmt.Sprintf("InvocationType %s not valid", invocationType),
			Type:       "InvalidParameterValueException",
			StackTrace: errResponseStackTrace,
		})
	}
}
