package scaffold

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/scaffold/pkg/domain"
	"github.com/aws/aws-lambda-go/events"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/go-chi/chi/v5"
)

// BootstrapFn builds the http.Handler served through the gateway.
type BootstrapFn func(ctx context.Context) (http.Handler, error)

type bootstrapSuccess struct {
	Message  string `logevent:"message,default=bootstrap-success"`
	Duration string `logevent:"duration"`
}

type bootstrapFailure struct {
	Message string `logevent:"message,default=bootstrap-failure"`
	Reason  string `logevent:"reason"`
}

// Handler converts API Gateway proxy events into requests for an
// http.Handler. The http.Handler is bootstrapped by the first invocation
// in an execution environment and reused by every invocation after it,
// so the start-up cost is paid once per environment rather than once per
// request.
//
// A failed bootstrap is returned as the invocation error and is not kept.
// The next invocation bootstraps again.
type Handler struct {
	Bootstrap BootstrapFn
	// LogFn and StatFn resolve the invocation logger and stat client.
	// They default to the runhttp context accessors.
	LogFn  domain.LogFn
	StatFn domain.StatFn

	mu      sync.Mutex
	adapter *httpadapter.HandlerAdapter
}

// Invoke handles a single gateway event.
func (h *Handler) Invoke(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	adapter, err := h.server(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	// A route context left by an outer chi mux, as with the local Invoke
	// API, would make the gateway mux route with the outer request's method.
	return adapter.ProxyWithContext(context.WithValue(ctx, chi.RouteCtxKey, nil), event)
}

// Bootstrapped reports whether an http.Handler is cached.
func (h *Handler) Bootstrapped() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.adapter != nil
}

func (h *Handler) server(ctx context.Context) (*httpadapter.HandlerAdapter, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.adapter != nil {
		return h.adapter, nil
	}

	logger := h.logFn()(ctx)
	stat := h.statFn()(ctx)
	start := time.Now()
	next, err := h.Bootstrap(ctx)
	elapsed := time.Since(start)
	if err != nil {
		logger.Error(bootstrapFailure{Reason: err.Error()})
		stat.Count("bootstrap.failure", 1)
		return nil, err
	}
	logger.Info(bootstrapSuccess{Duration: elapsed.String()})
	stat.Timing("bootstrap", elapsed)
	h.adapter = httpadapter.New(next)
	return h.adapter, nil
}

func (h *Handler) logFn() domain.LogFn {
	if h.LogFn == nil {
		return runhttp.LoggerFromContext
	}
	return h.LogFn
}

func (h *Handler) statFn() domain.StatFn {
	if h.StatFn == nil {
		return runhttp.StatFromContext
	}
	return h.StatFn
}

// StaticBootstrap returns a BootstrapFn serving an already built handler.
func StaticBootstrap(h http.Handler) BootstrapFn {
	return func(context.Context) (http.Handler, error) {
		return h, nil
	}
}
