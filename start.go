package scaffold

import (
	"context"
	"fmt"
	"strings"

	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/scaffold/pkg/domain"
	"github.com/asecurityteam/scaffold/pkg/handlerfetcher"
	"github.com/asecurityteam/settings/v2"
	"github.com/aws/aws-lambda-go/lambda"
)

const (
	// BuildModeHTTP is the standard mode of running an HTTP server that
	// serves the application routes and the local Invoke API.
	BuildModeHTTP = "http"
	// BuildModeLambda hands the gateway adapter to the official lambda
	// runtime. This is the mode the container image is built with.
	BuildModeLambda = "lambda"

	// GatewayFunction is the name of the gateway function in the
	// deployment descriptor and in the local Invoke API.
	GatewayFunction = "app"
)

var (
	// BuildMode determines the behavior of the Start method. The suggested
	// way to set it is through build variables by adding
	// `-ldflags "-X github.com/asecurityteam/scaffold.BuildMode=<value>"`
	// to `go build` or `go run` commands. It may also be assigned in code
	// before calling Start.
	//
	// Alternatively, StartMode may be used to pass the mode explicitly.
	BuildMode = BuildModeHTTP

	// LambdaStartFn is the entrypoint of the lambda runtime. It is only
	// replaced in tests.
	LambdaStartFn = lambda.StartHandler
)

// prefixed scopes a settings source to this application's variables.
func prefixed(s settings.Source) settings.Source {
	return &settings.PrefixSource{Source: s, Prefix: []string{"scaffold"}}
}

// Start runs the application in the mode selected by BuildMode.
func Start(ctx context.Context, s settings.Source) error {
	return StartMode(ctx, s, BuildMode)
}

// StartMode works just like Start but allows for explicit passing of the
// build mode.
func StartMode(ctx context.Context, s settings.Source, mode string) error {
	switch {
	case strings.EqualFold(mode, BuildModeHTTP):
		return StartHTTP(ctx, s)
	case strings.EqualFold(mode, BuildModeLambda):
		return StartLambda(ctx, s)
	default:
		return fmt.Errorf("unknown build mode %s", mode)
	}
}

// NewHTTPApp builds the App served in http mode. The gateway function is
// registered with the local Invoke API so that API Gateway proxy events
// can be replayed against the same adapter that runs in Lambda.
func NewHTTPApp(ctx context.Context, s settings.Source) (*App, error) {
	app := new(App)
	if err := settings.NewComponent(ctx, prefixed(s), NewAppComponent(), app); err != nil {
		return nil, err
	}
	gateway := &Handler{Bootstrap: StaticBootstrap(app.Router)}
	fetcher := &handlerfetcher.Static{
		Handlers: map[string]domain.Handler{
			GatewayFunction: lambda.NewHandler(gateway.Invoke),
		},
	}
	BindInvoke(app.Router, &RouterConfig{}, fetcher)
	return app, nil
}

// NewHTTPRuntime builds the runhttp runtime serving the application.
func NewHTTPRuntime(ctx context.Context, s settings.Source) (*runhttp.Runtime, error) {
	app, err := NewHTTPApp(ctx, s)
	if err != nil {
		return nil, err
	}
	rt := new(runhttp.Runtime)
	err = settings.NewComponent(ctx, prefixed(s), runhttp.NewComponent().WithHandler(app.Router), rt)
	return rt, err
}

// StartHTTP runs the HTTP API.
func StartHTTP(ctx context.Context, s settings.Source) error {
	rt, err := NewHTTPRuntime(ctx, s)
	if err != nil {
		return err
	}
	return rt.Run()
}

// NewLambdaRuntime builds the lambda mode runtime from settings.
func NewLambdaRuntime(ctx context.Context, s settings.Source) (*LambdaRuntime, error) {
	rt := new(LambdaRuntime)
	err := settings.NewComponent(ctx, prefixed(s), NewLambdaComponent(s), rt)
	return rt, err
}

// StartLambda runs the gateway function under the official lambda runtime.
func StartLambda(ctx context.Context, s settings.Source) error {
	rt, err := NewLambdaRuntime(ctx, s)
	if err != nil {
		return err
	}
	return rt.Run()
}
