package scaffold

import (
	"net/http"

	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/scaffold/pkg/domain"
	"github.com/asecurityteam/scaffold/pkg/greeter"
	v1 "github.com/asecurityteam/scaffold/pkg/handlers/v1"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// invokePath is the route of the local Lambda Invoke API.
const invokePath = "/2015-03-31/functions/{functionName}/invocations"

// RouterConfig is used to alter the behavior of the default router
// and the HTTP endpoint handlers that it manages.
type RouterConfig struct {
	// HealthCheck defines the route on which the service will respond
	// with automatic 200s. This is here to integrate with systems that
	// poll for liveliness. The default value is /healthcheck
	HealthCheck string

	// Greeter is the service behind the root route. The default value
	// serves greeter.DefaultMessage.
	Greeter domain.Greeter

	// LogFn is used to extract the request logger from the request
	// context. The default value is runhttp.LoggerFromContext.
	LogFn domain.LogFn
	// StatFn is used to extract the request stat client from the
	// request context. The default value is runhttp.StatFromContext.
	StatFn domain.StatFn
	// URLParamFn is used to extract URL parameters from the request.
	// The default value is chi.URLParamFromCtx to match the usage of chi
	// as a mux in the default case.
	URLParamFn domain.URLParamFn
}

func applyDefaults(conf *RouterConfig) *RouterConfig {
	if conf.HealthCheck == "" {
		conf.HealthCheck = "/healthcheck"
	}
	if conf.Greeter == nil {
		conf.Greeter = &greeter.Static{}
	}
	if conf.LogFn == nil {
		conf.LogFn = runhttp.LoggerFromContext
	}
	if conf.StatFn == nil {
		conf.StatFn = runhttp.StatFromContext
	}
	if conf.URLParamFn == nil {
		conf.URLParamFn = chi.URLParamFromCtx
	}
	return conf
}

// NewRouter generates the application mux: the health check, the
// greeting controller on the root route, and a JSON 404 for everything
// else. A chi mux is returned so callers can bind additional routes.
func NewRouter(conf *RouterConfig) *chi.Mux {
	conf = applyDefaults(conf)
	router := chi.NewMux()
	router.Use(middleware.Heartbeat(conf.HealthCheck))
	router.NotFound((&v1.NotFound{StatFn: conf.StatFn}).ServeHTTP)

	router.Method(http.MethodGet, "/", &v1.Hello{
		LogFn:   conf.LogFn,
		StatFn:  conf.StatFn,
		Greeter: conf.Greeter,
	})
	return router
}

// BindInvoke adds the local Lambda Invoke API to the router so that the
// functions resolved by fetcher can be executed over HTTP.
func BindInvoke(router chi.Router, conf *RouterConfig, fetcher domain.HandlerFetcher) {
	conf = applyDefaults(conf)
	router.Method(http.MethodPost, invokePath, &v1.Invoke{
		Fetcher:    fetcher,
		LogFn:      conf.LogFn,
		StatFn:     conf.StatFn,
		URLParamFn: conf.URLParamFn,
	})
}
