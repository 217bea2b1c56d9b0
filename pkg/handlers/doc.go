// Package handlers is a container for HTTP handlers. Note that this is not a
// container for lambda.Handler related elements. The gateway adapter lives in
// the root package; this is where the http.Handler instances served by the
// application router are defined.
package handlers
