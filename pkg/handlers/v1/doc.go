// Package v1 contains the http.Handlers of the version 1.X.X application API:
// the greeting controller, the unrouted-path handler, and the local Lambda
// Invoke API used to replay gateway events. The version tracks changes to
// this application's HTTP surface and is unrelated to the version of the
// AWS Lambda APIs it imitates.
package v1
