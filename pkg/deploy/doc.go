// Package deploy models the deployment artifacts of the application, the
// Serverless Framework descriptor and the container build file, and checks
// that they agree with each other and with the binary's build modes.
//
// The checks cover what a deployment would otherwise only discover at
// runtime: a function whose image is never built, a route set that leaves
// some paths unreachable through the gateway, and an image entrypoint that
// does not start the lambda build of the binary.
package deploy
