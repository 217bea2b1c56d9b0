// Package handlerfetcher contains implementations of the domain.HandlerFetcher
// interface. Each implementation represents a different way of resolving the
// lambda functions exposed through the local Invoke API.
package handlerfetcher
