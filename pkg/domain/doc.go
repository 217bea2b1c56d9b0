// Package domain is a container of all of the domain types and interfaces
// that are used across multiple packages within the application.
//
// This package is also the container for all domain errors. Each error here
// represents a specific condition that needs to be communicated across
// interface boundaries, such as a missing function or an unreadable
// parameter.
//
// Generally speaking, this package contains no executable code. All elements
// are either pure data containers or interface definitions that have no
// corresponding implementations in this package. Domain error types are the
// exception because they must define an Error() method, and so they carry
// their own tests.
package domain
