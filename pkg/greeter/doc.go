// Package greeter contains implementations of the domain.Greeter service.
package greeter
