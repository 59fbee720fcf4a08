// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The conversion engine itself is a set of pure functions over
// read-only tables built at package initialisation; they are safe
// for concurrent use without locking.
//
// Services are pure Go with no CGO or external dependencies.
package services
