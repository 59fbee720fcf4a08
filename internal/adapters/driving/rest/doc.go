// Package rest provides the JSON HTTP API for unitconv.
// It implements a driving adapter following hexagonal architecture principles.
//
// Every response uses the envelope {"code", "text", "data"}.
package rest
