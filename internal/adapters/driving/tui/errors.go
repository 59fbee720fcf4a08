package tui

import "errors"

// ErrMissingConverterService is returned when the converter service is not provided.
var ErrMissingConverterService = errors.New("tui: converter service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
