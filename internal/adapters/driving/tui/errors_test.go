package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	assert.NotEqual(t, ErrMissingConverterService.Error(), ErrInvalidPorts.Error())
}

func TestErrMissingConverterService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingConverterService.Error(), "converter service")
}

func TestErrInvalidPorts_Message(t *testing.T) {
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
