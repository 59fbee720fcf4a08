package mcp

import (
	"context"
	"testing"

	"github.com/custodia-labs/unitconv/internal/core/domain"
	"github.com/custodia-labs/unitconv/internal/core/services"
)

// newConverter returns the real converter with default settings.
func newConverter() *services.ConverterService {
	return services.NewConverterService(nil)
}

// failingConverter fails every conversion with err.
type failingConverter struct {
	*services.ConverterService
	err error
}

func (m *failingConverter) Convert(
	_ context.Context,
	_ domain.ConversionRequest,
) (*domain.ConversionResult, error) {
	return nil, m.err
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(&Ports{Converter: newConverter()})
	if err != nil {
		t.Fatalf("creating server: %v", err)
	}
	return s
}
