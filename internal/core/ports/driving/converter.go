package driving

import (
	"context"

	"github.com/custodia-labs/unitconv/internal/core/domain"
)

// ConverterService performs conversions for every category.
type ConverterService interface {
	// Convert runs a single conversion request.
	// Failures are typed domain errors (UnknownUnitError, RateUnavailableError,
	// UnsupportedTemperaturePairError) or domain.ErrUnknownCategory.
	Convert(ctx context.Context, req domain.ConversionRequest) (*domain.ConversionResult, error)

	// Categories returns the available categories in menu order.
	Categories() []domain.Category

	// Units returns the selectable units of a category in display order.
	// Circle area has no units and returns an empty list.
	Units(category domain.Category) ([]string, error)

	// Catalog describes every category with its units, in menu order.
	Catalog() []domain.CategoryInfo
}
