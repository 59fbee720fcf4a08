package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/unitconv/internal/core/domain"
)

// FormatNumber renders v with the given number of decimals.
// domain.ShortestPrecision prints the shortest exact representation.
func FormatNumber(v float64, precision int) string {
	if !domain.ValidPrecision(precision) {
		precision = domain.ShortestPrecision
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// FormatResult builds the display line for a conversion outcome.
func FormatResult(req domain.ConversionRequest, result float64, precision int) string {
	value := FormatNumber(req.Value, precision)
	converted := FormatNumber(result, precision)

	switch req.Category {
	case domain.CategoryCircleArea:
		return fmt.Sprintf("Area of circle with radius %s is %s square units", value, converted)
	case domain.CategoryTemperature:
		return fmt.Sprintf("%s° %s = %s° %s", value, req.From, converted, req.To)
	default:
		return fmt.Sprintf("%s %s = %s %s", value, req.From, converted, req.To)
	}
}
