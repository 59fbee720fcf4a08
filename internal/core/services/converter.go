package services

import (
	"context"
	"fmt"
	"math"

	"github.com/custodia-labs/unitconv/internal/core/domain"
	"github.com/custodia-labs/unitconv/internal/core/ports/driving"
	"github.com/custodia-labs/unitconv/internal/logger"
)

// Ensure ConverterService implements the interface.
var _ driving.ConverterService = (*ConverterService)(nil)

// ConverterService dispatches conversion requests to the per-category engines.
type ConverterService struct {
	settings driving.SettingsService
}

// NewConverterService creates a new converter service.
// Settings may be nil, in which case defaults are used.
func NewConverterService(settings driving.SettingsService) *ConverterService {
	return &ConverterService{settings: settings}
}

// Convert runs a single conversion request.
func (s *ConverterService) Convert(
	ctx context.Context,
	req domain.ConversionRequest,
) (*domain.ConversionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := s.currentSettings()
	logger.Debug("convert %s: %v %q -> %q", req.Category, req.Value, req.From, req.To)

	value, err := s.dispatch(req, cfg.Conversion.StrictTemperature)
	if err != nil {
		logger.Debug("convert %s failed: %v", req.Category, err)
		return nil, err
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		logger.Debug("convert %s overflowed: %v", req.Category, value)
		return nil, fmt.Errorf("%w: %s of %g does not fit in a float64", domain.ErrResultOutOfRange, req.Category, req.Value)
	}

	result := &domain.ConversionResult{
		Request: req,
		Value:   value,
		Display: FormatResult(req, value, cfg.Display.Precision),
	}
	logger.Debug("convert %s result: %s", req.Category, result.Display)
	return result, nil
}

func (s *ConverterService) dispatch(req domain.ConversionRequest, strictTemperature bool) (float64, error) {
	switch req.Category {
	case domain.CategoryLength:
		return ConvertLength(req.Value, req.From, req.To)
	case domain.CategoryWeight:
		return ConvertWeight(req.Value, req.From, req.To)
	case domain.CategoryVolume:
		return ConvertVolume(req.Value, req.From, req.To)
	case domain.CategoryHeight:
		return ConvertHeight(req.Value, req.From, req.To)
	case domain.CategoryTemperature:
		return ConvertTemperature(req.Value, req.From, req.To, strictTemperature)
	case domain.CategoryCurrency:
		return ConvertCurrency(req.Value, req.From, req.To)
	case domain.CategoryCircleArea:
		return CircleArea(req.Value), nil
	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, req.Category)
	}
}

// Categories returns the available categories in menu order.
func (s *ConverterService) Categories() []domain.Category {
	return domain.AllCategories()
}

// Units returns the selectable units of a category in display order.
func (s *ConverterService) Units(category domain.Category) ([]string, error) {
	switch category {
	case domain.CategoryLength:
		return lengthTable.Units(), nil
	case domain.CategoryWeight:
		return weightTable.Units(), nil
	case domain.CategoryVolume:
		return volumeTable.Units(), nil
	case domain.CategoryHeight:
		return heightTable.Units(), nil
	case domain.CategoryTemperature:
		return cloneStrings(temperatureScales), nil
	case domain.CategoryCurrency:
		return cloneStrings(currencyCodes), nil
	case domain.CategoryCircleArea:
		return []string{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}
}

// Catalog describes every category with its units, in menu order.
func (s *ConverterService) Catalog() []domain.CategoryInfo {
	categories := s.Categories()
	infos := make([]domain.CategoryInfo, 0, len(categories))
	for _, c := range categories {
		// Every listed category is known, so Units cannot fail here.
		units, _ := s.Units(c)
		infos = append(infos, domain.CategoryInfo{
			ID:          c,
			Label:       c.Label(),
			Description: c.Description(),
			ValueLabel:  c.ValueLabel(),
			Units:       units,
		})
	}
	return infos
}

// currentSettings falls back to defaults when no settings service is wired
// or the stored settings cannot be read.
func (s *ConverterService) currentSettings() domain.AppSettings {
	if s.settings == nil {
		return domain.DefaultAppSettings()
	}
	cfg, err := s.settings.Get()
	if err != nil || cfg == nil {
		logger.Warn("using default settings: %v", err)
		return domain.DefaultAppSettings()
	}
	return *cfg
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
