package services

import "github.com/custodia-labs/unitconv/internal/core/domain"

// ConvertTemperature converts between the Celsius, Fahrenheit and Kelvin scales.
//
// Only the six cross-scale formulas are applied. A same-scale pair returns
// value unchanged. Any other pair returns an UnsupportedTemperaturePairError
// when strict is set, and value unchanged otherwise.
func ConvertTemperature(value float64, from, to string, strict bool) (float64, error) {
	switch {
	case from == Celsius && to == Fahrenheit:
		return value*9/5 + 32, nil
	case from == Celsius && to == Kelvin:
		return value + 273.15, nil
	case from == Fahrenheit && to == Celsius:
		return (value - 32) * 5 / 9, nil
	case from == Fahrenheit && to == Kelvin:
		return (value-32)*5/9 + 273.15, nil
	case from == Kelvin && to == Celsius:
		return value - 273.15, nil
	case from == Kelvin && to == Fahrenheit:
		return (value-273.15)*9/5 + 32, nil
	}

	if strict && (from != to || !isTemperatureScale(from)) {
		return 0, &domain.UnsupportedTemperaturePairError{From: from, To: to}
	}
	return value, nil
}

func isTemperatureScale(name string) bool {
	for _, s := range temperatureScales {
		if s == name {
			return true
		}
	}
	return false
}
