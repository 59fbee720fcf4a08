package services

// ConvertLength converts a distance between two length units.
func ConvertLength(value float64, from, to string) (float64, error) {
	return lengthTable.convert(value, from, to)
}

// ConvertWeight converts a mass between two weight units.
func ConvertWeight(value float64, from, to string) (float64, error) {
	return weightTable.convert(value, from, to)
}

// ConvertVolume converts a capacity between two volume units.
func ConvertVolume(value float64, from, to string) (float64, error) {
	return volumeTable.convert(value, from, to)
}

// ConvertHeight converts a height between two height units.
func ConvertHeight(value float64, from, to string) (float64, error) {
	return heightTable.convert(value, from, to)
}

// convert returns value * (factor[to] / factor[from]).
// Equal units share a factor, so the ratio is exactly 1 and value is returned unchanged.
func (t unitTable) convert(value float64, from, to string) (float64, error) {
	fromFactor, err := t.factor(from)
	if err != nil {
		return 0, err
	}
	toFactor, err := t.factor(to)
	if err != nil {
		return 0, err
	}
	return value * (toFactor / fromFactor), nil
}
