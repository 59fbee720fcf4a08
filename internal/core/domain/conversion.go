package domain

// ConversionRequest is a single user action: convert Value from one unit to another.
// For CategoryCircleArea, Value is the radius and the units are ignored.
type ConversionRequest struct {
	Category Category `json:"category"`
	Value    float64  `json:"value"`
	From     string   `json:"from,omitempty"`
	To       string   `json:"to,omitempty"`
}

// ConversionResult carries the outcome of a successful conversion.
type ConversionResult struct {
	// Request is the request that produced this result.
	Request ConversionRequest `json:"request"`

	// Value is the converted number (or the area, for circle area).
	Value float64 `json:"result"`

	// Display is the formatted line shown to the user.
	Display string `json:"display"`
}
