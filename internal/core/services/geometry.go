package services

import "math"

// CircleArea returns the area of a circle of the given radius.
// A negative radius yields the same area as its absolute value.
func CircleArea(radius float64) float64 {
	return math.Pi * radius * radius
}
