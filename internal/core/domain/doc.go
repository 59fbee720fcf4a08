// Package domain defines the core business entities for unitconv.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Category: A conversion category offered to the user
//   - ConversionRequest: A single value to convert between two units
//   - ConversionResult: The converted value and its display line
//   - AppSettings: User-tunable display and conversion settings
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
