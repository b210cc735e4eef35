package geometry

import (
	"math"
)

// validateCoords rejects NaN and infinite coordinates.
func validateCoords(kind Kind, coords []Coord) error {
	for i, c := range coords {
		if !isFinite(c.X) || !isFinite(c.Y) {
			return newError(KindMalformedGeometry, "%v coordinate %d is not finite: (%v, %v)", kind, i, c.X, c.Y)
		}
	}
	return nil
}

// ValidatePrecision checks a linearization precision.
func ValidatePrecision(precision float64) error {
	if !isFinite(precision) || precision <= 0 {
		return newError(KindInvalidPrecision, "precision must be a finite number > 0, got %v", precision)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
