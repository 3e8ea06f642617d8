package sharedstreets

import (
	"math"
	"strconv"
)

// Number of decimal places kept for every coordinate in a canonical message
const coordinatePrecision = 6

// formatDecimal renders value as a fixed-point decimal string with exactly
// decimalPlaces fractional digits, rounding half away from zero at the last
// retained digit. The string (not the binary float) is the hash input, so the
// host float printer is never used: two platforms disagreeing at the 6th
// decimal would mint different identifiers for the same geometry.
func formatDecimal(value float64, decimalPlaces int) string {
	if decimalPlaces <= 0 {
		return strconv.FormatInt(int64(math.Round(value)), 10)
	}
	scale := math.Pow(10, float64(decimalPlaces))
	scaled := math.Round(value * scale)
	negative := scaled < 0
	if negative {
		scaled = -scaled
	}
	whole := int64(scaled) / int64(scale)
	frac := int64(scaled) % int64(scale)

	fracStr := strconv.FormatInt(frac, 10)
	for len(fracStr) < decimalPlaces {
		fracStr = "0" + fracStr
	}
	out := strconv.FormatInt(whole, 10) + "." + fracStr
	if negative {
		out = "-" + out
	}
	return out
}

// formatCoordinate is formatDecimal at the canonical coordinate precision
func formatCoordinate(value float64) string {
	return formatDecimal(value, coordinatePrecision)
}
