package report

import "math"

// compassLabels are the 16 sectors of the compass rose starting at North,
// each spanning 22.5 degrees.
var compassLabels = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// KnotsToMph converts a wind speed in knots to whole miles per hour.
func KnotsToMph(knots float64) int {
	return int(math.Round(knots * 1.15078))
}

// CompassDirection returns the 16-point compass label nearest to the given
// bearing. The result is invariant under input modulo 360.
func CompassDirection(deg float64) string {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	idx := int(math.Round(d/22.5)) % 16
	return compassLabels[idx]
}

// SwellQuality maps a wave period in seconds to a qualitative label.
// Bands are inclusive on their lower bound, evaluated top-down.
func SwellQuality(periodSec float64) string {
	switch {
	case periodSec >= 12:
		return "long-period groundswell (high quality)"
	case periodSec >= 10:
		return "solid mid-period swell"
	case periodSec >= 7:
		return "short-period swell (decent)"
	default:
		return "wind swell (lower quality)"
	}
}

// WindEffect maps a wind speed in mph to a qualitative label.
func WindEffect(speedMph float64) string {
	switch {
	case speedMph < 5:
		return "light/clean"
	case speedMph < 10:
		return "light"
	case speedMph < 15:
		return "moderate"
	default:
		return "strong"
	}
}
