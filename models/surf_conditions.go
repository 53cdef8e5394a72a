package models

import (
	"math"
	"strings"
)

// Tide states accepted on input. Matching is case-insensitive; the
// canonical form is stored back on the record.
var TIDE_STATES = []string{"Rising", "Falling", "High", "Low"}

// SurfConditions is the inbound description of wave, wind, tide and
// weather state for a spot. All numeric fields must be present and finite.
type SurfConditions struct {
	Location          string  `json:"location"`
	WaveHeightFt      float64 `json:"wave_height_ft"`
	WavePeriodSec     float64 `json:"wave_period_sec"`
	SwellDirectionDeg float64 `json:"swell_direction_deg"`
	WindSpeedKts      float64 `json:"wind_speed_kts"`
	WindDirectionDeg  float64 `json:"wind_direction_deg"`
	TideState         string  `json:"tide_state"`
	TideHeightFt      float64 `json:"tide_height_ft"`
	AirTemperatureF   float64 `json:"air_temperature_f"`
	WaterTemperatureF float64 `json:"water_temperature_f"`
	Weather           string  `json:"weather"`
	Score             int     `json:"score"`
}

// Validate checks the record against the input constraints and normalizes
// degree fields into [0,360) and the tide state to its canonical form.
// Returns an *InputError on the first violation found.
func (c *SurfConditions) Validate() error {
	if strings.TrimSpace(c.Location) == "" {
		return NewInputError("location", "must not be empty")
	}

	numeric := []struct {
		name  string
		value float64
	}{
		{"wave_height_ft", c.WaveHeightFt},
		{"wave_period_sec", c.WavePeriodSec},
		{"swell_direction_deg", c.SwellDirectionDeg},
		{"wind_speed_kts", c.WindSpeedKts},
		{"wind_direction_deg", c.WindDirectionDeg},
		{"tide_height_ft", c.TideHeightFt},
		{"air_temperature_f", c.AirTemperatureF},
		{"water_temperature_f", c.WaterTemperatureF},
	}
	for _, f := range numeric {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return NewInputError(f.name, "must be a finite number")
		}
	}

	if c.WaveHeightFt < 0 {
		return NewInputError("wave_height_ft", "must be >= 0")
	}
	if c.WavePeriodSec < 0 {
		return NewInputError("wave_period_sec", "must be >= 0")
	}
	if c.WindSpeedKts < 0 {
		return NewInputError("wind_speed_kts", "must be >= 0")
	}
	if c.Score < 0 || c.Score > 100 {
		return NewInputError("score", "must be between 0 and 100")
	}

	state, ok := canonicalTideState(c.TideState)
	if !ok {
		return NewInputError("tide_state", "must be one of: "+strings.Join(TIDE_STATES, ", "))
	}
	c.TideState = state

	c.SwellDirectionDeg = NormalizeDegrees(c.SwellDirectionDeg)
	c.WindDirectionDeg = NormalizeDegrees(c.WindDirectionDeg)

	return nil
}

// NormalizeDegrees maps any finite angle into [0,360).
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func canonicalTideState(state string) (string, bool) {
	for _, s := range TIDE_STATES {
		if strings.EqualFold(strings.TrimSpace(state), s) {
			return s, true
		}
	}
	return "", false
}
