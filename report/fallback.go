package report

import (
	"fmt"
	"strings"

	"surf-server/config"
	"surf-server/models"
)

// Score buckets for the fallback closing sentence.
const (
	scoreGoodMin = 70
	scoreFairMin = 50
)

// Board categories used in fallback recommendations.
const (
	BOARD_LONGBOARD  = "longboard"
	BOARD_FUNBOARD   = "shortboard or funboard"
	BOARD_SHORTBOARD = "shortboard"
)

// FallbackSynthesizer builds a deterministic two-paragraph report from the
// numeric conditions whenever the generative path fails or its output is
// rejected. Every branch is total over the input ranges; this path never
// fails.
type FallbackSynthesizer struct {
	thresholds config.BoardSizeThresholds
}

func NewFallbackSynthesizer(cfg config.PipelineConfig) *FallbackSynthesizer {
	return &FallbackSynthesizer{thresholds: cfg.BoardSizeThresholds}
}

// Synthesize produces the fallback report for the given conditions.
func (fs *FallbackSynthesizer) Synthesize(c *models.SurfConditions) *models.GeneratedReport {
	board := fs.BoardCategory(c.WaveHeightFt)

	var p1 strings.Builder
	fmt.Fprintf(&p1, "%s is showing %.1f ft waves at %.1f seconds today, a %s rolling in from the %s. ",
		c.Location, c.WaveHeightFt, c.WavePeriodSec,
		SwellQuality(c.WavePeriodSec), CompassDirection(c.SwellDirectionDeg))
	windMph := KnotsToMph(c.WindSpeedKts)
	fmt.Fprintf(&p1, "Wind is %d mph out of the %s, which means %s conditions on the face. ",
		windMph, CompassDirection(c.WindDirectionDeg), WindEffect(float64(windMph)))
	fmt.Fprintf(&p1, "The tide is %s at %.1f ft, so plan your session around it.",
		strings.ToLower(c.TideState), c.TideHeightFt)

	var p2 strings.Builder
	fmt.Fprintf(&p2, "Best call on equipment is a %s for these conditions. ", board)
	if c.WaterTemperatureF < 65 {
		fmt.Fprintf(&p2, "Water is sitting at %.0f F, so you'll want a full wetsuit out there. ", c.WaterTemperatureF)
	} else {
		fmt.Fprintf(&p2, "Water is a comfortable %.0f F, so boardshorts or a spring suit will do. ", c.WaterTemperatureF)
	}
	p2.WriteString(closingSentence(c.Score))

	return &models.GeneratedReport{
		ReportText:          p1.String() + "\n\n" + p2.String(),
		BoardRecommendation: board,
		SkillLevel:          skillForWaveHeight(c.WaveHeightFt, fs.thresholds),
	}
}

// BoardCategory maps wave height to a generic board recommendation using
// the configured thresholds.
func (fs *FallbackSynthesizer) BoardCategory(waveHeightFt float64) string {
	switch {
	case waveHeightFt < fs.thresholds.LongboardMaxFt:
		return BOARD_LONGBOARD
	case waveHeightFt < fs.thresholds.FunboardMaxFt:
		return BOARD_FUNBOARD
	default:
		return BOARD_SHORTBOARD
	}
}

func skillForWaveHeight(waveHeightFt float64, t config.BoardSizeThresholds) string {
	switch {
	case waveHeightFt < t.LongboardMaxFt:
		return models.SKILL_BEGINNER
	case waveHeightFt < t.FunboardMaxFt:
		return models.SKILL_INTERMEDIATE
	default:
		return models.SKILL_ADVANCED
	}
}

func closingSentence(score int) string {
	switch {
	case score >= scoreGoodMin:
		return "Conditions are looking good overall, so get out there and enjoy it!"
	case score >= scoreFairMin:
		return "Conditions are fair, worth a paddle if you're nearby."
	default:
		return "Conditions are poor today, might be one to sit out."
	}
}
