package report

import (
	"fmt"
	"strings"

	"surf-server/config"
	"surf-server/models"
)

// PromptBuilder assembles the natural-language instruction block sent to
// the generation API. It is pure string templating over the conditions
// record and the converter labels; the detail level picks between the full
// template and the shorter one used for the secondary attempt.
type PromptBuilder struct {
	detailLevel string
}

func NewPromptBuilder(cfg config.PipelineConfig) *PromptBuilder {
	return &PromptBuilder{detailLevel: cfg.PromptDetailLevel}
}

// BuildPrompt renders the primary prompt for the given conditions.
func (pb *PromptBuilder) BuildPrompt(c *models.SurfConditions) string {
	if pb.detailLevel == "brief" {
		return pb.BuildSimplifiedPrompt(c)
	}

	windMph := KnotsToMph(c.WindSpeedKts)

	var b strings.Builder
	fmt.Fprintf(&b, "You are a local expert surf forecaster for %s. Write a surf report based on today's conditions.\n\n", c.Location)
	b.WriteString("Current conditions:\n")
	fmt.Fprintf(&b, "- Wave height: %.1f ft\n", c.WaveHeightFt)
	fmt.Fprintf(&b, "- Wave period: %.1f seconds (%s)\n", c.WavePeriodSec, SwellQuality(c.WavePeriodSec))
	fmt.Fprintf(&b, "- Swell direction: %.0f degrees (%s)\n", c.SwellDirectionDeg, CompassDirection(c.SwellDirectionDeg))
	fmt.Fprintf(&b, "- Wind: %d mph from the %s (%s)\n", windMph, CompassDirection(c.WindDirectionDeg), WindEffect(float64(windMph)))
	fmt.Fprintf(&b, "- Tide: %s, %.1f ft\n", c.TideState, c.TideHeightFt)
	fmt.Fprintf(&b, "- Air temperature: %.0f F, water temperature: %.0f F\n", c.AirTemperatureF, c.WaterTemperatureF)
	fmt.Fprintf(&b, "- Weather: %s\n", c.Weather)
	fmt.Fprintf(&b, "- Overall surfability score: %d/100\n\n", c.Score)
	b.WriteString("Write 2-3 paragraphs. The first paragraph should describe the waves, wind and tide and how they interact today. ")
	b.WriteString("The second paragraph should give practical advice: what board category to ride, who should paddle out, and when. ")
	b.WriteString("Keep the tone knowledgeable but casual, like a surfer talking to surfers. ")
	b.WriteString("Always express wind speed in mph, never in knots. ")
	b.WriteString("Keep board guidance generic (longboard, funboard, shortboard) and never recommend a specific board length or volume.")
	return b.String()
}

// BuildSimplifiedPrompt renders the shorter prompt used for the secondary
// attempt after the primary generation fails or is rejected.
func (pb *PromptBuilder) BuildSimplifiedPrompt(c *models.SurfConditions) string {
	windMph := KnotsToMph(c.WindSpeedKts)

	var b strings.Builder
	fmt.Fprintf(&b, "Write a short surf report for %s. ", c.Location)
	fmt.Fprintf(&b, "Waves %.1f ft at %.1f seconds, wind %d mph from the %s, tide %s at %.1f ft, water %.0f F, score %d/100. ",
		c.WaveHeightFt, c.WavePeriodSec, windMph, CompassDirection(c.WindDirectionDeg),
		strings.ToLower(c.TideState), c.TideHeightFt, c.WaterTemperatureF, c.Score)
	b.WriteString("Two paragraphs: conditions first, then advice. Wind in mph only. Board guidance by category only.")
	return b.String()
}
