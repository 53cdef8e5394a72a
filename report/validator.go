package report

import (
	"fmt"
	"strings"

	"surf-server/config"
	"surf-server/models"
)

// ResponseValidator checks a generated report against the length and
// required-field constraints. Anything beyond that is accepted as-is; no
// semantic checking of the prose happens here.
type ResponseValidator struct {
	minReportLength int
}

func NewResponseValidator(cfg config.PipelineConfig) *ResponseValidator {
	return &ResponseValidator{minReportLength: cfg.MinReportLength}
}

// Validate returns an error when the candidate must be rejected, which
// sends the pipeline down the fallback path.
func (v *ResponseValidator) Validate(r *models.GeneratedReport) error {
	if r == nil {
		return fmt.Errorf("generated report is nil")
	}
	text := strings.TrimSpace(r.ReportText)
	if text == "" {
		return fmt.Errorf("report text is empty")
	}
	if len(text) < v.minReportLength {
		return fmt.Errorf("report text too short: %d chars, minimum %d", len(text), v.minReportLength)
	}
	if strings.TrimSpace(r.BoardRecommendation) == "" {
		return fmt.Errorf("board recommendation is empty")
	}
	return nil
}
