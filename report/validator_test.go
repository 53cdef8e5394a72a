package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"surf-server/models"
)

func TestValidate_AcceptsWellFormedReport(t *testing.T) {
	v := NewResponseValidator(testPipelineConfig())
	gen := &models.GeneratedReport{
		ReportText:          strings.Repeat("Clean waves on offer today. ", 10),
		BoardRecommendation: "funboard",
		SkillLevel:          models.SKILL_INTERMEDIATE,
	}
	assert.NoError(t, v.Validate(gen))
}

func TestValidate_RejectsNilReport(t *testing.T) {
	v := NewResponseValidator(testPipelineConfig())
	assert.Error(t, v.Validate(nil))
}

func TestValidate_RejectsEmptyText(t *testing.T) {
	v := NewResponseValidator(testPipelineConfig())
	gen := &models.GeneratedReport{
		ReportText:          "   ",
		BoardRecommendation: "longboard",
	}
	assert.Error(t, v.Validate(gen))
}

func TestValidate_RejectsShortText(t *testing.T) {
	v := NewResponseValidator(testPipelineConfig())
	gen := &models.GeneratedReport{
		ReportText:          "Waves are small.",
		BoardRecommendation: "longboard",
	}
	err := v.Validate(gen)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
}

func TestValidate_RejectsMissingBoardRecommendation(t *testing.T) {
	v := NewResponseValidator(testPipelineConfig())
	gen := &models.GeneratedReport{
		ReportText: strings.Repeat("Clean waves on offer today. ", 10),
	}
	err := v.Validate(gen)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "board recommendation")
}

func TestValidate_ThresholdIsConfigurable(t *testing.T) {
	cfg := testPipelineConfig()
	cfg.MinReportLength = 30
	v := NewResponseValidator(cfg)

	gen := &models.GeneratedReport{
		ReportText:          "Small but clean peelers all morning long.",
		BoardRecommendation: "longboard",
	}
	assert.NoError(t, v.Validate(gen))
}
