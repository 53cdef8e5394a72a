package gemini

import (
	"fmt"

	"surf-server/config"
	"surf-server/models"
	"surf-server/util"
)

// GeminiApiClientMock embeds mocked logic for the gemini api client
type GeminiApiClientMock struct {
}

// NewGeminiApiClientMock creates a new instance of GeminiApiClientMock
func NewGeminiApiClientMock() *GeminiApiClientMock {
	return &GeminiApiClientMock{}
}

func (c *GeminiApiClientMock) SetAPIKey(apiKey string) {
}

// GenerateReport returns the canned report fixture regardless of prompt.
func (c *GeminiApiClientMock) GenerateReport(prompt string, temperature float64, maxOutputTokens int) (*models.GeneratedReport, error) {
	report, err := util.ReadGeneratedReportFromJSON(config.GetResourcePath(config.GENERATED_REPORT_RESOURCE))
	if err != nil {
		fmt.Println("Could not read generated report from json")
		return nil, err
	}
	return report, nil
}
