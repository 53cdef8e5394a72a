package gemini

import (
	"encoding/json"
	"fmt"
	"net/url"

	"surf-server/api"
	"surf-server/models"
)

// GeminiApiClient embeds the common HTTPClient
type GeminiApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	model           string
	apiKey          string
}

// NewGeminiApiClient creates a new instance of GeminiApiClient
func NewGeminiApiClient(httpClient *api.HTTPClient, model string) *GeminiApiClient {
	return &GeminiApiClient{
		HTTPClient: httpClient,
		model:      model,
	}
}

func (c *GeminiApiClient) SetAPIKey(apiKey string) {
	c.apiKey = apiKey
}

// GenerateReport calls the generateContent endpoint with the report schema
// attached and decodes the structured candidate into a GeneratedReport.
func (c *GeminiApiClient) GenerateReport(prompt string, temperature float64, maxOutputTokens int) (*models.GeneratedReport, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("gemini api key not configured")
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: prompt}},
			},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:      temperature,
			MaxOutputTokens:  maxOutputTokens,
			ResponseMimeType: "application/json",
			ResponseSchema:   reportResponseSchema(),
		},
	}

	endpoint := fmt.Sprintf("/models/%s:generateContent?key=%s", c.model, url.QueryEscape(c.apiKey))

	var resp geminiResponse
	if err := c.Request("POST", endpoint, nil, reqBody, &resp); err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini response contained no candidates")
	}

	var report models.GeneratedReport
	if err := json.Unmarshal([]byte(resp.Candidates[0].Content.Parts[0].Text), &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal GeneratedReport: %w", err)
	}
	return &report, nil
}
