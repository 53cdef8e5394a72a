package gemini

import (
	"surf-server/models"
)

// GenerativeAPI defines the interface for the schema-constrained
// text-generation backend. The backend is treated as an untrusted,
// possibly-slow, possibly-unavailable black box; callers own the decision
// of what to do when it fails.
type GenerativeAPI interface {
	GenerateReport(prompt string, temperature float64, maxOutputTokens int) (*models.GeneratedReport, error)
	SetAPIKey(apiKey string)
}
