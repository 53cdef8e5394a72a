package gemini

// Request/response shapes for the generateContent endpoint.

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature      float64                `json:"temperature"`
	MaxOutputTokens  int                    `json:"maxOutputTokens"`
	ResponseMimeType string                 `json:"responseMimeType"`
	ResponseSchema   map[string]interface{} `json:"responseSchema,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

// Bounds enforced by the provider on the structured output.
const (
	REPORT_TEXT_MIN_LENGTH = 100
	REPORT_TEXT_MAX_LENGTH = 2000
	MAX_BEST_SPOTS         = 3
)

// reportResponseSchema enumerates the exact field names, types and bounds
// of models.GeneratedReport, in the OpenAPI subset the generateContent
// endpoint enforces server-side.
func reportResponseSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "OBJECT",
		"properties": map[string]interface{}{
			"report_text": map[string]interface{}{
				"type":      "STRING",
				"minLength": REPORT_TEXT_MIN_LENGTH,
				"maxLength": REPORT_TEXT_MAX_LENGTH,
			},
			"board_recommendation": map[string]interface{}{
				"type": "STRING",
			},
			"skill_level": map[string]interface{}{
				"type": "STRING",
				"enum": []string{"beginner", "intermediate", "advanced"},
			},
			"best_spots": map[string]interface{}{
				"type":     "ARRAY",
				"maxItems": MAX_BEST_SPOTS,
				"items":    map[string]interface{}{"type": "STRING"},
			},
			"timing_advice": map[string]interface{}{
				"type": "STRING",
			},
		},
		"required": []string{"report_text", "board_recommendation", "skill_level"},
	}
}
