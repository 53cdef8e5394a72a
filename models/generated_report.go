package models

// Skill levels the generator is constrained to.
const (
	SKILL_BEGINNER     = "beginner"
	SKILL_INTERMEDIATE = "intermediate"
	SKILL_ADVANCED     = "advanced"
)

// GeneratedReport is the structured object returned by the
// schema-constrained text-generation API. BestSpots and TimingAdvice are
// optional; the assembler fills defaults when they are absent.
type GeneratedReport struct {
	ReportText          string   `json:"report_text"`
	BoardRecommendation string   `json:"board_recommendation"`
	SkillLevel          string   `json:"skill_level"`
	BestSpots           []string `json:"best_spots,omitempty"`
	TimingAdvice        string   `json:"timing_advice,omitempty"`
}
