package models

import "time"

// Backend tags recorded in GenerationMeta.
const (
	BACKEND_GEMINI   = "gemini"
	BACKEND_FALLBACK = "fallback"
)

// Recommendations is the advice block of a SurfReport. BestSpots and
// TimingAdvice are always non-empty; defaults are applied when the
// generator omits them.
type Recommendations struct {
	BoardType    string   `json:"board_type"`
	SkillLevel   string   `json:"skill_level"`
	BestSpots    []string `json:"best_spots"`
	TimingAdvice string   `json:"timing_advice"`
}

// GenerationMeta records which path produced the report text and its size,
// for observability.
type GenerationMeta struct {
	Backend      string `json:"backend"`
	FallbackUsed bool   `json:"fallback_used"`
	ReportLength int    `json:"report_length"`
	WordCount    int    `json:"word_count"`
}

// SurfReport is the final output record. It is returned once and persisted
// nowhere by the core; CachedUntil is advisory metadata for consumers.
type SurfReport struct {
	ID              string          `json:"id"`
	GeneratedAt     time.Time       `json:"generated_at"`
	Location        string          `json:"location"`
	Report          string          `json:"report"`
	Conditions      SurfConditions  `json:"conditions"`
	Recommendations Recommendations `json:"recommendations"`
	CachedUntil     time.Time       `json:"cached_until"`
	GenerationMeta  GenerationMeta  `json:"generation_meta"`
}
