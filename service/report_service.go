package services

import (
	"fmt"
	"log"
	"time"

	"surf-server/api/conditions"
	"surf-server/api/gemini"
	"surf-server/config"
	redisdao "surf-server/dao/redis"
	"surf-server/models"
	"surf-server/report"
)

// ReportService runs the report pipeline: prompt construction, one
// schema-constrained generation attempt, validation, at most one secondary
// attempt with the simplified prompt at lower temperature, then the
// deterministic fallback. Once a valid conditions record is in hand the
// pipeline always terminates with an assembled report.
type ReportService struct {
	promptBuilder *report.PromptBuilder
	validator     *report.ResponseValidator
	fallback      *report.FallbackSynthesizer
	assembler     *report.ReportAssembler
	geminiApi     gemini.GenerativeAPI
	conditionsApi conditions.ConditionsAPI
	reportDao     *redisdao.RedisReportDAO
}

// NewReportService constructs a ReportService with its collaborators.
func NewReportService(
	cfg config.PipelineConfig,
	geminiApi gemini.GenerativeAPI,
	conditionsApi conditions.ConditionsAPI,
	reportDao *redisdao.RedisReportDAO) *ReportService {

	return &ReportService{
		promptBuilder: report.NewPromptBuilder(cfg),
		validator:     report.NewResponseValidator(cfg),
		fallback:      report.NewFallbackSynthesizer(cfg),
		assembler:     report.NewReportAssembler(cfg),
		geminiApi:     geminiApi,
		conditionsApi: conditionsApi,
		reportDao:     reportDao,
	}
}

// GenerateFromConditions runs the pipeline on a caller-supplied conditions
// record. Input errors are surfaced; generation-quality problems never are.
func (rs *ReportService) GenerateFromConditions(cond *models.SurfConditions) (*models.SurfReport, error) {
	if cond == nil {
		return nil, models.NewInputError("conditions", "must be present")
	}
	if err := cond.Validate(); err != nil {
		return nil, err
	}

	gen, fallbackUsed := rs.generate(cond)
	surfReport := rs.assembler.Assemble(cond, gen, fallbackUsed)

	rs.persistBestEffort(surfReport)

	return surfReport, nil
}

// GetOrGenerateForSpot serves a still-fresh cached report when one exists,
// otherwise fetches live conditions and runs the pipeline. A conditions
// fetch failure is fatal: there is no data to report on.
func (rs *ReportService) GetOrGenerateForSpot(spot string) (*models.SurfReport, error) {
	if cached, err := rs.reportDao.GetReport(spot); err != nil {
		log.Printf("[ReportService] Cache lookup failed for %s: %v", spot, err)
	} else if cached != nil && cached.CachedUntil.After(time.Now()) {
		log.Printf("[ReportService] Serving cached report for %s", spot)
		return cached, nil
	}

	cond, err := rs.conditionsApi.GetCurrentConditions(spot)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current conditions: %w", err)
	}

	return rs.GenerateFromConditions(cond)
}

// generate runs the primary attempt, the optional secondary attempt, and
// finally the fallback synthesizer. It always returns a usable report.
func (rs *ReportService) generate(cond *models.SurfConditions) (*models.GeneratedReport, bool) {
	prompt := rs.promptBuilder.BuildPrompt(cond)

	gen, err := rs.geminiApi.GenerateReport(prompt, config.GEMINI_TEMPERATURE, config.GEMINI_MAX_OUTPUT_TOKENS)
	if err == nil {
		if verr := rs.validator.Validate(gen); verr == nil {
			return gen, false
		} else {
			log.Printf("[ReportService] Primary generation rejected for %s: %v", cond.Location, verr)
		}
	} else {
		log.Printf("[ReportService] Primary generation failed for %s: %v", cond.Location, err)
	}

	// Secondary attempt: simplified prompt, lower temperature. This is an
	// explicit fallback tier, not a retry loop.
	simplified := rs.promptBuilder.BuildSimplifiedPrompt(cond)
	gen, err = rs.geminiApi.GenerateReport(simplified, config.GEMINI_RETRY_TEMPERATURE, config.GEMINI_MAX_OUTPUT_TOKENS)
	if err == nil {
		if verr := rs.validator.Validate(gen); verr == nil {
			return gen, false
		} else {
			log.Printf("[ReportService] Secondary generation rejected for %s: %v", cond.Location, verr)
		}
	} else {
		log.Printf("[ReportService] Secondary generation failed for %s: %v", cond.Location, err)
	}

	log.Printf("[ReportService] Using fallback synthesizer for %s", cond.Location)
	return rs.fallback.Synthesize(cond), true
}

// persistBestEffort caches the report without blocking on or propagating
// the result. Failures are logged, never fatal.
func (rs *ReportService) persistBestEffort(r *models.SurfReport) {
	if rs.reportDao == nil {
		return
	}
	go func() {
		if err := rs.reportDao.SetReport(r); err != nil {
			log.Printf("[ReportService] Failed to cache report %s: %v", r.ID, err)
		}
	}()
}
