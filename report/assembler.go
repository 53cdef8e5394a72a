package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"surf-server/config"
	"surf-server/models"
)

// Defaults applied when the generator omits optional recommendation fields.
var defaultBestSpots = []string{"Main Peak", "The Point", "Inside Bowl"}

const defaultTimingAdvice = "Dawn patrol or late afternoon usually offers the cleanest conditions."

// ReportAssembler merges the produced text with the original conditions
// and derived recommendations into the final SurfReport.
type ReportAssembler struct {
	cacheValidity time.Duration
	now           func() time.Time
}

func NewReportAssembler(cfg config.PipelineConfig) *ReportAssembler {
	return &ReportAssembler{
		cacheValidity: cfg.CacheValidityWindow,
		now:           time.Now,
	}
}

// Assemble builds the output record. fallbackUsed selects the identifier
// prefix and the backend tag recorded in the metadata. The cache-expiry
// timestamp is derived from the same instant as the generation timestamp,
// so the two always differ by exactly the validity window.
func (ra *ReportAssembler) Assemble(c *models.SurfConditions, gen *models.GeneratedReport, fallbackUsed bool) *models.SurfReport {
	now := ra.now().UTC()

	prefix := "report"
	backend := models.BACKEND_GEMINI
	if fallbackUsed {
		prefix = "fallback"
		backend = models.BACKEND_FALLBACK
	}

	bestSpots := gen.BestSpots
	if len(bestSpots) == 0 {
		bestSpots = append([]string(nil), defaultBestSpots...)
	}
	timingAdvice := gen.TimingAdvice
	if strings.TrimSpace(timingAdvice) == "" {
		timingAdvice = defaultTimingAdvice
	}

	text := strings.TrimSpace(gen.ReportText)

	return &models.SurfReport{
		ID:          fmt.Sprintf("%s_%d_%s", prefix, now.UnixMilli(), uuid.NewString()[:8]),
		GeneratedAt: now,
		Location:    c.Location,
		Report:      text,
		Conditions:  *c,
		Recommendations: models.Recommendations{
			BoardType:    gen.BoardRecommendation,
			SkillLevel:   gen.SkillLevel,
			BestSpots:    bestSpots,
			TimingAdvice: timingAdvice,
		},
		CachedUntil: now.Add(ra.cacheValidity),
		GenerationMeta: models.GenerationMeta{
			Backend:      backend,
			FallbackUsed: fallbackUsed,
			ReportLength: len(text),
			WordCount:    len(strings.Fields(text)),
		},
	}
}
