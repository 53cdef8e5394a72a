package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surf-server/config"
	redisdao "surf-server/dao/redis"
	"surf-server/db"
	"surf-server/models"
	"surf-server/report"
)

func testPipelineConfig() config.PipelineConfig {
	return config.PipelineConfig{
		MinReportLength:   150,
		PromptDetailLevel: "standard",
		BoardSizeThresholds: config.BoardSizeThresholds{
			LongboardMaxFt: 2.5,
			FunboardMaxFt:  4.0,
		},
		CacheValidityWindow: 4 * time.Hour,
	}
}

func testConditions() *models.SurfConditions {
	return &models.SurfConditions{
		Location:          "Ocean Beach",
		WaveHeightFt:      3.5,
		WavePeriodSec:     9,
		SwellDirectionDeg: 270,
		WindSpeedKts:      8,
		WindDirectionDeg:  90,
		TideState:         "Rising",
		TideHeightFt:      1.2,
		AirTemperatureF:   68,
		WaterTemperatureF: 74,
		Weather:           "Sunny",
		Score:             72,
	}
}

// geminiMock scripts the generator's responses, one per call.
type geminiMock struct {
	reports []*models.GeneratedReport
	errs    []error
	calls   int
}

func (m *geminiMock) GenerateReport(prompt string, temperature float64, maxOutputTokens int) (*models.GeneratedReport, error) {
	i := m.calls
	m.calls++
	if i >= len(m.reports) {
		return nil, errors.New("unexpected call")
	}
	return m.reports[i], m.errs[i]
}

func (m *geminiMock) SetAPIKey(apiKey string) {}

// conditionsMock returns a fixed record or a fixed error.
type conditionsMock struct {
	cond *models.SurfConditions
	err  error
}

func (m *conditionsMock) GetCurrentConditions(spot string) (*models.SurfConditions, error) {
	if m.err != nil {
		return nil, m.err
	}
	c := *m.cond
	c.Location = spot
	return &c, nil
}

func (m *conditionsMock) SetAPIKey(apiKey string) {}

func goodGeneratedReport() *models.GeneratedReport {
	return &models.GeneratedReport{
		ReportText:          strings.Repeat("Fun waves with light wind and a rising tide today. ", 5),
		BoardRecommendation: "funboard",
		SkillLevel:          models.SKILL_INTERMEDIATE,
		BestSpots:           []string{"North Peak"},
		TimingAdvice:        "Surf the morning.",
	}
}

func newTestService(g *geminiMock, c *conditionsMock) (*ReportService, *db.MockRedisClient) {
	mockRedis := db.NewMockRedisClient()
	dao := redisdao.NewRedisReportDAO(mockRedis)
	return NewReportService(testPipelineConfig(), g, c, dao), mockRedis
}

func TestGenerateFromConditions_PrimarySuccess(t *testing.T) {
	g := &geminiMock{
		reports: []*models.GeneratedReport{goodGeneratedReport()},
		errs:    []error{nil},
	}
	rs, _ := newTestService(g, &conditionsMock{})

	r, err := rs.GenerateFromConditions(testConditions())
	require.NoError(t, err)
	assert.Equal(t, models.BACKEND_GEMINI, r.GenerationMeta.Backend)
	assert.False(t, r.GenerationMeta.FallbackUsed)
	assert.Equal(t, 1, g.calls, "primary success must not trigger a second attempt")
	assert.Equal(t, []string{"North Peak"}, r.Recommendations.BestSpots)
}

func TestGenerateFromConditions_GeneratorFailureUsesFallback(t *testing.T) {
	g := &geminiMock{
		reports: []*models.GeneratedReport{nil, nil},
		errs:    []error{errors.New("timeout"), errors.New("timeout")},
	}
	rs, _ := newTestService(g, &conditionsMock{})

	r, err := rs.GenerateFromConditions(testConditions())
	require.NoError(t, err, "generation failure must never surface once conditions are valid")
	assert.True(t, r.GenerationMeta.FallbackUsed)
	assert.Equal(t, models.BACKEND_FALLBACK, r.GenerationMeta.Backend)
	assert.True(t, strings.HasPrefix(r.ID, "fallback_"))
	assert.Equal(t, 2, g.calls, "one primary and one simplified attempt, no retry loop")
}

func TestGenerateFromConditions_ShortReportTriggersFallbackText(t *testing.T) {
	short := &models.GeneratedReport{
		ReportText:          "Too short.",
		BoardRecommendation: "funboard",
	}
	g := &geminiMock{
		reports: []*models.GeneratedReport{short, short},
		errs:    []error{nil, nil},
	}
	rs, _ := newTestService(g, &conditionsMock{})

	cond := testConditions()
	r, err := rs.GenerateFromConditions(cond)
	require.NoError(t, err)
	assert.True(t, r.GenerationMeta.FallbackUsed)

	// The report text must be exactly the deterministic fallback output.
	fs := report.NewFallbackSynthesizer(testPipelineConfig())
	assert.Equal(t, fs.Synthesize(cond).ReportText, r.Report)
}

func TestGenerateFromConditions_SecondaryAttemptCanRecover(t *testing.T) {
	g := &geminiMock{
		reports: []*models.GeneratedReport{nil, goodGeneratedReport()},
		errs:    []error{errors.New("unavailable"), nil},
	}
	rs, _ := newTestService(g, &conditionsMock{})

	r, err := rs.GenerateFromConditions(testConditions())
	require.NoError(t, err)
	assert.False(t, r.GenerationMeta.FallbackUsed)
	assert.Equal(t, 2, g.calls)
}

func TestGenerateFromConditions_FallbackDefaultsSpotsAndTiming(t *testing.T) {
	g := &geminiMock{
		reports: []*models.GeneratedReport{nil, nil},
		errs:    []error{errors.New("down"), errors.New("down")},
	}
	rs, _ := newTestService(g, &conditionsMock{})

	r, err := rs.GenerateFromConditions(testConditions())
	require.NoError(t, err)
	assert.NotEmpty(t, r.Recommendations.BestSpots)
	assert.NotEmpty(t, r.Recommendations.TimingAdvice)
}

func TestGenerateFromConditions_InputErrorSkipsGeneration(t *testing.T) {
	g := &geminiMock{}
	rs, _ := newTestService(g, &conditionsMock{})

	bad := testConditions()
	bad.Location = ""
	_, err := rs.GenerateFromConditions(bad)
	require.Error(t, err)
	_, ok := models.AsInputError(err)
	assert.True(t, ok)
	assert.Equal(t, 0, g.calls, "the core must not attempt generation on bad input")

	_, err = rs.GenerateFromConditions(nil)
	require.Error(t, err)
}

func TestGetOrGenerateForSpot_ConditionsFetchFailureIsFatal(t *testing.T) {
	g := &geminiMock{}
	rs, _ := newTestService(g, &conditionsMock{err: errors.New("upstream down")})

	_, err := rs.GetOrGenerateForSpot("Ocean Beach")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch current conditions")
	assert.Equal(t, 0, g.calls)
}

func TestGetOrGenerateForSpot_GeneratesWhenCacheEmpty(t *testing.T) {
	g := &geminiMock{
		reports: []*models.GeneratedReport{goodGeneratedReport()},
		errs:    []error{nil},
	}
	rs, _ := newTestService(g, &conditionsMock{cond: testConditions()})

	r, err := rs.GetOrGenerateForSpot("Pleasure Point")
	require.NoError(t, err)
	assert.Equal(t, "Pleasure Point", r.Location)
	assert.Equal(t, 1, g.calls)
}

func TestGetOrGenerateForSpot_ServesFreshCachedReport(t *testing.T) {
	g := &geminiMock{
		reports: []*models.GeneratedReport{goodGeneratedReport()},
		errs:    []error{nil},
	}
	mockRedis := db.NewMockRedisClient()
	dao := redisdao.NewRedisReportDAO(mockRedis)
	rs := NewReportService(testPipelineConfig(), g, &conditionsMock{cond: testConditions()}, dao)

	cached := &models.SurfReport{
		ID:          "report_123_abcd1234",
		GeneratedAt: time.Now(),
		Location:    "Ocean Beach",
		Report:      "cached report text",
		CachedUntil: time.Now().Add(time.Hour),
	}
	require.NoError(t, dao.SetReport(cached))

	r, err := rs.GetOrGenerateForSpot("Ocean Beach")
	require.NoError(t, err)
	assert.Equal(t, "report_123_abcd1234", r.ID)
	assert.Equal(t, 0, g.calls, "a fresh cached report must short-circuit generation")
}
