package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surf-server/config"
	redisdao "surf-server/dao/redis"
	"surf-server/db"
	"surf-server/models"
	services "surf-server/service"
)

type stubGemini struct {
	report *models.GeneratedReport
	err    error
}

func (s *stubGemini) GenerateReport(prompt string, temperature float64, maxOutputTokens int) (*models.GeneratedReport, error) {
	return s.report, s.err
}

func (s *stubGemini) SetAPIKey(apiKey string) {}

type stubConditions struct {
	cond *models.SurfConditions
	err  error
}

func (s *stubConditions) GetCurrentConditions(spot string) (*models.SurfConditions, error) {
	if s.err != nil {
		return nil, s.err
	}
	c := *s.cond
	c.Location = spot
	return &c, nil
}

func (s *stubConditions) SetAPIKey(apiKey string) {}

func handlerConfig() config.PipelineConfig {
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

func handlerConditions() *models.SurfConditions {
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

func newTestHandler(g *stubGemini, c *stubConditions) *ReportHandler {
	dao := redisdao.NewRedisReportDAO(db.NewMockRedisClient())
	reportService := services.NewReportService(handlerConfig(), g, c, dao)
	refresher := services.NewReportRefresherService(reportService, dao, []string{"Ocean Beach", "Pacifica"}, false)
	return NewReportHandler(reportService, refresher)
}

func TestGenerateReport_OK(t *testing.T) {
	g := &stubGemini{report: &models.GeneratedReport{
		ReportText:          strings.Repeat("Fun waves with light offshore wind this morning. ", 5),
		BoardRecommendation: "funboard",
		SkillLevel:          models.SKILL_INTERMEDIATE,
	}}
	h := newTestHandler(g, &stubConditions{})

	body, _ := json.Marshal(handlerConditions())
	req := httptest.NewRequest("POST", "/v1/reports/generate", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.GenerateReport(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var report models.SurfReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, "Ocean Beach", report.Location)
	assert.False(t, report.GenerationMeta.FallbackUsed)
	assert.True(t, strings.HasPrefix(report.ID, "report_"))
}

func TestGenerateReport_FallbackOnGeneratorFailure(t *testing.T) {
	g := &stubGemini{err: errors.New("deadline exceeded")}
	h := newTestHandler(g, &stubConditions{})

	body, _ := json.Marshal(handlerConditions())
	req := httptest.NewRequest("POST", "/v1/reports/generate", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.GenerateReport(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, "generator failure must still return a usable report")

	var report models.SurfReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.True(t, report.GenerationMeta.FallbackUsed)
}

func TestGenerateReport_BadJSON(t *testing.T) {
	h := newTestHandler(&stubGemini{}, &stubConditions{})

	req := httptest.NewRequest("POST", "/v1/reports/generate", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	h.GenerateReport(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGenerateReport_InvalidConditions(t *testing.T) {
	h := newTestHandler(&stubGemini{}, &stubConditions{})

	cond := handlerConditions()
	cond.TideState = "Sideways"
	body, _ := json.Marshal(cond)
	req := httptest.NewRequest("POST", "/v1/reports/generate", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.GenerateReport(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]models.InputError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "tide_state", resp["error"].Field)
}

func TestGetCurrentReport_MissingSpot(t *testing.T) {
	h := newTestHandler(&stubGemini{}, &stubConditions{})

	req := httptest.NewRequest("GET", "/v1/reports/current", nil)
	rr := httptest.NewRecorder()
	h.GetCurrentReport(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetCurrentReport_ConditionsFetchFailure(t *testing.T) {
	h := newTestHandler(&stubGemini{}, &stubConditions{err: errors.New("upstream down")})

	req := httptest.NewRequest("GET", "/v1/reports/current?spot=Pacifica", nil)
	rr := httptest.NewRecorder()
	h.GetCurrentReport(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGetCurrentReport_OK(t *testing.T) {
	g := &stubGemini{err: errors.New("down")} // fallback path is fine here
	h := newTestHandler(g, &stubConditions{cond: handlerConditions()})

	req := httptest.NewRequest("GET", "/v1/reports/current?spot=Pacifica", nil)
	rr := httptest.NewRecorder()
	h.GetCurrentReport(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var report models.SurfReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, "Pacifica", report.Location)
}

func TestHealth(t *testing.T) {
	h := newTestHandler(&stubGemini{}, &stubConditions{})

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	h.Health(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}
