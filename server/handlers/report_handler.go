package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"surf-server/models"
	services "surf-server/service"
)

const SPOT_QUERY_ARG = "spot"

// ReportHandler serves the report endpoints.
type ReportHandler struct {
	reportService    *services.ReportService
	refresherService *services.ReportRefresherService
}

func NewReportHandler(
	reportService *services.ReportService,
	refresherService *services.ReportRefresherService) *ReportHandler {

	return &ReportHandler{
		reportService:    reportService,
		refresherService: refresherService,
	}
}

// GenerateReport handles POST /v1/reports/generate. The body is a
// SurfConditions record; the response is the assembled SurfReport.
func (h *ReportHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	var cond models.SurfConditions
	if err := json.NewDecoder(r.Body).Decode(&cond); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	report, err := h.reportService.GenerateFromConditions(&cond)
	if err != nil {
		if ie, ok := models.AsInputError(err); ok {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": ie})
			return
		}
		log.Println("Error generating report:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// GetCurrentReport handles GET /v1/reports/current?spot=NAME. Conditions
// are fetched from the upstream provider; its failure is the one
// generation path that surfaces as an error.
func (h *ReportHandler) GetCurrentReport(w http.ResponseWriter, r *http.Request) {
	spot := r.URL.Query().Get(SPOT_QUERY_ARG)
	if spot == "" {
		http.Error(w, "Missing argument "+SPOT_QUERY_ARG, http.StatusBadRequest)
		return
	}

	report, err := h.reportService.GetOrGenerateForSpot(spot)
	if err != nil {
		log.Printf("Error getting report for %s: %v", spot, err)
		http.Error(w, "Failed to fetch conditions for spot", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// CronRefresh handles POST /v1/cron/refresh. Authorization is checked by
// the shared-secret middleware before this runs.
func (h *ReportHandler) CronRefresh(w http.ResponseWriter, r *http.Request) {
	log.Println("Cron refresh triggered")
	refreshed := h.refresherService.RefreshReports()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"refreshed": len(refreshed),
	})
}

// Health handles GET /health
func (h *ReportHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("Error encoding response:", err)
	}
}
