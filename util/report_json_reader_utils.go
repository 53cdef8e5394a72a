package util

import (
	"encoding/json"
	"fmt"
	"os"

	"surf-server/models"
)

// ReadGeneratedReportFromJSON loads a GeneratedReport from JSON on disk.
func ReadGeneratedReportFromJSON(filePath string) (*models.GeneratedReport, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var report models.GeneratedReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal GeneratedReport: %w", err)
	}
	return &report, nil
}

// ReadSurfConditionsFromJSON loads a SurfConditions record from JSON on disk.
func ReadSurfConditionsFromJSON(filePath string) (*models.SurfConditions, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var cond models.SurfConditions
	if err := json.Unmarshal(data, &cond); err != nil {
		return nil, fmt.Errorf("failed to unmarshal SurfConditions: %w", err)
	}
	return &cond, nil
}

// ReadSpotNames loads a slice of spot names from JSON on disk.
func ReadSpotNames(filePath string) ([]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var spots []string
	if err := json.Unmarshal(data, &spots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal spot names: %w", err)
	}
	return spots, nil
}

// PrintSurfReportPartially prints key fields of a SurfReport.
func PrintSurfReportPartially(r *models.SurfReport) {
	fmt.Printf("Report ID: %s\n", r.ID)
	fmt.Printf("Location: %s\n", r.Location)
	fmt.Printf("Backend: %s (fallback=%v)\n", r.GenerationMeta.Backend, r.GenerationMeta.FallbackUsed)
	fmt.Printf("Report length: %d chars, %d words\n", r.GenerationMeta.ReportLength, r.GenerationMeta.WordCount)
	fmt.Printf("Cached until: %s\n", r.CachedUntil)
}
