package services

import (
	"log"
	"time"

	redisdao "surf-server/dao/redis"
	"surf-server/models"
	"surf-server/util"
)

// ReportRefresherService periodically regenerates reports for the
// configured spot list so the cache stays warm between requests.
type ReportRefresherService struct {
	reportService *ReportService
	reportDao     *redisdao.RedisReportDAO
	spots         []string
	plotCharts    bool
}

// NewReportRefresherService constructs a new Refresher with dependencies.
// The spot list is injected; the container loads it from the static spots
// resource.
func NewReportRefresherService(
	reportService *ReportService,
	reportDao *redisdao.RedisReportDAO,
	spots []string,
	plotCharts bool) *ReportRefresherService {

	return &ReportRefresherService{
		reportService: reportService,
		reportDao:     reportDao,
		spots:         spots,
		plotCharts:    plotCharts,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (rr *ReportRefresherService) StartPeriodicJob(interval time.Duration) {
	go rr.startPeriodicJob(interval)
}

func (rr *ReportRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[ReportRefresherService] Running scheduled refresh")
		rr.RefreshReports()
	}
}

// RefreshReports regenerates a report for every configured spot. The
// cached entry is evicted first so a still-fresh report cannot
// short-circuit the sweep. Failures on individual spots are logged and
// skipped; one bad spot never stops the sweep.
func (rr *ReportRefresherService) RefreshReports() []*models.SurfReport {
	refreshed := make([]*models.SurfReport, 0, len(rr.spots))

	for _, spot := range rr.spots {
		if err := rr.reportDao.DeleteReport(spot); err != nil {
			log.Printf("[ReportRefresherService] Failed to evict stale report for %s: %v", spot, err)
		}

		report, err := rr.reportService.GetOrGenerateForSpot(spot)
		if err != nil {
			log.Printf("[ReportRefresherService] Failed to refresh %s: %v", spot, err)
			continue
		}
		log.Printf("[ReportRefresherService] Refreshed report for %s (backend=%s)", spot, report.GenerationMeta.Backend)
		refreshed = append(refreshed, report)
	}

	if locations, err := rr.reportDao.ListCachedReportLocations(); err != nil {
		log.Printf("[ReportRefresherService] Error listing cached report locations: %v", err)
	} else {
		log.Printf("[ReportRefresherService] %d cached report entries after sweep", len(locations))
	}

	if rr.plotCharts {
		util.PlotSpotScores(refreshed)
	}

	return refreshed
}
