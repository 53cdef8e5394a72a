package main

import (
	"fmt"
	"time"

	"surf-server/config"
	"surf-server/di"
	"surf-server/util"
)

func main() {
	cfg := config.Load()
	container := di.NewContainer(cfg)

	fmt.Println("warming report cache!")
	for _, report := range container.RefresherService.RefreshReports() {
		util.PrintSurfReportPartially(report)
	}

	fmt.Println("starting periodic refresh job!")
	container.RefresherService.StartPeriodicJob(config.REPORT_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.SurfHttpServer.Start()
}
