package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"surf-server/models"
)

const SPOT_SCORES_CHART_FILE = "spot_scores.html"

// PlotSpotScores generates an HTML file rendering the surfability score of
// each refreshed spot as a bar chart.
func PlotSpotScores(reports []*models.SurfReport) {
	if len(reports) == 0 {
		return
	}

	spots := make([]string, 0, len(reports))
	scores := make([]opts.BarData, 0, len(reports))
	for _, r := range reports {
		spots = append(spots, r.Location)
		scores = append(scores, opts.BarData{Value: r.Conditions.Score})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Spot Surfability Scores",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Surfability score per spot",
		}),
	)

	bar.SetXAxis(spots).AddSeries("Score", scores,
		charts.WithLabelOpts(opts.Label{
			Show: opts.Bool(true),
		}),
	)

	// Create an HTML file to render the chart.
	f, err := os.Create(SPOT_SCORES_CHART_FILE)
	if err != nil {
		log.Printf("Failed to create chart HTML file: %v", err)
		return
	}
	defer f.Close()

	// Render the chart into the HTML file.
	if err := bar.Render(f); err != nil {
		log.Printf("Failed to render chart: %v", err)
		return
	}

	fmt.Println("Spot scores chart generated: " + SPOT_SCORES_CHART_FILE)
}
