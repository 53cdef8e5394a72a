package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ReportHandler is the set of endpoint handlers the router wires up.
type ReportHandler interface {
	GenerateReport(w http.ResponseWriter, r *http.Request)
	GetCurrentReport(w http.ResponseWriter, r *http.Request)
	CronRefresh(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	reportHandler ReportHandler
	router        *mux.Router
	cors          CORSOptions
	cronSecret    string
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	reportHandler ReportHandler,
	router *mux.Router,
	cors CORSOptions,
	cronSecret string) *Router {
	return &Router{
		reportHandler: reportHandler,
		router:        router,
		cors:          cors,
		cronSecret:    cronSecret,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(CORSMiddleware(r.cors))

	r.router.HandleFunc("/health", r.reportHandler.Health).Methods("GET")

	// expects a SurfConditions JSON body
	r.router.HandleFunc("/v1/reports/generate", r.reportHandler.GenerateReport).Methods("POST", "OPTIONS")

	// expects ?spot={spot name}
	r.router.HandleFunc("/v1/reports/current", r.reportHandler.GetCurrentReport).Methods("GET", "OPTIONS")

	r.router.HandleFunc("/v1/cron/refresh",
		RequireCronSecret(r.cronSecret, r.reportHandler.CronRefresh)).Methods("POST")
}
