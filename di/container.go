package di

import (
	"context"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"surf-server/api"
	"surf-server/api/conditions"
	"surf-server/api/gemini"
	"surf-server/config"
	redisdao "surf-server/dao/redis"
	"surf-server/db"
	"surf-server/server"
	"surf-server/server/handlers"
	services "surf-server/service"
	"surf-server/util"
)

// Container holds all application dependencies.
type Container struct {
	Config           *config.AppConfig
	RedisClient      db.RedisClient
	RedisReportDao   *redisdao.RedisReportDAO
	GeminiAPI        gemini.GenerativeAPI
	ConditionsAPI    conditions.ConditionsAPI
	ReportService    *services.ReportService
	RefresherService *services.ReportRefresherService
	ReportHandler    *handlers.ReportHandler
	MuxRouter        *mux.Router
	Router           *server.Router
	SurfHttpServer   *server.SurfHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.AppConfig) *Container {
	log.Printf("initializing container - env: %s", cfg.Env)

	// Initialize Redis client
	var redisClient db.RedisClient
	if cfg.Env != "prod" {
		redisClient = db.NewMockRedisClient()
		log.Printf("Using in-memory redis client")
	} else {
		ctx := context.Background()
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		redisClient = db.NewCacheRedisClient(ctx, redisInternalClient)
	}

	// Initialize Redis Report DAO
	redisReportDao := redisdao.NewRedisReportDAO(redisClient)

	// Initialize GeminiAPI
	var geminiApiClient gemini.GenerativeAPI
	if cfg.Env != "prod" {
		geminiApiClient = gemini.NewGeminiApiClientMock()
		log.Printf("Using mock gemini api")
	} else {
		log.Printf("Using prod gemini api")
		httpClient := api.NewHTTPClientWithTimeout(config.GEMINI_ENDPOINT_BASE, config.GEMINI_TIMEOUT_SECONDS*time.Second)
		client := gemini.NewGeminiApiClient(httpClient, cfg.GeminiModel)
		client.SetAPIKey(cfg.GeminiAPIKey)
		geminiApiClient = client
	}

	// Initialize ConditionsAPI
	var conditionsApiClient conditions.ConditionsAPI
	if cfg.Env != "prod" {
		conditionsApiClient = conditions.NewConditionsApiClientMock()
		log.Printf("Using mock conditions api")
	} else {
		log.Printf("Using prod conditions api")
		httpClient := api.NewHTTPClient(cfg.ConditionsBase)
		conditionsApiClient = conditions.NewConditionsApiClient(httpClient)
	}

	// Initialize service layer
	reportService := services.NewReportService(cfg.Pipeline, geminiApiClient, conditionsApiClient, redisReportDao)

	spots, err := util.ReadSpotNames(config.GetResourcePath(config.STATIC_SPOTS_RESOURCE))
	if err != nil {
		log.Fatalf("Failed to load static spots resource: %v", err)
	}
	log.Printf("Loaded %d spots from %s", len(spots), config.STATIC_SPOTS_RESOURCE)

	refresherService := services.NewReportRefresherService(reportService, redisReportDao, spots, cfg.Env != "prod")

	// Initialize report handler
	reportHandler := handlers.NewReportHandler(reportService, refresherService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	cors := server.CORSOptions{
		AllowOrigin:  cfg.CORSAllowOrigin,
		AllowMethods: cfg.CORSAllowMethods,
		AllowHeaders: cfg.CORSAllowHeaders,
	}
	router := server.NewRouter(reportHandler, muxRouter, cors, cfg.CronSecret)

	// initialize surf http server
	surfHttpServer := server.NewSurfHttpServer(router, muxRouter, cfg.ServerPort)

	return &Container{
		Config:           cfg,
		RedisClient:      redisClient,
		RedisReportDao:   redisReportDao,
		GeminiAPI:        geminiApiClient,
		ConditionsAPI:    conditionsApiClient,
		ReportService:    reportService,
		RefresherService: refresherService,
		ReportHandler:    reportHandler,
		MuxRouter:        muxRouter,
		Router:           router,
		SurfHttpServer:   surfHttpServer,
	}
}
