package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Server config
const SERVER_PORT = "8080"
const CORS_ALLOW_ORIGIN = "*"
const CORS_ALLOW_METHODS = "GET, POST, OPTIONS"
const CORS_ALLOW_HEADERS = "Content-Type, X-Cron-Secret"

// Report Refresher config
const REPORT_REFRESHER_SCHEDULE_MINUTES = 60

// Gemini API config
const GEMINI_ENDPOINT_BASE = "https://generativelanguage.googleapis.com/v1beta"
const GEMINI_MODEL = "gemini-2.0-flash"
const GEMINI_TIMEOUT_SECONDS = 10
const GEMINI_TEMPERATURE = 0.7
const GEMINI_RETRY_TEMPERATURE = 0.3
const GEMINI_MAX_OUTPUT_TOKENS = 1024

// Conditions API config
const CONDITIONS_ENDPOINT_BASE = "https://api.surfcast-conditions.app/v1"

// Report pipeline defaults
const MIN_REPORT_LENGTH = 150
const CACHE_VALIDITY_HOURS = 4
const LONGBOARD_MAX_WAVE_FT = 2.5
const FUNBOARD_MAX_WAVE_FT = 4.0

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const GENERATED_REPORT_RESOURCE = "generated_report.json"
const SURF_CONDITIONS_RESOURCE = "surf_conditions.json"
const STATIC_SPOTS_RESOURCE = "static_spots.json"

// BoardSizeThresholds are the wave-height cutoffs (feet) used by the
// fallback board-category recommendation.
type BoardSizeThresholds struct {
	LongboardMaxFt float64
	FunboardMaxFt  float64
}

// PipelineConfig parameterizes the report pipeline. The deployment
// variants differ only in these knobs.
type PipelineConfig struct {
	MinReportLength     int
	PromptDetailLevel   string // "standard" or "brief"
	BoardSizeThresholds BoardSizeThresholds
	CacheValidityWindow time.Duration
}

// AppConfig carries everything injected into the container; the core reads
// no process-wide state directly.
type AppConfig struct {
	Env              string
	ServerPort       string
	RedisAddress     string
	RedisPassword    string
	RedisDB          int
	GeminiAPIKey     string
	GeminiModel      string
	ConditionsBase   string
	CronSecret       string
	CORSAllowOrigin  string
	CORSAllowMethods string
	CORSAllowHeaders string
	Pipeline         PipelineConfig
}

// Load builds an AppConfig from the constants above with env-var
// overrides. A .env file is honored when present.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("[Config] No .env file found, using environment")
	}

	return &AppConfig{
		Env:              getEnv("APP_ENV", "prod"),
		ServerPort:       getEnv("SERVER_PORT", SERVER_PORT),
		RedisAddress:     getEnv("REDIS_ADDRESS", REDIS_DB_ADDRESS),
		RedisPassword:    getEnv("REDIS_PASSWORD", REDIS_DB_PASSWORD),
		RedisDB:          getEnvInt("REDIS_DB", REDIS_DB),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", GEMINI_MODEL),
		ConditionsBase:   getEnv("CONDITIONS_ENDPOINT_BASE", CONDITIONS_ENDPOINT_BASE),
		CronSecret:       getEnv("CRON_SECRET", ""),
		CORSAllowOrigin:  getEnv("CORS_ALLOW_ORIGIN", CORS_ALLOW_ORIGIN),
		CORSAllowMethods: getEnv("CORS_ALLOW_METHODS", CORS_ALLOW_METHODS),
		CORSAllowHeaders: getEnv("CORS_ALLOW_HEADERS", CORS_ALLOW_HEADERS),
		Pipeline: PipelineConfig{
			MinReportLength:   getEnvInt("MIN_REPORT_LENGTH", MIN_REPORT_LENGTH),
			PromptDetailLevel: getEnv("PROMPT_DETAIL_LEVEL", "standard"),
			BoardSizeThresholds: BoardSizeThresholds{
				LongboardMaxFt: LONGBOARD_MAX_WAVE_FT,
				FunboardMaxFt:  FUNBOARD_MAX_WAVE_FT,
			},
			CacheValidityWindow: time.Duration(getEnvInt("CACHE_VALIDITY_HOURS", CACHE_VALIDITY_HOURS)) * time.Hour,
		},
	}
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[Config] Invalid integer for %s: %q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}
