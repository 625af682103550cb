package infrastructure

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Environment string
	Telegram    TelegramConfig
	LeetCode    LeetCodeConfig
	Gemini      GeminiConfig
	Ops         OpsServerConfig
	Telemetry   TelemetryConfig
}

// TelegramConfig holds the bot transport configuration
type TelegramConfig struct {
	Token       string
	PollTimeout int
	Debug       bool
}

// LeetCodeConfig holds the remote catalog and profile source configuration
type LeetCodeConfig struct {
	BaseURL          string
	CatalogLimit     int
	CatalogTimeout   time.Duration
	ProfileTimeout   time.Duration
	ChallengeTimeout time.Duration
}

// GeminiConfig holds the text-generation source configuration
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// OpsServerConfig holds the operational HTTP server configuration
type OpsServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// TelemetryConfig holds observability configuration
type TelemetryConfig struct {
	Enabled         bool
	ServiceName     string
	ServiceVersion  string
	OTLPEndpoint    string
	MetricsEndpoint string
}

// LoadConfig loads configuration from environment variables with sensible defaults
func LoadConfig() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Telegram: TelegramConfig{
			Token:       getEnv("TELEGRAM_BOT_TOKEN", ""),
			PollTimeout: getEnvInt("TELEGRAM_POLL_TIMEOUT", 30),
			Debug:       getEnvBool("TELEGRAM_DEBUG", false),
		},
		LeetCode: LeetCodeConfig{
			BaseURL:          getEnv("LEETCODE_BASE_URL", "https://leetcode.com/graphql"),
			CatalogLimit:     getEnvInt("LEETCODE_CATALOG_LIMIT", 2000),
			CatalogTimeout:   time.Duration(getEnvInt("LEETCODE_CATALOG_TIMEOUT", 30)) * time.Second,
			ProfileTimeout:   time.Duration(getEnvInt("LEETCODE_PROFILE_TIMEOUT", 15)) * time.Second,
			ChallengeTimeout: time.Duration(getEnvInt("LEETCODE_CHALLENGE_TIMEOUT", 15)) * time.Second,
		},
		Gemini: GeminiConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			Timeout: time.Duration(getEnvInt("GEMINI_TIMEOUT", 30)) * time.Second,
		},
		Ops: OpsServerConfig{
			Host:         getEnv("OPS_HOST", "0.0.0.0"),
			Port:         getEnvInt("OPS_PORT", 8080),
			ReadTimeout:  time.Duration(getEnvInt("OPS_READ_TIMEOUT", 10)) * time.Second,
			WriteTimeout: time.Duration(getEnvInt("OPS_WRITE_TIMEOUT", 30)) * time.Second,
		},
		Telemetry: TelemetryConfig{
			Enabled:         getEnvBool("TELEMETRY_ENABLED", true),
			ServiceName:     getEnv("SERVICE_NAME", "leetmentor-bot"),
			ServiceVersion:  getEnv("SERVICE_VERSION", "1.0.0"),
			OTLPEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://otel-collector:4318"),
			MetricsEndpoint: getEnv("METRICS_ENDPOINT", "/metrics"),
		},
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an environment variable as an integer or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool retrieves an environment variable as a boolean or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
