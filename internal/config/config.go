package config

import (
	"os"
	"strconv"
	"time"
)

const (
	defaultCMSGatewayURL  = "https://cms-gateway.radaa.net/kompaql"
	defaultLLMBaseURL     = "https://openrouter.ai/api/v1"
	defaultLLMModel       = "meta-llama/llama-4-scout:free"
	defaultLLMMaxTokens   = 1500
	defaultLLMTemperature = 0.7
	defaultCacheEntries   = 1000
	defaultCacheTTL       = 30 * time.Minute
)

type Config struct {
	AppVersion  string
	Port        string
	FrontendURL string

	GatewayURL    string
	CMSGatewayURL string

	LLMProvider      string // "openrouter" or "anthropic"
	LLMBaseURL       string
	OpenRouterAPIKey string
	AnthropicAPIKey  string
	LLMModel         string
	LLMMaxTokens     int64
	LLMTemperature   float64

	CacheMaxEntries int
	CacheTTL        time.Duration
}

// Load reads settings from the environment. Callers run godotenv.Load()
// first so a local .env participates.
func Load() Config {
	return Config{
		AppVersion:  getEnv("APP_VERSION", "1.0.0"),
		Port:        getEnv("PORT", "8080"),
		FrontendURL: os.Getenv("FRONTEND_URL"),

		GatewayURL:    os.Getenv("GATEWAY_URL"),
		CMSGatewayURL: getEnv("CMS_GATEWAY_URL", defaultCMSGatewayURL),

		LLMProvider:      getEnv("LLM_PROVIDER", "openrouter"),
		LLMBaseURL:       getEnv("LLM_BASE_URL", defaultLLMBaseURL),
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		LLMModel:         getEnv("LLM_MODEL", defaultLLMModel),
		LLMMaxTokens:     getEnvInt64("LLM_MAX_TOKENS", defaultLLMMaxTokens),
		LLMTemperature:   getEnvFloat("LLM_TEMPERATURE", defaultLLMTemperature),

		CacheMaxEntries: int(getEnvInt64("CACHE_MAX_ENTRIES", defaultCacheEntries)),
		CacheTTL:        getEnvDuration("CACHE_TTL", defaultCacheTTL),
	}
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(name string, fallback int64) int64 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(name string, fallback float64) float64 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getEnvDuration(name string, fallback time.Duration) time.Duration {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
