package config

import (
	"os"
	"strconv"
	"strings"
)

// DefaultMinDescriptionWords is the word-count floor applied to incoming
// project descriptions when MIN_DESCRIPTION_WORDS is unset.
const DefaultMinDescriptionWords = 500

// Config holds application configuration.
type Config struct {
	Port                string
	CORSAllowOrigin     []string
	LLMProvider         string
	LLMModel            string
	OpenAIAPIKey        string
	GeminiAPIKey        string
	OllamaHost          string
	MinDescriptionWords int
	AnalyzeRatePerMin   float64
	AnalyzeRateBurst    int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:                getEnv("PORT", "3000"),
		CORSAllowOrigin:     splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		LLMProvider:         normalizeProvider(getEnv("LLM_PROVIDER", "openai")),
		LLMModel:            getEnv("LLM_MODEL", "gpt-4o-mini"),
		OpenAIAPIKey:        os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		OllamaHost:          getEnv("OLLAMA_HOST", "http://localhost:11434"),
		MinDescriptionWords: getEnvInt("MIN_DESCRIPTION_WORDS", DefaultMinDescriptionWords),
		AnalyzeRatePerMin:   getEnvFloat("ANALYZE_RATE_PER_MIN", 0),
		AnalyzeRateBurst:    getEnvInt("ANALYZE_RATE_BURST", 5),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return def
	}
	return parsed
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil || parsed < 0 {
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeProvider(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
