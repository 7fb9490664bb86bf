package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/econagent/models"
)

// Load initializes configuration from environment variables
func Load() (*models.Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	var cfg models.Config

	cfg.Port = getEnvIntWithDefault("PORT", 4000)
	cfg.Env = getEnvWithDefault("ENV", "development")
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAIModel = getEnvWithDefault("OPENAI_MODEL", "gpt-4")
	cfg.MaxAnswerTokens = getEnvIntWithDefault("MAX_ANSWER_TOKENS", 200)
	cfg.Temperature = getEnvFloatWithDefault("TEMPERATURE", 0.7)
	cfg.DatasetDays = getEnvIntWithDefault("DATASET_DAYS", 400)
	cfg.DatasetStart = getEnvWithDefault("DATASET_START", "2023-01-01")
	cfg.DatasetSeed = getEnvIntWithDefault("DATASET_SEED", 42)
	cfg.ColumnsFile = os.Getenv("COLUMNS_FILE")
	cfg.MinUploadRows = getEnvIntWithDefault("MIN_UPLOAD_ROWS", 300)
	cfg.MinUploadCols = getEnvIntWithDefault("MIN_UPLOAD_COLS", 6)
	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")
	cfg.RequestTimeout = getEnvIntWithDefault("REQUEST_TIMEOUT", 30)
	cfg.RateLimit = getEnvIntWithDefault("RATE_LIMIT", 5)
	cfg.SessionTTL = getEnvIntWithDefault("SESSION_TTL", 30)

	return &cfg, nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
