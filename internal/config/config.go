package config

import (
	"os"
	"strings"

	"aicoach/internal/logger"
)

type Config struct {
	AI     AIConfig
	DB     DBConfig
	Logger LoggerConfig
}

// AIConfig configures the OpenRouter client. APIKey is required; the client
// constructor rejects a blank key. Model and BaseURL have working defaults.
type AIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type DBConfig struct {
	Path string
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

func Load() (*Config, error) {
	return &Config{
		AI: AIConfig{
			APIKey:  os.Getenv("OPENROUTER_API_KEY"),
			Model:   getEnvOrDefault("OPENROUTER_MODEL", "openai/gpt-4o-mini"),
			BaseURL: getEnvOrDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		},
		DB: DBConfig{
			Path: getEnvOrDefault("COACH_DB_PATH", "coach.db"),
		},
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "stdout"),
			Format:     getEnvOrDefault("LOG_FORMAT", "text"),
		},
	}, nil
}
