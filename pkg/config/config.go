package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Spoonacular API configuration
	SpoonacularAPIKey  string
	SpoonacularAPIBase string

	// HTTP server configuration
	ListenAddr  string
	CORSOrigins []string

	// Storage configuration
	DataDir string

	// OpenAI configuration (optional, enables free-text ingredient parsing)
	OpenAIAPIKey  string
	OpenAIAPIBase string
	OpenAIModel   string

	// Telegram configuration (optional, enables expiry alerts)
	TelegramBotToken string
	TelegramChatID   int64
	AlertInterval    time.Duration
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{}

	// Required configurations
	apiKey := os.Getenv("SPOONACULAR_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("SPOONACULAR_API_KEY environment variable is required")
	}
	cfg.SpoonacularAPIKey = apiKey

	// Optional configurations with defaults
	cfg.SpoonacularAPIBase = getEnvWithDefault("SPOONACULAR_API_BASE", "https://api.spoonacular.com")
	cfg.ListenAddr = getEnvWithDefault("LISTEN_ADDR", ":8080")
	cfg.DataDir = getEnvWithDefault("DATA_DIR", "./data")

	originsStr := getEnvWithDefault("CORS_ORIGINS", "*")
	cfg.CORSOrigins = strings.Split(originsStr, ",")

	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAIAPIBase = getEnvWithDefault("OPENAI_API_BASE", "https://api.openai.com/v1")
	cfg.OpenAIModel = getEnvWithDefault("OPENAI_MODEL", "gpt-3.5-turbo")

	cfg.TelegramBotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	if chatIDStr != "" {
		chatID, err := strconv.ParseInt(chatIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_CHAT_ID must be an integer: %w", err)
		}
		cfg.TelegramChatID = chatID
	}

	intervalStr := getEnvWithDefault("ALERT_INTERVAL", "24h")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("ALERT_INTERVAL must be a duration: %w", err)
	}
	cfg.AlertInterval = interval

	// Log configuration with sensitive data redacted
	logCfg := *cfg
	if len(logCfg.SpoonacularAPIKey) > 8 {
		logCfg.SpoonacularAPIKey = logCfg.SpoonacularAPIKey[:8] + "...REDACTED..."
	}
	if len(logCfg.OpenAIAPIKey) > 8 {
		logCfg.OpenAIAPIKey = logCfg.OpenAIAPIKey[:8] + "...REDACTED..."
	}
	if len(logCfg.TelegramBotToken) > 8 {
		logCfg.TelegramBotToken = logCfg.TelegramBotToken[:8] + "...REDACTED..."
	}
	log.Printf("Configuration loaded: %+v", logCfg)
	return cfg, nil
}

// getEnvWithDefault returns the value of the environment variable or the default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
