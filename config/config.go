package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type SlackConfig struct {
	SigningSecret   string
	BotToken        string
	AlertWebhookURL string
}

// IsConfigured returns true if all required Slack configuration is present
func (c SlackConfig) IsConfigured() bool {
	return c.SigningSecret != "" && c.BotToken != ""
	// Note: AlertWebhookURL is optional
}

type AppConfig struct {
	// Core configuration (always required)
	DatabaseURL        string
	DatabaseSchema     string
	Port               string // Optional with default "8080"
	CORSAllowedOrigins string // Optional with default "*"
	Environment        string
	ServerLogsURL      string
	UseStrictConfig    bool // If true, error when the Slack integration is not fully configured

	SlackConfig SlackConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	databaseURL, err := getEnvRequired("DB_URL")
	if err != nil {
		return nil, err
	}

	databaseSchema, err := getEnvRequired("DB_SCHEMA")
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		DatabaseURL:        databaseURL,
		DatabaseSchema:     databaseSchema,
		Port:               getEnvWithDefault("PORT", "8080"),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		Environment:        getEnvWithDefault("ENVIRONMENT", "dev"),
		ServerLogsURL:      getEnvWithDefault("SERVER_LOGS_URL", ""),
		UseStrictConfig:    getEnvWithDefault("USE_STRICT_CONFIG", "true") == "true",

		SlackConfig: SlackConfig{
			SigningSecret:   os.Getenv("SLACK_SIGNING_SECRET"),
			BotToken:        os.Getenv("SLACK_BOT_OAUTH_TOKEN"),
			AlertWebhookURL: os.Getenv("SLACK_ALERT_WEBHOOK_URL"),
		},
	}

	if config.SlackConfig.IsConfigured() {
		log.Printf("✅ Slack integration configured")
	} else {
		log.Printf("⚠️ Slack integration not configured - webhook endpoints will reject requests")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("slack integration is not fully configured (USE_STRICT_CONFIG=true)")
		}
	}

	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
