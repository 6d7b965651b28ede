package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type SlackConfig struct {
	AlertWebhookURL         string
	AnnouncementsWebhookURL string
}

// IsConfigured returns true if Slack announcement delivery is configured
func (c SlackConfig) IsConfigured() bool {
	return c.AnnouncementsWebhookURL != ""
	// Note: AlertWebhookURL is optional - alerts are skipped without it
}

type DiscordConfig struct {
	BotToken              string
	AnnouncementChannelID string
}

// IsConfigured returns true if Discord announcement delivery is configured
func (c DiscordConfig) IsConfigured() bool {
	return c.BotToken != "" &&
		c.AnnouncementChannelID != ""
}

type AppConfig struct {
	// Core configuration (always required)
	DatabaseURL        string
	DatabaseSchema     string
	Port               string // Optional with default "8080"
	CORSAllowedOrigins string // Optional with default "*"
	Environment        string
	ServerLogsURL      string
	StaticDir          string // Directory holding the frontend assets
	UseStrictConfig    bool   // If true, error when any integration is not fully configured

	// Notification integrations (grouped)
	SlackConfig   SlackConfig
	DiscordConfig DiscordConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	// Core required configuration
	databaseURL, err := getEnvRequired("DB_URL")
	if err != nil {
		return nil, err
	}

	databaseSchema, err := getEnvRequired("DB_SCHEMA")
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		// Core configuration
		DatabaseURL:        databaseURL,
		DatabaseSchema:     databaseSchema,
		Port:               getEnvWithDefault("PORT", "8080"),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		Environment:        getEnvWithDefault("ENVIRONMENT", "dev"),
		ServerLogsURL:      getEnvWithDefault("SERVER_LOGS_URL", ""),
		StaticDir:          getEnvWithDefault("STATIC_DIR", "static"),
		UseStrictConfig:    getEnvWithDefault("USE_STRICT_CONFIG", "false") == "true",

		// Slack notifications (optional)
		SlackConfig: SlackConfig{
			AlertWebhookURL:         os.Getenv("SLACK_ALERT_WEBHOOK_URL"),
			AnnouncementsWebhookURL: os.Getenv("SLACK_ANNOUNCEMENTS_WEBHOOK_URL"),
		},

		// Discord notifications (optional)
		DiscordConfig: DiscordConfig{
			BotToken:              os.Getenv("DISCORD_BOT_TOKEN"),
			AnnouncementChannelID: os.Getenv("DISCORD_ANNOUNCEMENT_CHANNEL_ID"),
		},
	}

	// Log which integrations are configured
	if config.SlackConfig.IsConfigured() {
		log.Printf("✅ Slack notifications configured")
	} else {
		log.Printf("⚠️ Slack notifications not configured - announcements will not be posted to Slack")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("slack notifications are not fully configured (USE_STRICT_CONFIG=true)")
		}
	}

	if config.DiscordConfig.IsConfigured() {
		log.Printf("✅ Discord notifications configured")
	} else {
		log.Printf("⚠️ Discord notifications not configured - announcements will not be posted to Discord")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("discord notifications are not fully configured (USE_STRICT_CONFIG=true)")
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
