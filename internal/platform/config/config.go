package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port             string
	IsProduction     bool
	DBPath           string
	RateLimit        string
	NotifyGatewayURL string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Environment variables override .env values which override the
// defaults.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DB_PATH", "pe_backend.db")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("NOTIFY_GATEWAY_URL", "")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:             viper.GetString("PORT"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		DBPath:           viper.GetString("DB_PATH"),
		RateLimit:        viper.GetString("RATE_LIMIT"),
		NotifyGatewayURL: viper.GetString("NOTIFY_GATEWAY_URL"),
	}

	if cfg.NotifyGatewayURL == "" {
		log.Println("NOTIFY_GATEWAY_URL not set; WhatsApp receipts will only be logged.")
	}

	return cfg, nil
}
