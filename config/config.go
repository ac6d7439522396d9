package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Database configuration
	DatabaseURL string

	// HTTP server configuration
	ListenAddr string

	// Payment processor configuration
	StripeAPIKey string

	// Platform admin profile IDs allowed to process any payout request
	PlatformAdminIDs []uuid.UUID

	// Rate limiting
	RateLimitPerMinute int

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from the environment, with .env as a fallback
func load() (*Config, error) {
	// Missing .env is fine; real environments set variables directly
	_ = godotenv.Load()

	config := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		ListenAddr:         os.Getenv("LISTEN_ADDR"),
		StripeAPIKey:       os.Getenv("STRIPE_API_KEY"),
		RateLimitPerMinute: 60,
		Environment:        os.Getenv("ENVIRONMENT"),
	}

	if config.ListenAddr == "" {
		config.ListenAddr = ":8080"
	}

	if limit := os.Getenv("RATE_LIMIT_PER_MINUTE"); limit != "" {
		if parsedLimit, err := strconv.Atoi(limit); err == nil {
			config.RateLimitPerMinute = parsedLimit
		}
	}

	// Parse platform admin IDs
	if adminIDs := os.Getenv("PLATFORM_ADMIN_IDS"); adminIDs != "" {
		for _, idStr := range strings.Split(adminIDs, ",") {
			idStr = strings.TrimSpace(idStr)
			if idStr == "" {
				continue
			}
			if id, err := uuid.Parse(idStr); err == nil {
				config.PlatformAdminIDs = append(config.PlatformAdminIDs, id)
			}
		}
	}

	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		if config.StripeAPIKey == "" {
			return nil, fmt.Errorf("STRIPE_API_KEY is required")
		}
	}

	return config, nil
}
