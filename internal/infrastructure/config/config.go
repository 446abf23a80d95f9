// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MongoDB
	MongoURI           string
	MongoDB            string
	MongoUser          string
	MongoPassword      string
	LaunchesCollection string
	WebhooksCollection string

	// Upstream API
	SpaceXBaseURL string

	// Redis fetch cache; empty addr disables caching
	RedisAddr     string
	RedisPassword string
	CacheExpiry   time.Duration

	// Pipeline
	SyncInterval time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		MongoURI:           getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:            getEnv("MONGODB_DB_NAME", "spacex_data"),
		MongoUser:          getEnv("MONGODB_USERNAME", ""),
		MongoPassword:      getEnv("MONGODB_PASSWORD", ""),
		LaunchesCollection: getEnv("MONGODB_LAUNCHES_COLLECTION", "launches"),
		WebhooksCollection: getEnv("MONGODB_WEBHOOKS_COLLECTION", "webhooks"),

		SpaceXBaseURL: getEnv("SPACEX_API_BASE_URL", "https://api.spacexdata.com/v4"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		CacheExpiry:   time.Duration(getEnvAsInt("CACHE_EXPIRY_MINUTES", 5)) * time.Minute,

		SyncInterval: time.Duration(getEnvAsInt("DATA_SYNC_INTERVAL_MINUTES", 60)) * time.Minute,
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
