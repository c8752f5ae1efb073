package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabaseType   string // sqlite | postgres | mysql | memory
	DatabasePath   string
	DatabaseURL    string
	MigrationsPath string
	DeviceSecret   string        // HMAC key for the device token
	DeviceTokenTTL time.Duration // how long a device cookie stays valid
	SeedOnStart    bool
}

// Load reads configuration from the environment (optionally preloaded from
// .env) with sensible defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env: %v", err)
	}

	return &Config{
		ServerPort:     getEnv("PORT", "8080"),
		DatabaseType:   getEnv("DB_TYPE", "sqlite"),
		DatabasePath:   getEnv("DB_PATH", "./certquiz.db"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		DeviceSecret:   getEnv("DEVICE_TOKEN_SECRET", "dev-only-device-secret"),
		DeviceTokenTTL: 2 * 365 * 24 * time.Hour,
		SeedOnStart:    getEnvBool("SEED_ON_START", true),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
