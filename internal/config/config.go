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
	Env  string
	Port string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Identity provider. Tokens are issued elsewhere; we only verify them.
	IDPJWTSecret string
	IDPIssuer    string
	IDPAudience  string

	// Invoice extraction collaborator
	ExtractionAPIURL  string
	ExtractionAPIKey  string
	ExtractionModel   string
	ExtractionTimeout time.Duration

	// Logging
	LogFile      string
	LogMaxSizeMB int

	MetricsNamespace string
	DefaultLanguage  string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "homeledger"),
		DBPassword: getEnv("DB_PASSWORD", "homeledger"),
		DBName:     getEnv("DB_NAME", "homeledger"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		IDPJWTSecret: getEnv("IDP_JWT_SECRET", "fallback-secret-key-for-dev-only"),
		IDPIssuer:    getEnv("IDP_ISSUER", ""),
		IDPAudience:  getEnv("IDP_AUDIENCE", ""),

		ExtractionAPIURL: getEnv("EXTRACTION_API_URL", ""),
		ExtractionAPIKey: getEnv("EXTRACTION_API_KEY", ""),
		ExtractionModel:  getEnv("EXTRACTION_MODEL", "gpt-4o-mini"),

		LogFile:          getEnv("LOG_FILE", ""),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "homeledger"),
		DefaultLanguage:  getEnv("DEFAULT_LANGUAGE", "en"),
	}

	timeoutStr := getEnv("EXTRACTION_TIMEOUT", "60s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		log.Printf("Warning: invalid EXTRACTION_TIMEOUT value '%s', falling back to 60s\n", timeoutStr)
		timeout = 60 * time.Second
	}
	config.ExtractionTimeout = timeout

	sizeStr := getEnv("LOG_MAX_SIZE_MB", "100")
	size, err := strconv.Atoi(sizeStr)
	if err != nil || size <= 0 {
		log.Printf("Warning: invalid LOG_MAX_SIZE_MB value '%s', falling back to 100\n", sizeStr)
		size = 100
	}
	config.LogMaxSizeMB = size

	return config, nil
}

// ExtractionEnabled reports whether an invoice extraction endpoint is configured.
func (c *Config) ExtractionEnabled() bool {
	return c.ExtractionAPIURL != "" && c.ExtractionAPIKey != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
