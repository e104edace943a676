package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	APIKey         string   // API key for ranking endpoints
	AdminAPIKey    string   // API key required for catalog sync endpoints
	TrustedProxies []string // proxy IPs whose X-Forwarded-For headers are honored

	// Semantic search credentials. All three must be present for the
	// semantic path to activate; otherwise ranking degrades to the pure
	// rule-based pipeline.
	VectorDBURL     string
	VectorDBKey     string
	OpenRouterKey   string
	OpenRouterURL   string
	EmbeddingModel  string
	CompletionModel string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		ServiceName: getEnv("SERVICE_NAME", "bouncematch"),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "bouncematch"),

		APIKey:      getEnv("API_KEY", ""),
		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),

		VectorDBURL:     getEnv("VECTOR_DB_URL", ""),
		VectorDBKey:     getEnv("VECTOR_DB_KEY", ""),
		OpenRouterKey:   getEnv("OPENROUTER_API_KEY", ""),
		OpenRouterURL:   getEnv("OPENROUTER_URL", "https://openrouter.ai/api/v1"),
		EmbeddingModel:  getEnv("EMBEDDING_MODEL", "openai/text-embedding-3-small"),
		CompletionModel: getEnv("COMPLETION_MODEL", "openai/gpt-4o-mini"),
	}

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, trimmed)
			}
		}
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}
	if cfg.AdminAPIKey == "" {
		return nil, fmt.Errorf("ADMIN_API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// SemanticEnabled reports whether the semantic augmentation path can run.
// Missing any credential degrades ranking to rule-based scoring only.
func (c *Config) SemanticEnabled() bool {
	return c.VectorDBURL != "" && c.VectorDBKey != "" && c.OpenRouterKey != ""
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// GetVectorDBConnString returns the connection string for the vector store.
// The store lives in its own database; the key is the role password.
func (c *Config) GetVectorDBConnString() string {
	return fmt.Sprintf("%s?sslmode=require&password=%s", c.VectorDBURL, c.VectorDBKey)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
