package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Storage  StorageConfig
	LLM      LLMConfig
	Auth     AuthConfig
	Pipeline PipelineConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"meeting_pipeline"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// StorageConfig holds object storage configuration for transcript archival
type StorageConfig struct {
	Enabled         bool   `envconfig:"STORAGE_ENABLED" default:"false"`
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"meeting-transcripts"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// LLMConfig holds summarization provider configuration
type LLMConfig struct {
	// Provider selects the summarizer backend: "openai" or "gemini"
	Provider    string  `envconfig:"LLM_PROVIDER" default:"openai"`
	APIKey      string  `envconfig:"LLM_API_KEY"`
	BaseURL     string  `envconfig:"LLM_BASE_URL" default:"https://api.openai.com"`
	Model       string  `envconfig:"LLM_MODEL" default:"gpt-4o"`
	Temperature float64 `envconfig:"LLM_TEMPERATURE" default:"0.3"`
	MaxTokens   int     `envconfig:"LLM_MAX_TOKENS" default:"8000"`
}

// AuthConfig holds service auth configuration
type AuthConfig struct {
	// WebhookSecret signs trigger event bodies (HMAC SHA-256)
	WebhookSecret string `envconfig:"WEBHOOK_SECRET"`
	// ServiceTokenSecret verifies bearer tokens on read endpoints
	ServiceTokenSecret string `envconfig:"SERVICE_TOKEN_SECRET"`
}

// PipelineConfig holds worker pool configuration
type PipelineConfig struct {
	WorkerCount  int `envconfig:"PIPELINE_WORKER_COUNT" default:"2"`
	PollInterval int `envconfig:"PIPELINE_POLL_INTERVAL" default:"5"` // seconds
	JobTimeout   int `envconfig:"PIPELINE_JOB_TIMEOUT" default:"300"` // seconds
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.LLM.Provider != "openai" && c.LLM.Provider != "gemini" {
		return fmt.Errorf("LLM_PROVIDER must be \"openai\" or \"gemini\", got %q", c.LLM.Provider)
	}
	if c.Server.Environment == "production" && c.Auth.WebhookSecret == "" {
		return fmt.Errorf("WEBHOOK_SECRET is required in production")
	}
	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
