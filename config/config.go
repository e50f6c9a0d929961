package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Mongo   MongoConfig
	Auth    AuthConfig
	Payment PaymentConfig
	Mail    MailConfig
	Logger  LoggerConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port int
}

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI      string
	User     string
	Password string
	Cluster  string
	Database string
	Timeout  time.Duration
}

// AuthConfig holds token signing configuration.
type AuthConfig struct {
	TokenSecret           string
	TokenTTL              time.Duration
	ProtectAdminPromotion bool
}

// PaymentConfig holds payment processor configuration.
type PaymentConfig struct {
	SecretKey string
	Currency  string
}

// MailConfig selects the receipt mail provider.
type MailConfig struct {
	Provider      string // "none", "postmark" or "sendgrid"
	PostmarkToken string
	SendgridKey   string
	Sender        string
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// Load reads an optional .env file and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvAsInt("PORT", 5000),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", ""),
			User:     getEnv("DB_USER", ""),
			Password: getEnv("DB_PASS", ""),
			Cluster:  getEnv("DB_CLUSTER", "cluster0.hcsitps.mongodb.net"),
			Database: getEnv("DB_NAME", "bistroDB"),
			Timeout:  time.Duration(getEnvAsInt("MONGO_TIMEOUT", 10)) * time.Second,
		},
		Auth: AuthConfig{
			TokenSecret:           getEnv("ACCESS_TOKEN_SECRET", ""),
			TokenTTL:              getEnvAsDuration("TOKEN_TTL", time.Hour),
			ProtectAdminPromotion: getEnvAsBool("PROTECT_ADMIN_PROMOTION", false),
		},
		Payment: PaymentConfig{
			SecretKey: getEnv("PAYMENT_SECRET_KEY", ""),
			Currency:  getEnv("PAYMENT_CURRENCY", "usd"),
		},
		Mail: MailConfig{
			Provider:      getEnv("MAIL_PROVIDER", "none"),
			PostmarkToken: getEnv("POSTMARK_API_TOKEN", ""),
			SendgridKey:   getEnv("SENDGRID_API_KEY", ""),
			Sender:        getEnv("EMAIL_SENDER", ""),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Mongo.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Mongo.Timeout <= 0 {
		return fmt.Errorf("mongo timeout must be positive")
	}

	if c.Auth.TokenSecret == "" {
		return fmt.Errorf("ACCESS_TOKEN_SECRET is required")
	}

	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}

	if c.Payment.Currency == "" {
		return fmt.Errorf("payment currency is required")
	}

	switch c.Mail.Provider {
	case "none":
	case "postmark":
		if c.Mail.PostmarkToken == "" {
			return fmt.Errorf("POSTMARK_API_TOKEN is required when mail provider is postmark")
		}
	case "sendgrid":
		if c.Mail.SendgridKey == "" {
			return fmt.Errorf("SENDGRID_API_KEY is required when mail provider is sendgrid")
		}
	default:
		return fmt.Errorf("invalid mail provider: %s (must be none, postmark or sendgrid)", c.Mail.Provider)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// ConnectionString returns the MongoDB URI. An explicit MONGO_URI wins,
// otherwise Atlas credentials are used when present.
func (c *MongoConfig) ConnectionString() string {
	if c.URI != "" {
		return c.URI
	}
	if c.User != "" && c.Password != "" {
		return fmt.Sprintf(
			"mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
			c.User,
			c.Password,
			c.Cluster,
		)
	}
	return "mongodb://localhost:27017"
}

// Address returns the server listen address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
