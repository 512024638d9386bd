package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	SMTP     SMTPConfig
	Archive  ArchiveConfig
}

type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds access-token signing configuration.
type JWTConfig struct {
	Secret      string
	TokenTTLMin int
}

// SMTPConfig mirrors the environment contract of the mail dispatcher:
// UseSSL selects implicit TLS, UseTLS pins the STARTTLS server name.
// Credentials are optional.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	UseTLS   bool
	UseSSL   bool
}

// ArchiveConfig holds the root directory for generated report artifacts.
type ArchiveConfig struct {
	Dir string
}

func Load() (*Config, error) {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "slipsalary"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	tokenTTL, err := strconv.Atoi(getEnv("TOKEN_TTL_MIN", "120"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL_MIN: %w", err)
	}

	config.JWT = JWTConfig{
		Secret:      getEnv("SECRET_KEY", "dev-secret"),
		TokenTTLMin: tokenTTL,
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	smtpUser := getEnv("SMTP_USERNAME", "")
	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		Port:     smtpPort,
		Username: smtpUser,
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("FROM_EMAIL", smtpUser),
		UseTLS:   getEnvBool("SMTP_USE_TLS", true),
		UseSSL:   getEnvBool("SMTP_USE_SSL", false),
	}

	config.Archive = ArchiveConfig{
		Dir: getEnv("ARCHIVE_DIR", "archive"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("SECRET_KEY is required")
	}
	if c.JWT.TokenTTLMin <= 0 {
		return fmt.Errorf("TOKEN_TTL_MIN must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return strings.EqualFold(value, "true")
}
