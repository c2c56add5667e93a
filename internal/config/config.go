package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App          AppConfig
	Database     DatabaseConfig
	JWT          JWTConfig
	OAuth2Google OAuth2GoogleConfig
	Storage      StorageConfig
	Preferences  PreferencesConfig
}

// AppConfig holds application-level settings. CompanyEmailDomain restricts
// self-registration to one corporate domain; empty disables the check.
type AppConfig struct {
	Port               int
	Env                string
	LogLevel           string
	FrontendURL        string
	CompanyEmailDomain string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration. ExpiryWarnThreshold is how much
// remaining refresh-token lifetime triggers a forced re-login.
type JWTConfig struct {
	Secret              string
	AccessExpiration    string
	RefreshExpiration   string
	ExpiryWarnThreshold time.Duration
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

type StorageConfig struct {
	Type     string
	BasePath string
	BaseURL  string
}

// PreferencesConfig points at the bbolt file backing per-user UI preferences.
type PreferencesConfig struct {
	Path string
}

func Load() (*Config, error) {
	// A missing .env file is fine in production; env vars win either way.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "opshub"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:               appPort,
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3000"),
		CompanyEmailDomain: getEnv("COMPANY_EMAIL_DOMAIN", "opshub.io"),
	}

	warnThreshold, err := time.ParseDuration(getEnv("JWT_EXPIRY_WARN_THRESHOLD", "120h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY_WARN_THRESHOLD: %w", err)
	}

	config.JWT = JWTConfig{
		Secret:              getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration:    getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
		RefreshExpiration:   getEnv("JWT_REFRESH_EXPIRATION_TIME", "720h"),
		ExpiryWarnThreshold: warnThreshold,
	}

	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("CLIENT_ID", ""),
		ClientSecret: getEnv("CLIENT_SECRET", ""),
		RedirectURL:  getEnv("REDIRECT_URL", ""),
		Scopes:       getEnvSlice("SCOPES"),
	}

	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
	}

	config.Preferences = PreferencesConfig{
		Path: getEnv("PREFERENCES_DB_PATH", "./data/preferences.db"),
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
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.JWT.ExpiryWarnThreshold <= 0 {
		return fmt.Errorf("JWT_EXPIRY_WARN_THRESHOLD must be positive")
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

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
