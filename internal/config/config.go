package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const defaultCatalogURL = "https://opensheet.elk.sh/1x2Rtyeyq3WR6yFybA8stGP0mdI2dlKvBz6fhx7FIjhQ/Sheet1"

// Account backends.
const (
	AccountBackendRecordAPI = "recordapi"
	AccountBackendPostgres  = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Catalog  CatalogConfig
	S3       S3Config
	Accounts AccountConfig
	Checkout CheckoutConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
	MigrationsPath  string
}

// RedisConfig holds the session mirror configuration.
type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	SessionTTL int // hours
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	APIKey string
}

// CatalogConfig holds the product catalog source configuration.
type CatalogConfig struct {
	URL          string
	Timeout      int // seconds
	SnapshotPath string
}

// S3Config holds AWS S3 configuration for catalog snapshots.
type S3Config struct {
	Enabled bool
	Bucket  string
	Region  string
	Prefix  string // Path prefix within bucket (e.g., "catalog/")
}

// AccountConfig selects and configures the account store.
type AccountConfig struct {
	Backend     string
	URL         string
	Base        string
	Table       string
	Token       string
	SyncTimeout int // seconds
}

// CheckoutConfig holds checkout pricing and payment simulation settings.
type CheckoutConfig struct {
	PaymentDelayMS int
	PlatformFee    int64
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "storefront"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
			MigrationsPath:  getEnv("DB_MIGRATIONS_PATH", "migrations"),
		},
		Redis: RedisConfig{
			Addr:       getEnv("REDIS_ADDR", "localhost:6379"),
			Password:   getEnv("REDIS_PASSWORD", ""),
			DB:         getEnvAsInt("REDIS_DB", 0),
			SessionTTL: getEnvAsInt("SESSION_TTL_HOURS", 720),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			APIKey: getEnv("API_KEY", ""),
		},
		Catalog: CatalogConfig{
			URL:          getEnv("CATALOG_URL", defaultCatalogURL),
			Timeout:      getEnvAsInt("CATALOG_TIMEOUT_SECONDS", 10),
			SnapshotPath: getEnv("CATALOG_SNAPSHOT_PATH", "data/catalog/snapshot.json.gz"),
		},
		S3: S3Config{
			Enabled: getEnvAsBool("S3_ENABLED", false),
			Bucket:  getEnv("S3_BUCKET", ""),
			Region:  getEnv("S3_REGION", "us-east-1"),
			Prefix:  getEnv("S3_PREFIX", "catalog/"),
		},
		Accounts: AccountConfig{
			Backend:     getEnv("ACCOUNT_BACKEND", AccountBackendRecordAPI),
			URL:         getEnv("RECORD_API_URL", "https://api.airtable.com/v0"),
			Base:        getEnv("RECORD_API_BASE", ""),
			Table:       getEnv("RECORD_API_TABLE", "user"),
			Token:       getEnv("RECORD_API_TOKEN", ""),
			SyncTimeout: getEnvAsInt("ACCOUNT_SYNC_TIMEOUT_SECONDS", 10),
		},
		Checkout: CheckoutConfig{
			PaymentDelayMS: getEnvAsInt("PAYMENT_DELAY_MS", 2000),
			PlatformFee:    int64(getEnvAsInt("PLATFORM_FEE", 2000)),
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

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Database.Port)
	}

	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Database.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.Database.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.Database.MinConnections > c.Database.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	if c.Auth.APIKey == "" {
		return fmt.Errorf("API key is required")
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

	if c.Redis.Addr == "" {
		return fmt.Errorf("redis address is required")
	}

	if c.Redis.SessionTTL < 1 {
		return fmt.Errorf("session TTL must be at least 1 hour")
	}

	if c.Catalog.URL == "" {
		return fmt.Errorf("catalog URL is required")
	}

	if c.Catalog.Timeout < 1 {
		return fmt.Errorf("catalog timeout must be at least 1 second")
	}

	if c.S3.Enabled {
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when S3 is enabled")
		}
		if c.S3.Region == "" {
			return fmt.Errorf("S3 region is required when S3 is enabled")
		}
	}

	switch c.Accounts.Backend {
	case AccountBackendRecordAPI:
		if c.Accounts.Base == "" {
			return fmt.Errorf("record API base is required for the %s backend", AccountBackendRecordAPI)
		}
		if c.Accounts.Token == "" {
			return fmt.Errorf("record API token is required for the %s backend", AccountBackendRecordAPI)
		}
	case AccountBackendPostgres:
	default:
		return fmt.Errorf("invalid account backend: %s (must be %s or %s)",
			c.Accounts.Backend, AccountBackendRecordAPI, AccountBackendPostgres)
	}

	if c.Accounts.SyncTimeout < 1 {
		return fmt.Errorf("account sync timeout must be at least 1 second")
	}

	if c.Checkout.PaymentDelayMS < 0 {
		return fmt.Errorf("payment delay cannot be negative")
	}

	if c.Checkout.PlatformFee < 0 {
		return fmt.Errorf("platform fee cannot be negative")
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// SessionTTLDuration returns how long an idle session is kept.
func (c *RedisConfig) SessionTTLDuration() time.Duration {
	return time.Duration(c.SessionTTL) * time.Hour
}

// PaymentDelay returns the simulated payment processing time.
func (c *CheckoutConfig) PaymentDelay() time.Duration {
	return time.Duration(c.PaymentDelayMS) * time.Millisecond
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
