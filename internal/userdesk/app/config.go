package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/aussiebroadwan/userdesk/pkg/jwtx"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	// DefaultSecretKey is the signing key used when JWT_SECRET_KEY is unset.
	// Anyone who knows it can mint sessions, so startup warns loudly.
	DefaultSecretKey = "your-super-secret-key"

	DefaultAdminUsername   = "admin"
	DefaultAdminPassword   = "password123"
	DefaultAdminPictureURL = "https://via.placeholder.com/150?text=Admin"
)

type Config struct {
	SecretKey           string        // HMAC key for session tokens (default: DefaultSecretKey)
	SessionTTL          time.Duration // Session token lifetime (default: 30m)
	SessionCookieName   string        // Cookie carrying the session token (default: access_token)
	SessionCookieSecure bool          // Set the Secure flag on the cookie (default: false)

	DatabaseDriver string // sqlite or postgres (default: sqlite)
	DatabaseFile   string // SQLite database path (default: users.db)
	DatabaseURL    string // Postgres DSN, required when DatabaseDriver is postgres

	BcryptCost int // Password hashing cost (default: bcrypt.DefaultCost)

	AdminUsername   string // Bootstrap admin username (default: admin)
	AdminPassword   string // Bootstrap admin password (default: password123)
	AdminPictureURL string // Bootstrap admin profile picture

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads the configuration from the environment, after loading a
// .env file from the working directory if there is one. Variables already set
// in the environment win over the file.
func LoadConfig() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	return Config{
		SecretKey:           getEnvOrDefault("JWT_SECRET_KEY", DefaultSecretKey),
		SessionTTL:          getEnvDurationOrDefault("SESSION_TTL", jwtx.DefaultSessionTTL),
		SessionCookieName:   getEnvOrDefault("SESSION_COOKIE_NAME", "access_token"),
		SessionCookieSecure: getEnvBoolOrDefault("SESSION_COOKIE_SECURE", false),

		DatabaseDriver: getEnvOrDefault("DATABASE_DRIVER", DriverSQLite),
		DatabaseFile:   getEnvOrDefault("DATABASE_FILE", "users.db"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),

		BcryptCost: getEnvIntOrDefault("BCRYPT_COST", bcrypt.DefaultCost),

		AdminUsername:   getEnvOrDefault("BOOTSTRAP_ADMIN_USERNAME", DefaultAdminUsername),
		AdminPassword:   getEnvOrDefault("BOOTSTRAP_ADMIN_PASSWORD", DefaultAdminPassword),
		AdminPictureURL: getEnvOrDefault("BOOTSTRAP_ADMIN_PICTURE_URL", DefaultAdminPictureURL),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}, nil
}

// Validate rejects configurations the service cannot start with.
func (c Config) Validate() error {
	var errs []error

	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			errs = append(errs, errors.New("DATABASE_FILE must not be empty"))
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown DATABASE_DRIVER %q", c.DatabaseDriver))
	}

	if c.SecretKey == "" {
		errs = append(errs, errors.New("JWT_SECRET_KEY must not be empty"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if c.SessionCookieName == "" {
		errs = append(errs, errors.New("SESSION_COOKIE_NAME must not be empty"))
	}
	if c.AdminUsername == "" || c.AdminPassword == "" {
		errs = append(errs, errors.New("bootstrap admin username and password must not be empty"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}

	return errors.Join(errs...)
}

func loadDotEnv() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
