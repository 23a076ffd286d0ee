package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer         string // Issuer claim for session tokens (default: aikido-backoffice)
	BootstrapToken string // Optional: pre-shared token required to perform bootstrap

	// SuperAdminEmail marks the one account whose role can never be changed
	// and which can never be deleted. Required in production.
	SuperAdminEmail string

	DatabaseFile   string        // Path to SQLite database file (default: ./backoffice.db)
	PepperFile     string        // Path to password-hashing pepper file (default: ./pepper)
	SessionKeyFile string        // Path to Ed25519 session key (empty: ephemeral key)
	SessionTTL     time.Duration // Session token lifetime (default: 12h)
	InviteTTL      time.Duration // Invitation lifetime (default: 168h)
	ResetTTL       time.Duration // Password reset token lifetime (default: 1h)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		Issuer:          getEnvOrDefault("BACKOFFICE_ISSUER", "aikido-backoffice"),
		BootstrapToken:  os.Getenv("BOOTSTRAP_TOKEN"),
		SuperAdminEmail: os.Getenv("SUPER_ADMIN_EMAIL"),

		DatabaseFile:   getEnvOrDefault("BACKOFFICE_DATABASE_FILE", "backoffice.db"),
		PepperFile:     getEnvOrDefault("BACKOFFICE_PEPPER_FILE", "pepper"),
		SessionKeyFile: os.Getenv("BACKOFFICE_SESSION_KEY_FILE"),
		SessionTTL:     getEnvDurationOrDefault("SESSION_TTL", 12*time.Hour),
		InviteTTL:      getEnvDurationOrDefault("INVITE_TTL", 7*24*time.Hour),
		ResetTTL:       getEnvDurationOrDefault("RESET_TTL", 1*time.Hour),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
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

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
