package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	FrontendBaseURL   string
	LoginRateLimit    string // ulule/limiter formatted rate, e.g. "10-M"

	// Analytics
	PosthogAPIKey   string
	PosthogEndpoint string

	// Attachment storage
	AttachmentsBucket string
	AWSRegion         string
	S3Endpoint        string // optional, for S3-compatible stores such as MinIO
	AWSAccessKeyID    string // optional; the default credential chain is used when empty
	AWSSecretKey      string
	AttachmentURLTTL  time.Duration

	// Event sink and dashboard
	EventQueueSize   int
	StaleOnHoldAfter time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "workorder-tracker")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("LOGIN_RATE_LIMIT", "10-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	viper.SetDefault("ATTACHMENTS_BUCKET", "work-order-files")
	viper.SetDefault("AWS_REGION", "eu-central-1")
	viper.SetDefault("S3_ENDPOINT", "")
	viper.SetDefault("AWS_ACCESS_KEY_ID", "")
	viper.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	viper.SetDefault("ATTACHMENT_URL_TTL", "1h")
	viper.SetDefault("EVENT_QUEUE_SIZE", 256)
	viper.SetDefault("STALE_ON_HOLD_AFTER", "72h")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == defaultJWTSecret {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = durationOrDefault("JWT_EXPIRY_DURATION", 12*time.Hour)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")

	cfg.AttachmentsBucket = viper.GetString("ATTACHMENTS_BUCKET")
	cfg.AWSRegion = viper.GetString("AWS_REGION")
	cfg.S3Endpoint = viper.GetString("S3_ENDPOINT")
	cfg.AWSAccessKeyID = viper.GetString("AWS_ACCESS_KEY_ID")
	cfg.AWSSecretKey = viper.GetString("AWS_SECRET_ACCESS_KEY")
	cfg.AttachmentURLTTL = durationOrDefault("ATTACHMENT_URL_TTL", time.Hour)

	cfg.EventQueueSize = viper.GetInt("EVENT_QUEUE_SIZE")
	if cfg.EventQueueSize <= 0 {
		log.Printf("Warning: Invalid EVENT_QUEUE_SIZE (%d). Defaulting to 256.\n", cfg.EventQueueSize)
		cfg.EventQueueSize = 256
	}
	cfg.StaleOnHoldAfter = durationOrDefault("STALE_ON_HOLD_AFTER", 72*time.Hour)

	return cfg, nil
}

// durationOrDefault parses a duration setting, falling back to def when it is invalid.
func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}
