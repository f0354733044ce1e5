package myconfig

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "change-me-in-production"

type Config struct {
	Server   ServerConfig
	Stripe   StripeConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Polling  PollingConfig
}

type ServerConfig struct {
	Port    string
	Env     string
	SiteURL string
}

type StripeConfig struct {
	APIKey         string
	WebhookSecret  string
	PublishableKey string
}

type DatabaseConfig struct {
	URL string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret          string
	TokenTTL           time.Duration
	GoogleClientID     string
	GoogleClientSecret string
}

type PollingConfig struct {
	Interval    time.Duration
	MaxAttempts int
}

// Load reads an optional .env file and then the environment.
func Load() *Config {
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	tokenTTLHours, _ := strconv.Atoi(getEnv("TOKEN_TTL_HOURS", "24"))
	pollIntervalMillis, _ := strconv.Atoi(getEnv("POLL_INTERVAL_MILLIS", "2000"))
	pollMaxAttempts, _ := strconv.Atoi(getEnv("POLL_MAX_ATTEMPTS", "10"))

	cfg := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			Env:     getEnv("ENV", "development"),
			SiteURL: getEnv("SITE_URL", "http://localhost:8080"),
		},
		Stripe: StripeConfig{
			APIKey:         getEnv("STRIPE_API_KEY", ""),
			WebhookSecret:  getEnv("STRIPE_WEBHOOK_SECRET", ""),
			PublishableKey: getEnv("STRIPE_PUBLISHABLE_KEY", ""),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Auth: AuthConfig{
			JWTSecret:          getEnv("JWT_SECRET", defaultJWTSecret),
			TokenTTL:           time.Duration(tokenTTLHours) * time.Hour,
			GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		},
		Polling: PollingConfig{
			Interval:    time.Duration(pollIntervalMillis) * time.Millisecond,
			MaxAttempts: pollMaxAttempts,
		},
	}

	log.Printf("Config loaded: env=%s, port=%s, site=%s", cfg.Server.Env, cfg.Server.Port, cfg.Server.SiteURL)
	return cfg
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Validate refuses a production configuration that would accept forged tokens or webhooks.
func (c *Config) Validate() error {
	if !c.IsProduction() {
		return nil
	}

	var errs []error
	if c.Auth.JWTSecret == "" || c.Auth.JWTSecret == defaultJWTSecret {
		errs = append(errs, errors.New("JWT_SECRET must be set"))
	}
	if c.Stripe.APIKey == "" {
		errs = append(errs, errors.New("STRIPE_API_KEY must be set"))
	}
	if c.Stripe.WebhookSecret == "" {
		errs = append(errs, errors.New("STRIPE_WEBHOOK_SECRET must be set"))
	}
	return errors.Join(errs...)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
