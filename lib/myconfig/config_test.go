package myconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("SITE_URL", "")
		t.Setenv("POLL_INTERVAL_MILLIS", "")
		t.Setenv("POLL_MAX_ATTEMPTS", "")
		t.Setenv("ENV", "")

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "http://localhost:8080", cfg.Server.SiteURL)
		assert.Equal(t, 2*time.Second, cfg.Polling.Interval)
		assert.Equal(t, 10, cfg.Polling.MaxAttempts)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("From environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test")
		t.Setenv("REDIS_ADDR", "localhost:6379")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("ENV", "production")

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, "whsec_test", cfg.Stripe.WebhookSecret)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
		assert.Equal(t, 2, cfg.Redis.DB)
		assert.True(t, cfg.IsProduction())
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Env: "production"},
			Stripe: StripeConfig{APIKey: "sk_live_key", WebhookSecret: "whsec_live"},
			Auth:   AuthConfig{JWTSecret: "a-long-random-secret"},
		}
	}

	t.Run("Complete production config", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("Default jwt secret in production", func(t *testing.T) {
		cfg := valid()
		cfg.Auth.JWTSecret = defaultJWTSecret

		err := cfg.Validate()

		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("Missing stripe secrets in production", func(t *testing.T) {
		cfg := valid()
		cfg.Stripe = StripeConfig{}

		err := cfg.Validate()

		assert.ErrorContains(t, err, "STRIPE_API_KEY")
		assert.ErrorContains(t, err, "STRIPE_WEBHOOK_SECRET")
	})

	t.Run("Development allows defaults", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Env = "development"
		cfg.Auth.JWTSecret = defaultJWTSecret
		cfg.Stripe = StripeConfig{}

		assert.NoError(t, cfg.Validate())
	})
}
