package config

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mayarj/Ecommerceclientappdesign/pricing"
	"github.com/shopspring/decimal"
)

type Config struct {
	// Server
	Port           string
	Environment    string
	LogLevel       string
	AllowedOrigins []string

	// Auth
	JWTSecret string
	// JWTSecretGenerated is set when JWT_SECRET was missing and a random
	// secret was made up for this process.
	JWTSecretGenerated bool
	AdminAPIKey        string

	// Catalog database
	DatabaseURL string
	CatalogDSN  string

	// Storefront
	DeliveryFees   pricing.DeliveryFees
	SessionTTL     time.Duration
	SweepInterval  time.Duration
	SeedDemoOrders bool
}

func Load() *Config {
	defaults := pricing.DefaultDeliveryFees()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),

		JWTSecret:   os.Getenv("JWT_SECRET"),
		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		CatalogDSN:  getEnv("CATALOG_DSN", "file::memory:?cache=shared"),

		DeliveryFees: pricing.DeliveryFees{
			USD: getEnvAsDecimal("DELIVERY_FEE_USD", defaults.USD),
			SYP: getEnvAsDecimal("DELIVERY_FEE_SYP", defaults.SYP),
		},
		SessionTTL:     getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		SweepInterval:  getEnvAsDuration("SESSION_SWEEP_INTERVAL", 10*time.Minute),
		SeedDemoOrders: getEnvAsBool("SEED_DEMO_ORDERS", true),
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = randomSecret()
		cfg.JWTSecretGenerated = true
	}
	return cfg
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

// getEnvAsDuration accepts Go durations ("30m") or a plain number of seconds.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	if secs := getEnvAsInt(key, 0); secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

func getEnvAsDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(os.Getenv(key)))
	if err != nil || d.IsNegative() {
		return defaultValue
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "dev-only-secret"
	}
	return hex.EncodeToString(b)
}
