package config

import (
	"fmt"
	"os"
)

// Config holds everything the server needs from the environment.
type Config struct {
	Port            string
	CatalogDSN      string
	UsersDSN        string
	SessionSecret   string
	StripeSecretKey string
	StripeAPIURL    string
	BaseURL         string
	Currency        string
}

// Load reads configuration from environment variables. CATALOG_DATABASE_URL
// and USERS_DATABASE_URL keep the two stores separate; both fall back to the
// shared DATABASE_URL (or the DB_* variables) when not set.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		SessionSecret:   os.Getenv("SESSION_SECRET"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		StripeAPIURL:    getEnv("STRIPE_API_URL", "https://api.stripe.com/v1/checkout/sessions"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:8080"),
		Currency:        getEnv("CURRENCY", "usd"),
	}

	shared := sharedDSN()
	cfg.CatalogDSN = getEnv("CATALOG_DATABASE_URL", shared)
	cfg.UsersDSN = getEnv("USERS_DATABASE_URL", shared)

	if cfg.CatalogDSN == "" || cfg.UsersDSN == "" {
		return nil, fmt.Errorf("database configuration missing")
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}
	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is required")
	}
	return cfg, nil
}

func sharedDSN() string {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		return databaseURL
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	if host == "" || dbname == "" {
		return ""
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
