package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Port string

	// CORS
	CORSAllowOrigins []string

	// Seed merchant credentials. Defaults match the documented test
	// merchant so existing clients work out of the box.
	SeedMerchantID string
	SeedAPIKey     string
	SeedAPISecret  string

	// ProcessingDelay is an artificial pause before a payment is captured,
	// for demoing the processing state in clients. Zero disables it.
	ProcessingDelay time.Duration
}

func Load() Config {
	return Config{
		Port:             getenv("PORT", "8000"),
		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),
		SeedMerchantID:   getenv("MERCHANT_ID", "550e8400-e29b-41d4-a716-446655440000"),
		SeedAPIKey:       getenv("API_KEY", "key_test_abc123"),
		SeedAPISecret:    getenv("API_SECRET", "secret_test_xyz789"),
		ProcessingDelay:  parseDuration(getenv("TEST_PROCESSING_DELAY", ""), 0),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
