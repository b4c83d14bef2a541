package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBDriver       string // sqlite or postgres
	DBDSN          string // empty means a fresh in-memory sqlite store
	LogLevel       string
	DeliveryDelays []time.Duration
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		DBDriver:       getEnv("DB_DRIVER", "sqlite"),
		DBDSN:          getEnv("DB_DSN", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DeliveryDelays: parseDelays(getEnv("DELIVERY_DELAYS_MS", "500,1500,3000")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// parseDelays reads a comma-separated millisecond list. The delays must be
// strictly ascending so the delivery steps keep their relative order; a bad
// value falls back to the defaults.
func parseDelays(raw string) []time.Duration {
	parts := strings.Split(raw, ",")
	delays := make([]time.Duration, 0, len(parts))
	prev := time.Duration(-1)
	for _, p := range parts {
		ms, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || ms < 0 {
			log.Printf("Warning: invalid delivery delay %q, using defaults", raw)
			return []time.Duration{500 * time.Millisecond, 1500 * time.Millisecond, 3000 * time.Millisecond}
		}
		d := time.Duration(ms) * time.Millisecond
		if d <= prev {
			log.Printf("Warning: delivery delays %q not ascending, using defaults", raw)
			return []time.Duration{500 * time.Millisecond, 1500 * time.Millisecond, 3000 * time.Millisecond}
		}
		delays = append(delays, d)
		prev = d
	}
	return delays
}
