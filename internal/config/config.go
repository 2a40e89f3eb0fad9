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
	Port             string
	GinMode          string
	LogLevel         string
	LogFile          string
	SeedFile         string
	CORSOrigins      []string
	JWTSecret        string
	DefaultAuthor    string
	SimulatedLatency time.Duration
	RecentLimit      int
}

// Load reads configuration from the environment, after loading a .env file
// if one is present. Malformed numeric values fall back to their defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		LogFile:       getEnv("LOG_FILE", ""),
		SeedFile:      getEnv("SEED_FILE", ""),
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		DefaultAuthor: getEnv("DEFAULT_AUTHOR", "Municipal Administrator"),
		RecentLimit:   5,
	}

	if d, err := time.ParseDuration(getEnv("SIMULATED_LATENCY", "0s")); err == nil && d > 0 {
		cfg.SimulatedLatency = d
	}
	if n, err := strconv.Atoi(getEnv("RECENT_LIMIT", "5")); err == nil && n > 0 {
		cfg.RecentLimit = n
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
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
