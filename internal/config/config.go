package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration for the marketplace server
type Config struct {
	Addr           string
	GeminiAPIKey   string
	GeminiModel    string
	LeaderboardTTL time.Duration
	AICacheTTL     time.Duration
	AITimeout      time.Duration
	SeedDemoData   bool
}

// Load reads configuration from the environment, with an optional .env
// file for local development. A missing Gemini key is valid: caption
// generation falls back to canned responses.
func Load() Config {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	return Config{
		Addr:           addrFromEnv(),
		GeminiAPIKey:   strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:    envDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		LeaderboardTTL: envDurationDefault("LEADERBOARD_CACHE_TTL", time.Minute),
		AICacheTTL:     envDurationDefault("AI_CACHE_TTL", time.Hour),
		AITimeout:      envDurationDefault("AI_TIMEOUT", 10*time.Second),
		SeedDemoData:   envBoolDefault("SEED_DEMO_DATA", true),
	}
}

func addrFromEnv() string {
	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":5000"
}

func envDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envDurationDefault(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func envBoolDefault(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
