package config

import (
	"os"
	"strings"
)

type Config struct {
	MongoURI          string
	RedisURI          string
	Port              string
	Environment       string   // ENV: production, development, etc.
	AllowedOrigins    []string // CORS: from ALLOWED_ORIGINS, comma separated
	StrictPagination  bool     // reject out-of-range pagination instead of clamping
	RateLimitDisabled bool     // skip Redis and the per-IP rate limiter
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))

	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	return &Config{
		MongoURI:          getEnv("MONGODB_URI", getEnv("MONGO_URI", "mongodb://localhost:27017/meshnet")),
		RedisURI:          getEnv("REDIS_URI", "redis://localhost:6379/0"),
		Port:              getEnv("PORT", "8080"),
		Environment:       env,
		AllowedOrigins:    allowedOrigins,
		StrictPagination:  boolEnv("STRICT_PAGINATION"),
		RateLimitDisabled: boolEnv("RATE_LIMIT_DISABLED"),
	}
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func boolEnv(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
