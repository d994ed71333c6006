package config

import (
	"os"
	"time"
)

type Config struct {
	AppPort string

	// Token signing. The default secret matches the value the original
	// service shipped with, so existing clients and fixtures keep
	// working; override it in any real deployment.
	TokenSecret string
	TokenTTL    time.Duration

	// Session store. When RedisAddr is empty the in-memory store is
	// used. SessionTTL of zero means sessions live for the process
	// lifetime.
	SessionTTL    time.Duration
	RedisAddr     string
	RedisPassword string
}

func Load() Config {

	cfg := Config{

		AppPort: getEnv("APP_PORT", "5000"),

		TokenSecret: getEnv("TOKEN_SECRET", "access"),
		TokenTTL:    getDuration("TOKEN_TTL", time.Hour),

		SessionTTL:    getDuration("SESSION_TTL", 0),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}

	return cfg

}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
