package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Redis   RedisConfig
	Session SessionConfig
	Limit   LimitConfig
}

type ServerConfig struct {
	Addr string
}

type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	CookieName string
	TTL        time.Duration
}

type LimitConfig struct {
	Rate string
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	backendTimeout, _ := strconv.Atoi(getEnv("BACKEND_TIMEOUT_SECONDS", "10"))
	sessionTTL, _ := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "12"))

	return Config{
		Server: ServerConfig{
			Addr: getEnv("CONSOLE_ADDR", ":8080"),
		},
		Backend: BackendConfig{
			BaseURL: getEnv("AUDITING_API_URL", "http://localhost:9000/auditing-api"),
			Timeout: time.Duration(backendTimeout) * time.Second,
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE", "xcauditing_session"),
			TTL:        time.Duration(sessionTTL) * time.Hour,
		},
		Limit: LimitConfig{
			Rate: getEnv("RATE_LIMIT", "120-M"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
