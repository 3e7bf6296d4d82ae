package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	API         APIConfig
	Redis       RedisConfig
	Session     SessionConfig
	Chat        ChatConfig
	Catalog     CatalogConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// APIConfig points at the remote marketplace backend.
type APIConfig struct {
	BaseURL string
	WSURL   string
	Timeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// SessionConfig controls the durable token/user store. The file store is used
// when no Redis host is configured.
type SessionConfig struct {
	FilePath   string
	FileSecret string
}

type ChatConfig struct {
	PollInterval time.Duration
}

type CatalogConfig struct {
	CacheTTL time.Duration
}

// Load reads configuration from the environment, with .env support for
// local development.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getenv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getenv("SERVER_PORT", "8080"),
			ReadTimeout:  getenvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getenvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getenvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		API: APIConfig{
			BaseURL: getenv("API_BASE_URL", "http://localhost:8000/api"),
			WSURL:   getenv("API_WS_URL", "ws://localhost:8000/ws"),
			Timeout: getenvDuration("API_TIMEOUT", 30*time.Second),
		},
		Redis: RedisConfig{
			Host:     getenv("REDIS_HOST", ""),
			Port:     getenvInt("REDIS_PORT", 6379),
			Password: getenv("REDIS_PASSWORD", ""),
			DB:       getenvInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			FilePath:   getenv("SESSION_FILE_PATH", ".taskora-session"),
			FileSecret: getenv("SESSION_FILE_SECRET", "taskora-dev-secret"),
		},
		Chat: ChatConfig{
			PollInterval: getenvDuration("CHAT_POLL_INTERVAL", 10*time.Second),
		},
		Catalog: CatalogConfig{
			CacheTTL: getenvDuration("CATALOG_CACHE_TTL", 5*time.Minute),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}
