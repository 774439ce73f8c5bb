package config

import (
	"os"
	"strings"
)

// Store drivers
const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
	StoreDriverMySQL    = "mysql"
)

// Session backends
const (
	SessionStoreCookie = "cookie"
	SessionStoreRedis  = "redis"
)

type Config struct {
	Port             string
	GinMode          string
	StoreDriver      string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	SessionStore     string
	RedisHost        string
	RedisPort        string
	SessionSecret    string
	CORSAllowOrigins []string
}

func Load() *Config {
	driver := strings.ToLower(getEnv("STORE_DRIVER", StoreDriverMemory))

	return &Config{
		Port:             getEnv("PORT", "8080"),
		GinMode:          getEnv("GIN_MODE", "debug"),
		StoreDriver:      driver,
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", defaultDBPort(driver)),
		DBUser:           getEnv("DB_USER", "marketplace"),
		DBPassword:       getEnv("DB_PASSWORD", "marketplace"),
		DBName:           getEnv("DB_NAME", "marketplace"),
		SessionStore:     strings.ToLower(getEnv("SESSION_STORE", SessionStoreCookie)),
		RedisHost:        getEnv("REDIS_HOST", "localhost"),
		RedisPort:        getEnv("REDIS_PORT", "6379"),
		SessionSecret:    getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
	}
}

// IsRelease reports whether gin runs in release mode.
func (c *Config) IsRelease() bool {
	return c.GinMode == "release"
}

func defaultDBPort(driver string) string {
	if driver == StoreDriverMySQL {
		return "3306"
	}
	return "5432"
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
