package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration, resolved from environment variables
type Config struct {
	Env    string
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	JWT    JWTConfig
	CORS   CORSConfig
	Ban    BanConfig
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port int
}

// DBConfig MySQL connection settings
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// RedisConfig redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// JWTConfig token signing settings
type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
	RefreshIn time.Duration
}

// CORSConfig cross-origin settings
type CORSConfig struct {
	AllowOrigins string
}

// BanConfig supplies the ban policy consumed by the ban-issuing endpoint
// and the ban classification used by the moderation core.
type BanConfig struct {
	// MaxBanCount is the ban-count threshold at or above which a user
	// is classified as permanently banned.
	MaxBanCount int
	// Duration is the length of a single temporary ban.
	Duration time.Duration
}

// Load resolves configuration from the environment
func Load() *Config {
	env := getEnv("APP_ENV", "local")

	return &Config{
		Env: env,
		Server: ServerConfig{
			Port: getEnvInt("SERVER_PORT", 8080),
		},
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "127.0.0.1"),
			Port:     getEnvInt("DB_PORT", 3306),
			User:     getEnv("DB_USER", "agora"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "agora"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "127.0.0.1"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			PoolSize: getEnvInt("REDIS_POOL_SIZE", 10),
		},
		JWT: JWTConfig{
			Secret:    getEnv("JWT_SECRET", "change-me-in-production"),
			ExpiresIn: getEnvDuration("JWT_EXPIRES_IN", 30*time.Minute),
			RefreshIn: getEnvDuration("JWT_REFRESH_IN", 24*time.Hour*14),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000"),
		},
		Ban: BanConfig{
			MaxBanCount: getEnvInt("BAN_MAX_COUNT", 3),
			Duration:    getEnvDuration("BAN_DURATION", 24*time.Hour*7),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultValue
	}
	return d
}
