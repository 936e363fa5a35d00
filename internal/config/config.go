package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL    string `env:"DATABASE_URL"`
	DBMaxConns     int    `env:"DB_MAX_CONNS" envDefault:"10"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"LOG_FORMAT" envDefault:"json"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Map Config
	WorldMapPath string  `env:"WORLD_MAP_PATH" envDefault:"data/worldmap.json"`
	LabelsPath   string  `env:"LABELS_PATH"`
	MapCenterLng float64 `env:"MAP_CENTER_LNG" envDefault:"0"`
	MapCenterLat float64 `env:"MAP_CENTER_LAT" envDefault:"0"`
	MapZoom      float64 `env:"MAP_ZOOM" envDefault:"2"`
	MapboxToken  string  `env:"MAPBOX_TOKEN"`
	MapStyle     string  `env:"MAP_STYLE"`

	// Cache Config
	LockdownCacheTTL   time.Duration `env:"LOCKDOWN_CACHE_TTL" envDefault:"5m"`
	GeolocationFlagTTL time.Duration `env:"GEOLOCATION_FLAG_TTL" envDefault:"720h"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		DBMaxConns:         getEnvAsInt("DB_MAX_CONNS", 10),
		MigrationsPath:     getEnv("MIGRATIONS_PATH", "migrations"),
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "json"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		WebhookURL:         os.Getenv("WEBHOOK_URL"),
		WebhookSecret:      os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:     getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:  getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:   getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		WorldMapPath:       getEnv("WORLD_MAP_PATH", "data/worldmap.json"),
		LabelsPath:         os.Getenv("LABELS_PATH"),
		MapCenterLng:       getEnvAsFloat("MAP_CENTER_LNG", 0),
		MapCenterLat:       getEnvAsFloat("MAP_CENTER_LAT", 0),
		MapZoom:            getEnvAsFloat("MAP_ZOOM", 2),
		MapboxToken:        os.Getenv("MAPBOX_TOKEN"),
		MapStyle:           os.Getenv("MAP_STYLE"),
		LockdownCacheTTL:   getEnvAsDuration("LOCKDOWN_CACHE_TTL", 5*time.Minute),
		GeolocationFlagTTL: getEnvAsDuration("GEOLOCATION_FLAG_TTL", 30*24*time.Hour),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if cfg.MapCenterLat < -90 || cfg.MapCenterLat > 90 {
		return nil, fmt.Errorf("MAP_CENTER_LAT must be within [-90, 90], got %v", cfg.MapCenterLat)
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
