package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	ServerAddr   string
	DatabaseURL  string
	StoreBackend string

	JWTSecret string
	TokenTTL  time.Duration

	WorkerCount int

	LogLevel       string
	LogDevelopment bool

	SeedUsers      int
	SeedMicroposts int
}

// Load 讀取預設值、環境變數與可選的 config.yaml，並檢查必要欄位
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("SERVER_ADDR", ":8080")
	v.SetDefault("STORE_BACKEND", BackendPostgres)
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("WORKER_COUNT", 1)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DEVELOPMENT", false)
	v.SetDefault("SEED_USERS", 99)
	v.SetDefault("SEED_MICROPOSTS", 50)

	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("讀取設定檔失敗: %w", err)
		}
	}

	cfg := &Config{
		ServerAddr:     v.GetString("SERVER_ADDR"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		StoreBackend:   strings.ToLower(v.GetString("STORE_BACKEND")),
		JWTSecret:      v.GetString("JWT_SECRET"),
		TokenTTL:       parseDuration(v.GetString("TOKEN_TTL"), 24*time.Hour),
		WorkerCount:    v.GetInt("WORKER_COUNT"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogDevelopment: v.GetBool("LOG_DEVELOPMENT"),
		SeedUsers:      v.GetInt("SEED_USERS"),
		SeedMicroposts: v.GetInt("SEED_MICROPOSTS"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 檢查所有子命令共用的設定；JWT_SECRET 由 serve 透過 service.NewTokenIssuer 檢查
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("環境變數 DATABASE_URL 未設定")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("無效的 STORE_BACKEND: %q", c.StoreBackend)
	}
	if c.WorkerCount <= 0 {
		return fmt.Errorf("無效的 WORKER_COUNT: %d", c.WorkerCount)
	}
	if c.SeedUsers < 0 || c.SeedMicroposts < 0 {
		return fmt.Errorf("SEED_USERS / SEED_MICROPOSTS 不可為負數")
	}
	return nil
}

func parseDuration(s string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil && d > 0 {
		return d
	}
	return def
}
