package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Queue    QueueConfig    `mapstructure:"queue"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

type AppConfig struct {
	Name    string `mapstructure:"name"`
	Env     string `mapstructure:"env"`
	Port    int    `mapstructure:"port"`
	BaseURL string `mapstructure:"base_url"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	Issuer          string `mapstructure:"issuer"`
	ExpireInMinutes int    `mapstructure:"expire_in_minutes"`
}

type QueueConfig struct {
	Concurrency int  `mapstructure:"concurrency"`
	Enabled     bool `mapstructure:"enabled"`
}

type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

var (
	mu       sync.RWMutex
	instance *Config
)

var defaults = map[string]any{
	"app.name":              "meeting-planner",
	"app.env":               "development",
	"app.port":              7070,
	"app.base_url":          "http://localhost:7070",
	"database.host":         "localhost",
	"database.port":         5432,
	"database.user":         "postgres",
	"database.password":     "postgres",
	"database.name":         "meeting_planner",
	"redis.host":            "localhost",
	"redis.port":            6379,
	"redis.password":        "",
	"redis.db":              0,
	"jwt.secret":            "change-me",
	"jwt.issuer":            "meeting-planner",
	"jwt.expire_in_minutes": 1440,
	"queue.concurrency":     5,
	"queue.enabled":         true,
	"logger.level":          "info",
}

// Load reads .env, an optional config.yaml and the environment, in increasing
// order of precedence. APP_PORT overrides app.port, DATABASE_HOST overrides
// database.host, and so on.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt.secret must not be empty")
	}

	Set(&cfg)
	return &cfg, nil
}

// Set replaces the process-wide config.
func Set(cfg *Config) {
	mu.Lock()
	instance = cfg
	mu.Unlock()
}

// Get returns the loaded config and panics if Load has not run.
func Get() *Config {
	cfg, ok := GetSafe()
	if !ok {
		panic("config: Get called before Load")
	}
	return cfg
}

func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return instance, instance != nil
}
