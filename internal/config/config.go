package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Database   DatabaseConfig   `toml:"database"`
	Redis      RedisConfig      `toml:"redis"`
	CinemaAPI  CinemaAPIConfig  `toml:"cinema_api"`
	Search     SearchConfig     `toml:"search"`
	Scheduling SchedulingConfig `toml:"scheduling"`
	Bulk       BulkConfig       `toml:"bulk"`
	Facts      FactsConfig      `toml:"facts"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// RedisConfig настройки кэша снапшотов
type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	Prefix     string `toml:"prefix"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// CinemaAPIConfig настройки клиента cinema backend
type CinemaAPIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// SearchConfig настройки поиска сеансов
type SearchConfig struct {
	Timezone string `toml:"timezone"`
}

// SchedulingConfig значения по умолчанию для формы добавления сеанса
type SchedulingConfig struct {
	AutoAdvance bool `toml:"auto_advance"`
	AdvanceDate bool `toml:"advance_date"`
	GapHours    int  `toml:"gap_hours"`
	GapMinutes  int  `toml:"gap_minutes"`
	Rounding    int  `toml:"rounding"`
}

// BulkConfig настройки массовых операций
type BulkConfig struct {
	Concurrency int `toml:"concurrency"`
}

// FactsConfig настройки хранения фактов сессий
type FactsConfig struct {
	TTLMinutes int    `toml:"ttl_minutes"`
	PurgeCron  string `toml:"purge_cron"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Location возвращает часовой пояс для календарных вычислений
func (c SearchConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// RoundingMode возвращает режим округления по умолчанию
func (c SchedulingConfig) RoundingMode() domain.RoundingMode {
	mode, err := domain.ParseRoundingMode(c.Rounding)
	if err != nil {
		return domain.DefaultRounding
	}
	return mode
}

// TTL возвращает срок жизни фактов сессии
func (c FactsConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// TTL возвращает срок жизни снапшота в кэше
func (c RedisConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// Load загружает конфигурацию из TOML файла
// Переменные окружения SMC_* (в том числе из .env) переопределяют значения файла
func Load(path string) (*Config, error) {
	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
// Ключи, отсутствующие в файле, сохраняют эти значения
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "smc_showtime_service",
			Path:        "/metrics",
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr:       "localhost:6379",
			Prefix:     "smc",
			TTLSeconds: 30,
		},
		CinemaAPI: CinemaAPIConfig{
			Timeout: 10,
		},
		Search: SearchConfig{
			Timezone: "Local",
		},
		Scheduling: SchedulingConfig{
			AutoAdvance: true,
			GapHours:    domain.DefaultGapHours,
			GapMinutes:  domain.DefaultGapMinutes,
			Rounding:    int(domain.DefaultRounding),
		},
		Bulk: BulkConfig{
			Concurrency: 8,
		},
		Facts: FactsConfig{
			TTLMinutes: 12 * 60,
			PurgeCron:  "*/15 * * * *",
		},
	}
}

// Validate проверяет обязательные параметры и допустимые диапазоны
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be between 1 and 65535")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}
	if c.CinemaAPI.URL == "" {
		return fmt.Errorf("cinema_api.url is required")
	}
	if c.CinemaAPI.Timeout <= 0 {
		return fmt.Errorf("cinema_api.timeout must be positive")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required when redis is enabled")
	}
	if c.Redis.TTLSeconds <= 0 {
		return fmt.Errorf("redis.ttl_seconds must be positive")
	}
	if _, err := c.Search.Location(); err != nil {
		return fmt.Errorf("search.timezone is invalid: %w", err)
	}
	if _, err := domain.ParseRoundingMode(c.Scheduling.Rounding); err != nil {
		return fmt.Errorf("scheduling.rounding is invalid: %w", err)
	}
	if c.Scheduling.GapHours < 0 || c.Scheduling.GapHours > domain.MaxGapHours {
		return fmt.Errorf("scheduling.gap_hours must be between 0 and %d", domain.MaxGapHours)
	}
	if c.Scheduling.GapMinutes < 0 || c.Scheduling.GapMinutes > 59 {
		return fmt.Errorf("scheduling.gap_minutes must be between 0 and 59")
	}
	if c.Bulk.Concurrency <= 0 {
		return fmt.Errorf("bulk.concurrency must be positive")
	}
	if c.Facts.TTLMinutes <= 0 {
		return fmt.Errorf("facts.ttl_minutes must be positive")
	}
	if c.Facts.PurgeCron == "" {
		return fmt.Errorf("facts.purge_cron is required")
	}

	return nil
}

func (c *Config) applyEnv() error {
	overrideString(&c.Database.Host, "SMC_DB_HOST")
	overrideString(&c.Database.User, "SMC_DB_USER")
	overrideString(&c.Database.Password, "SMC_DB_PASSWORD")
	overrideString(&c.Database.DBName, "SMC_DB_NAME")
	overrideString(&c.Redis.Addr, "SMC_REDIS_ADDR")
	overrideString(&c.Redis.Password, "SMC_REDIS_PASSWORD")
	overrideString(&c.CinemaAPI.URL, "SMC_CINEMA_API_URL")
	overrideString(&c.Logs.Level, "SMC_LOG_LEVEL")

	if v := os.Getenv("SMC_DB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SMC_DB_PORT is invalid: %w", err)
		}
		c.Database.Port = port
	}
	if v := os.Getenv("SMC_HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SMC_HTTP_PORT is invalid: %w", err)
		}
		c.Server.HTTPPort = port
	}

	return nil
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
