package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Переменные окружения с секретами, перекрывают значения из TOML
const (
	EnvDBPassword    = "STUDIO_DB_PASSWORD"
	EnvRedisPassword = "STUDIO_REDIS_PASSWORD"
	EnvAMQPURL       = "STUDIO_AMQP_URL"
)

// Бэкенды хранилища бронирований
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит проверку
var ErrInvalidConfig = errors.New("invalid config")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Booking  BookingConfig  `toml:"booking"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	SQLite   SQLiteConfig   `toml:"sqlite"`
	Events   EventsConfig   `toml:"events"`
	Location LocationConfig `toml:"location"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type CatalogConfig struct {
	Path string `toml:"path"` // пусто = встроенный каталог
}

type BookingConfig struct {
	StorageKey      string `toml:"storage_key"`
	RefreshInterval int    `toml:"refresh_interval"` // секунды
}

type StorageConfig struct {
	Backend string `toml:"backend"`
	Dir     string `toml:"dir"` // для file
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type RedisConfig struct {
	Address  string `toml:"address"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

type SQLiteConfig struct {
	DSN string `toml:"dsn"`
}

type EventsConfig struct {
	Enabled bool   `toml:"enabled"`
	AMQPURL string `toml:"amqp_url"`
	Queue   string `toml:"queue"`
}

type LocationConfig struct {
	URL     string `toml:"url"`     // пусто = геолокация не поддерживается
	Timeout int    `toml:"timeout"` // секунды
	MaxAge  int    `toml:"max_age"` // секунды, повторное использование результата
}

// Default конфигурация по умолчанию: память вместо внешних хранилищ
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics", ServiceName: "studio_booking"},
		Booking: BookingConfig{StorageKey: "studioBookings", RefreshInterval: 30},
		Storage: StorageConfig{Backend: BackendMemory, Dir: "data"},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "studio_booking",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis:    RedisConfig{Address: "localhost:6379", Prefix: "studio:"},
		SQLite:   SQLiteConfig{DSN: "file:studio_booking.db"},
		Events:   EventsConfig{Queue: "booking.created"},
		Location: LocationConfig{Timeout: 10, MaxAge: 300},
	}
}

// Load читает TOML поверх значений по умолчанию и применяет секреты из окружения.
// Файл .env необязателен.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDBPassword); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(EnvRedisPassword); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv(EnvAMQPURL); v != "" {
		c.Events.AMQPURL = v
	}
}

// Validate отклоняет невозможные значения
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Booking.RefreshInterval <= 0 {
		return fmt.Errorf("%w: booking.refresh_interval must be positive", ErrInvalidConfig)
	}
	if c.Location.Timeout <= 0 {
		return fmt.Errorf("%w: location.timeout must be positive", ErrInvalidConfig)
	}

	switch c.Storage.Backend {
	case BackendMemory, BackendRedis, BackendSQLite:
	case BackendFile:
		if c.Storage.Dir == "" {
			return fmt.Errorf("%w: storage.dir is required for file backend", ErrInvalidConfig)
		}
	case BackendPostgres:
		if c.Database.Port <= 0 || c.Database.Port > 65535 {
			return fmt.Errorf("%w: database.port %d", ErrInvalidConfig, c.Database.Port)
		}
	default:
		return fmt.Errorf("%w: unknown storage.backend %q", ErrInvalidConfig, c.Storage.Backend)
	}

	if c.Events.Enabled && c.Events.AMQPURL == "" {
		return fmt.Errorf("%w: events.amqp_url is required when events are enabled", ErrInvalidConfig)
	}
	return nil
}

// RefreshInterval период обновления слотов в открытой сессии
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.Booking.RefreshInterval) * time.Second
}
