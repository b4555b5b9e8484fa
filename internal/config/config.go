package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	str2duration "github.com/xhit/go-str2duration/v2"

	"github.com/m04kA/SMC-PickerService/internal/domain"
	"github.com/m04kA/SMC-PickerService/internal/service/pickers/models"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig          `toml:"server"`
	Logs       LogsConfig            `toml:"logs"`
	Metrics    MetricsConfig         `toml:"metrics"`
	Database   DatabaseConfig        `toml:"database"`
	HolidayAPI HolidayAPIConfig      `toml:"holiday_api"`
	Calendar   CalendarConfig        `toml:"calendar"`
	CORS       CORSConfig            `toml:"cors"`
	Pickers    PickersConfig         `toml:"pickers"`
	TimeTiers  []models.TimeTierSpec `toml:"time_tiers"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig подключение к PostgreSQL (нужно только для pickers.source = "postgres")
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

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// HolidayAPIConfig источник праздников
type HolidayAPIConfig struct {
	BaseURL    string        `toml:"base_url"`
	TimeoutRaw string        `toml:"timeout"`
	Timeout    time.Duration `toml:"-"`
}

// CalendarConfig календарь
type CalendarConfig struct {
	Timezone   string         `toml:"timezone"`
	MaxSpanRaw string         `toml:"max_span"`
	MaxSpan    time.Duration  `toml:"-"`
	Location   *time.Location `toml:"-"`
}

// CORSConfig origin'ы страниц с виджетами
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// PickersConfig каталог пикеров
type PickersConfig struct {
	Source       string              `toml:"source"`
	SeedFromFile bool                `toml:"seed_from_file"`
	Items        []models.PickerSpec `toml:"items"`
}

// Load читает и проверяет конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaults()

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%w: unknown keys: %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 30,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "picker-service",
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		HolidayAPI: HolidayAPIConfig{
			BaseURL:    "https://holidays-jp.github.io/api/v1",
			TimeoutRaw: "10s",
		},
		Calendar: CalendarConfig{
			Timezone:   domain.DefaultLocation,
			MaxSpanRaw: "62d",
		},
		Pickers: PickersConfig{Source: SourceFile},
	}
}

// Validate проверяет значения и заполняет вычисляемые поля
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if c.HolidayAPI.BaseURL == "" {
		return fmt.Errorf("%w: holiday_api.base_url is required", ErrInvalidConfig)
	}

	timeout, err := str2duration.ParseDuration(c.HolidayAPI.TimeoutRaw)
	if err != nil || timeout <= 0 {
		return fmt.Errorf("%w: holiday_api.timeout %q", ErrInvalidConfig, c.HolidayAPI.TimeoutRaw)
	}
	c.HolidayAPI.Timeout = timeout

	loc, err := time.LoadLocation(c.Calendar.Timezone)
	if err != nil {
		return fmt.Errorf("%w: calendar.timezone %q: %v", ErrInvalidConfig, c.Calendar.Timezone, err)
	}
	c.Calendar.Location = loc

	maxSpan, err := str2duration.ParseDuration(c.Calendar.MaxSpanRaw)
	if err != nil || maxSpan < 0 {
		return fmt.Errorf("%w: calendar.max_span %q", ErrInvalidConfig, c.Calendar.MaxSpanRaw)
	}
	if maxSpan > 0 && maxSpan < 24*time.Hour {
		return fmt.Errorf("%w: calendar.max_span %q must be 0 or at least 1d", ErrInvalidConfig, c.Calendar.MaxSpanRaw)
	}
	c.Calendar.MaxSpan = maxSpan

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
	}

	switch c.Pickers.Source {
	case SourceFile:
		if len(c.Pickers.Items) == 0 {
			return fmt.Errorf("%w: pickers.items is empty", ErrInvalidConfig)
		}
	case SourcePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres source", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: pickers.source %q", ErrInvalidConfig, c.Pickers.Source)
	}

	if _, err := models.TiersToDomain(c.TimeTiers); err != nil {
		return fmt.Errorf("%w: time_tiers: %v", ErrInvalidConfig, err)
	}

	return nil
}
