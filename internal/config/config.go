package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Переменные окружения, перекрывающие значения из файла
const (
	EnvCalendarAccessToken = "GOOGLE_CALENDAR_ACCESS_TOKEN"
	EnvHTTPPort            = "HTTP_PORT"
	EnvLogLevel            = "LOG_LEVEL"
)

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	CORS           CORSConfig           `toml:"cors"`
	GoogleCalendar GoogleCalendarConfig `toml:"google_calendar"`
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

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// GoogleCalendarConfig настройки интеграции с Google Calendar.
// Пустой AccessToken включает симулированный режим
type GoogleCalendarConfig struct {
	AccessToken string `toml:"access_token"`
	CalendarID  string `toml:"calendar_id"`
	Endpoint    string `toml:"endpoint"`
	Timeout     int    `toml:"timeout"` // секунды, 0 = без таймаута
}

// Enabled возвращает true, если задан токен доступа
func (c GoogleCalendarConfig) Enabled() bool {
	return c.AccessToken != ""
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "barber-booking",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		GoogleCalendar: GoogleCalendarConfig{
			CalendarID: "primary",
		},
	}
}

// Load загружает .env (если есть), затем TOML файл поверх значений по умолчанию,
// затем применяет переменные окружения. Отсутствие файла не является ошибкой
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	// Пустая переменная (например, из .env.example) не затирает токен из config.toml
	if token := os.Getenv(EnvCalendarAccessToken); token != "" {
		c.GoogleCalendar.AccessToken = token
	}

	if port := os.Getenv(EnvHTTPPort); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", EnvHTTPPort, port, err)
		}
		c.Server.HTTPPort = p
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logs.Level = level
	}

	return nil
}

// Validate проверяет корректность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be in 1..65535, got %d", c.Server.HTTPPort)
	}

	timeouts := map[string]int{
		"server.read_timeout":     c.Server.ReadTimeout,
		"server.write_timeout":    c.Server.WriteTimeout,
		"server.idle_timeout":     c.Server.IdleTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
		"google_calendar.timeout": c.GoogleCalendar.Timeout,
	}
	for name, value := range timeouts {
		if value < 0 {
			return fmt.Errorf("%s must not be negative, got %d", name, value)
		}
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return errors.New("metrics.path is required when metrics are enabled")
	}

	return nil
}
