package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string `env:"TELEGRAM_TOKEN"`
	DBDSN         string `env:"DB_DSN"`
	Environment   string `env:"ENV" envDefault:"development"`

	Timezone      string `env:"APP_TIMEZONE" envDefault:"UTC"`
	MigrationsDir string `env:"MIGRATIONS_DIR" envDefault:"migrations"`

	Calendar struct {
		ReadTimeout        time.Duration `env:"READ_TIMEOUT" envDefault:"3s"`
		CacheSize          int           `env:"OVERRIDE_CACHE_SIZE" envDefault:"512"`
		// Сервис сам не пишет переопределения, поэтому изменённый или удалённый
		// выходной, временное изменение или спот может отдаваться из кэша до CacheTTL
		CacheTTL           time.Duration `env:"OVERRIDE_CACHE_TTL" envDefault:"5m"`
		StrictReads        bool          `env:"STRICT_READS" envDefault:"false"`
		ResolveConcurrency int           `env:"RESOLVE_CONCURRENCY" envDefault:"8"`
	}

	WarmUp struct {
		Weeks    int           `env:"WARMUP_WEEKS" envDefault:"4"`
		Interval time.Duration `env:"WARMUP_INTERVAL" envDefault:"24h"`
	}

	Tracing struct {
		Enabled     bool    `env:"OTEL_ENABLED" envDefault:"false"`
		Endpoint    string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4317"`
		SampleRatio float64 `env:"OTEL_SAMPLING_RATIO" envDefault:"1"`
	}

	// Location вычисляется из Timezone
	Location *time.Location `env:"-"`
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return Parse()
}

// Parse читает конфигурацию из переменных окружения
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.Environment = strings.ToLower(cfg.Environment)

	// Проверяем обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
		return nil, fmt.Errorf("OTEL_SAMPLING_RATIO must be within [0, 1], got %v", cfg.Tracing.SampleRatio)
	}
	if cfg.WarmUp.Interval <= 0 {
		return nil, fmt.Errorf("WARMUP_INTERVAL must be positive")
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
