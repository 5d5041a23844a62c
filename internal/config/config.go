package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// RetryConfig настройки повторных попыток генерации кода
type RetryConfig struct {
	MaxAttempts int `env:"MAX_ATTEMPTS"`
}

// StorageConfig настройки S3-совместимого хранилища отчётов (Cloudflare R2, MinIO, AWS S3)
type StorageConfig struct {
	Endpoint        string `env:"ENDPOINT"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	Bucket          string `env:"BUCKET"`
	Region          string `env:"REGION"`
	PublicURL       string `env:"PUBLIC_URL"`
	UseSSL          bool   `env:"USE_SSL"`
}

// Enabled сообщает, задано ли удалённое хранилище
func (s StorageConfig) Enabled() bool {
	return s.Endpoint != "" && s.Bucket != ""
}

// Config конфигурация приложения
type Config struct {
	ServerAddress   NetworkAddress `env:"SERVER_ADDRESS"`
	BaseURL         URLPrefix      `env:"BASE_URL"`
	FrontendURL     URLPrefix      `env:"FRONTEND_URL"`
	APIPrefix       string         `env:"API_PREFIX"`
	DatabaseDSN     string         `env:"DATABASE_DSN"`
	CORSOrigins     []string       `env:"CORS_ORIGINS" envSeparator:","`
	JWTSecret       string         `env:"JWT_SECRET"`
	GRPCAddress     string         `env:"GRPC_ADDRESS"`
	ReportsDir      string         `env:"REPORTS_DIR"`
	Environment     string         `env:"APP_ENV"`
	ShutdownTimeout time.Duration  `env:"SHUTDOWN_TIMEOUT"`
	Retry           RetryConfig    `envPrefix:"RETRY_"`
	Storage         StorageConfig  `envPrefix:"STORAGE_"`
}

// NewDefaultConfig создает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress: NetworkAddress{Host: "localhost", Port: 3333},
		BaseURL:       URLPrefix("http://localhost:3333"),
		FrontendURL:   URLPrefix("http://localhost:5173"),
		APIPrefix:     "/api",
		CORSOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:5174",
			"http://localhost:5175",
			"http://localhost:5176",
			"http://localhost:5177",
		},
		ReportsDir:      "./data",
		Environment:     "production",
		ShutdownTimeout: 10 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 5,
		},
		Storage: StorageConfig{
			Region: "auto",
			UseSSL: true,
		},
	}
}

// IsDevelopment сообщает, запущено ли приложение в режиме разработки
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

// NotFoundPageURL адрес клиентской страницы "не найдено"
func (c *Config) NotFoundPageURL() string {
	return c.FrontendURL.Join("404")
}

// Load собирает конфигурацию: значения по умолчанию, флаги командной строки,
// файл .env и переменные окружения (в порядке возрастания приоритета).
func Load() (*Config, error) {
	return LoadArgs(os.Args[1:])
}

// LoadArgs аналог Load с явными аргументами командной строки
func LoadArgs(args []string) (*Config, error) {
	cfg := NewDefaultConfig()

	fset := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fset.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	fset.Var(&cfg.BaseURL, "b", "public base URL of the service")
	fset.Var(&cfg.FrontendURL, "f", "frontend base URL")
	fset.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fset.StringVar(&cfg.ReportsDir, "r", cfg.ReportsDir, "local directory for reports")
	fset.StringVar(&cfg.GRPCAddress, "g", cfg.GRPCAddress, "address to run gRPC health server")

	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	prefix := strings.TrimRight(c.APIPrefix, "/")
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("invalid API prefix: %q", c.APIPrefix)
	}
	c.APIPrefix = prefix

	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry max attempts must be positive, got %d", c.Retry.MaxAttempts)
	}

	if c.Storage.Enabled() && c.Storage.PublicURL == "" {
		return errors.New("storage public URL is required when storage bucket is configured")
	}

	return nil
}
