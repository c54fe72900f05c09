package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Storage    Storage    `yaml:"storage"`
	Database   Database   `yaml:"database"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Auth       Auth       `yaml:"auth"`
	Mail       Mail       `yaml:"mail"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"`
	Path   string `yaml:"path" env:"STORAGE_PATH" env-default:"./storage/event_management.db"`
}

// Database is only read when Storage.Driver is "postgres".
type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"event_management"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type HTTPServer struct {
	Address        string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:5000"`
	Timeout        time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigins []string      `yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS" env-default:"*"`
}

// Auth.TokenSecret signs every issued token with HS256. It is a shared
// symmetric secret and must be supplied per deployment.
type Auth struct {
	TokenSecret string        `yaml:"token_secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL    time.Duration `yaml:"token_ttl" env:"JWT_TTL" env-default:"2h"`
	BcryptCost  int           `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"10"`
}

// Mail falls back to log-only delivery when APIKey is empty.
type Mail struct {
	APIKey  string        `yaml:"api_key" env:"RESEND_API_KEY"`
	From    string        `yaml:"from" env:"MAIL_FROM" env-default:"Event Manager <bookings@example.com>"`
	Timeout time.Duration `yaml:"timeout" env:"MAIL_TIMEOUT" env-default:"2s"`
}

func MustLoad() *Config {
	// .env is optional, the real environment always wins.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %s", err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	switch cfg.Storage.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}

	if cfg.Auth.TokenTTL <= 0 {
		return nil, fmt.Errorf("auth.token_ttl must be positive, got %s", cfg.Auth.TokenTTL)
	}

	return &cfg, nil
}
