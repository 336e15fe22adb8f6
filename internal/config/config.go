package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig

	// Database Configuration
	Database DatabaseConfig

	// Redis Configuration (delivery channels)
	Redis RedisConfig

	// Auth Configuration
	Auth AuthConfig

	// Logging Configuration
	Logging LoggingConfig
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	Environment  string // development, staging, production
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host         string
	Port         string
	Username     string
	Password     string
	DatabaseName string
	MaxOpenConns int
	MaxIdleConns int
}

// RedisConfig contains the event-bus connection configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AuthConfig contains token signing configuration
type AuthConfig struct {
	JWTSecret   string
	TokenTTLHrs int
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// Load reads configuration from the environment. A .env file is honored when
// present but its absence is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:         getenv("SERVER_PORT", "8080"),
			Host:         getenv("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:  getenvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getenvInt("SERVER_WRITE_TIMEOUT", 15),
			Environment:  getenv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:         getenv("MYSQL_HOST", "localhost"),
			Port:         getenv("MYSQL_PORT", "3306"),
			Username:     getenv("MYSQL_USER", "root"),
			Password:     getenv("MYSQL_PASSWORD", ""),
			DatabaseName: getenv("MYSQL_DATABASE", "chatcore"),
			MaxOpenConns: getenvInt("MYSQL_MAX_OPEN_CONNS", 50),
			MaxIdleConns: getenvInt("MYSQL_MAX_IDLE_CONNS", 10),
		},
		Redis: RedisConfig{
			Addr:     getenv("REDIS_ADDR", "localhost:6379"),
			Password: getenv("REDIS_PASSWORD", ""),
			DB:       getenvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret:   getenv("JWT_SECRET", ""),
			TokenTTLHrs: getenvInt("JWT_TTL_HOURS", 24),
		},
		Logging: LoggingConfig{
			Level:  getenv("LOG_LEVEL", "info"),
			Format: getenv("LOG_FORMAT", "json"),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	return cfg, nil
}

// DSN builds the MySQL connection string from the database settings.
func (cfg *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
