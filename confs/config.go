package confs

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration

	Database Database
	Log      Log
	Sentry   Sentry

	// LanguageCode picks the validation message catalog when a request
	// carries no usable Accept-Language header.
	LanguageCode     string
	CORSAllowOrigins []string
	PasswordHashCost int
}

type Database struct {
	Driver       string // postgres or sqlite
	URL          string
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	SQLitePath   string
	LogLevel     string
	MaxIdleConns int
	MaxOpenConns int
}

type Log struct {
	Level  string
	Format string
}

type Sentry struct {
	DSN         string
	Environment string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3536")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("SHUTDOWN_TIMEOUT", "5s")

	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("SQLITE_PATH", "room-server.db")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SENTRY_ENVIRONMENT", "development")

	v.SetDefault("LANGUAGE_CODE", "en")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("PASSWORD_HASH_COST", 10)
}

// LoadConfig loads environment variables from a .env file if present,
// then reads the settings from the environment.
func LoadConfig() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Port:            v.GetString("PORT"),
		GinMode:         v.GetString("GIN_MODE"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		Database: Database{
			Driver:       strings.ToLower(v.GetString("DB_DRIVER")),
			URL:          v.GetString("DB_URL"),
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetString("DB_PORT"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			Name:         v.GetString("DB_NAME"),
			SSLMode:      v.GetString("DB_SSLMODE"),
			SQLitePath:   v.GetString("SQLITE_PATH"),
			LogLevel:     v.GetString("DB_LOG_LEVEL"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Sentry: Sentry{
			DSN:         v.GetString("SENTRY_DSN"),
			Environment: v.GetString("SENTRY_ENVIRONMENT"),
		},
		LanguageCode:     v.GetString("LANGUAGE_CODE"),
		CORSAllowOrigins: splitList(v.GetString("CORS_ALLOW_ORIGINS")),
		PasswordHashCost: v.GetInt("PASSWORD_HASH_COST"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that have no usable default.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres":
		if c.Database.URL != "" {
			break
		}
		d := c.Database
		if d.Host == "" || d.Port == "" || d.User == "" || d.Password == "" || d.Name == "" {
			return fmt.Errorf("missing required database configuration: DB_URL or (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
		}
	case "sqlite":
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("missing required database configuration: SQLITE_PATH")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
