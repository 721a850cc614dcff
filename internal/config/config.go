// Package config loads the backend configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	// HTTP server
	APIURL string
	Port   string

	// Logging and gin
	GinMode   string
	LogFormat string
	LogLevel  string

	// SQLite
	DBPath string

	// PostgreSQL, used instead of SQLite when DBHost is set
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Router
	CORSAllowOrigins []string
	EnablePprof      bool
}

// Load reads the configuration from the environment.
//
// If envFile exists, it is loaded first. Variables that are already set
// in the environment are not overwritten by it.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		APIURL: os.Getenv("API_URL"),
		Port:   getEnv("PORT", "8080"),

		GinMode:   getEnv("GIN_MODE", "release"),
		LogFormat: os.Getenv("LOG_FORMAT"),
		LogLevel:  os.Getenv("LOG_LEVEL"),

		DBPath: getEnv("DB_PATH", "data/gorm.db"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "spendwise"),

		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      getEnvBool("ENABLE_PPROF", false),
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error listing all problems
func (c *Config) Validate() error {
	var errors []string

	if c.APIURL == "" {
		errors = append(errors, "API_URL must be set")
	} else if _, err := c.BaseURL(); err != nil {
		errors = append(errors, err.Error())
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errors = append(errors, fmt.Sprintf("invalid GIN_MODE '%s': must be one of debug, release, test", c.GinMode))
	}

	switch c.LogFormat {
	case "", "json", "human":
	default:
		errors = append(errors, fmt.Sprintf("invalid LOG_FORMAT '%s': must be json or human", c.LogFormat))
	}

	if c.LogLevel != "" {
		if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
			errors = append(errors, fmt.Sprintf("invalid LOG_LEVEL '%s': %v", c.LogLevel, err))
		}
	}

	if c.UsePostgres() {
		if c.DBUser == "" {
			errors = append(errors, "DB_USER must be set when DB_HOST is set")
		}
	} else if c.DBPath == "" {
		errors = append(errors, "DB_PATH must not be empty when DB_HOST is not set")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// BaseURL returns the parsed API_URL.
func (c *Config) BaseURL() (*url.URL, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API_URL '%s': %w", c.APIURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid API_URL '%s': scheme must be http or https", c.APIURL)
	}

	return u, nil
}

// UsePostgres reports whether PostgreSQL is configured.
func (c *Config) UsePostgres() bool {
	return c.DBHost != ""
}

// PostgresDSN returns the connection string for PostgreSQL.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC", c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

// Level returns the log level.
//
// LOG_LEVEL takes precedence. Otherwise, debug mode logs at debug level and
// everything else at info level.
func (c *Config) Level() zerolog.Level {
	if level, err := zerolog.ParseLevel(c.LogLevel); err == nil && c.LogLevel != "" {
		return level
	}

	if c.GinMode == "debug" {
		return zerolog.DebugLevel
	}

	return zerolog.InfoLevel
}

// HumanLogs reports whether logs are written for humans instead of as JSON.
//
// If LOG_FORMAT is not set, this is the case in debug mode.
func (c *Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.GinMode == "debug"
	}

	return c.LogFormat == "human"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
