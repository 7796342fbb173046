// Package common provides configuration, logging and build information
// shared by the CLI and the HTTP server.
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultConfigFile is read from the working directory when present.
const DefaultConfigFile = "creditcalc.toml"

// Config holds all configuration for creditcalc
type Config struct {
	Environment string          `toml:"environment"`
	Server      ServerConfig    `toml:"server"`
	Cache       CacheConfig     `toml:"cache"`
	RateLimit   RateLimitConfig `toml:"rate_limit"`
	Logging     LoggingConfig   `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	ReadTimeout  string `toml:"read_timeout"`
	WriteTimeout string `toml:"write_timeout"`
	IdleTimeout  string `toml:"idle_timeout"`
}

// Addr returns host:port for net/http.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GetReadTimeout parses and returns the read timeout
func (c *ServerConfig) GetReadTimeout() time.Duration {
	return parseDuration(c.ReadTimeout, 15*time.Second)
}

// GetWriteTimeout parses and returns the write timeout
func (c *ServerConfig) GetWriteTimeout() time.Duration {
	return parseDuration(c.WriteTimeout, 15*time.Second)
}

// GetIdleTimeout parses and returns the idle timeout
func (c *ServerConfig) GetIdleTimeout() time.Duration {
	return parseDuration(c.IdleTimeout, 60*time.Second)
}

// CacheConfig holds result cache configuration. An empty RedisAddr selects
// the in-memory cache.
type CacheConfig struct {
	RedisAddr string `toml:"redis_addr"`
	TTL       string `toml:"ttl"`
}

// GetTTL parses and returns the cache entry lifetime
func (c *CacheConfig) GetTTL() time.Duration {
	return parseDuration(c.TTL, 24*time.Hour)
}

// RateLimitConfig holds the per-client request budget of the HTTP API
type RateLimitConfig struct {
	Requests int    `toml:"requests"`
	Window   string `toml:"window"`
}

// GetWindow parses and returns the rate limit window
func (c *RateLimitConfig) GetWindow() time.Duration {
	return parseDuration(c.Window, time.Minute)
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  "15s",
			WriteTimeout: "15s",
			IdleTimeout:  "60s",
		},
		Cache: CacheConfig{
			TTL: "24h",
		},
		RateLimit: RateLimitConfig{
			Requests: 5,
			Window:   "1m",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Later files override earlier ones
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadConfigOrDefault behaves like LoadConfig but always returns a usable
// Config: when a file cannot be read or parsed it returns the defaults with
// environment overrides applied, together with the error.
func LoadConfigOrDefault(paths ...string) (*Config, error) {
	config, err := LoadConfig(paths...)
	if err == nil {
		return config, nil
	}
	config = NewDefaultConfig()
	applyEnvOverrides(config)
	return config, err
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("CREDITCALC_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("CREDITCALC_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("CREDITCALC_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("CREDITCALC_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if format := os.Getenv("CREDITCALC_LOG_FORMAT"); format != "" {
		config.Logging.Format = strings.ToLower(format)
	}

	if addr := os.Getenv("CREDITCALC_REDIS_ADDR"); addr != "" {
		config.Cache.RedisAddr = addr
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
