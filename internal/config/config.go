package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Redis   RedisConfig   `toml:"redis"`
	Market  MarketConfig  `toml:"market"`
	Logging LoggingConfig `toml:"logging"`
}

type ServerConfig struct {
	Host        string   `toml:"host"`
	Port        string   `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
}

// Addr is the listen address for the HTTP server
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// RedisConfig controls where market snapshots are published. An empty URL
// disables publishing.
type RedisConfig struct {
	URL     string `toml:"url"`
	Channel string `toml:"channel"`
	Key     string `toml:"key"`
}

type MarketConfig struct {
	Seed         bool     `toml:"seed"`
	TickInterval duration `toml:"tick_interval"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// duration lets TOML files use strings such as "5s"
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "",
			Port:        "8000",
			CORSOrigins: []string{"*"},
		},
		Redis: RedisConfig{
			URL:     "",
			Channel: "market:overview",
			Key:     "market:overview:latest",
		},
		Market: MarketConfig{
			Seed:         true,
			TickInterval: duration{5 * time.Second},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load returns application configuration loaded from environment variables
func Load() *Config {
	cfg := Default()
	applyEnv(cfg)
	return cfg
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
// An empty path behaves like Load.
func LoadFromFile(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Host = getEnvWithDefault("HOST", cfg.Server.Host)
	cfg.Server.Port = getEnvWithDefault("PORT", cfg.Server.Port)
	if origins, exists := os.LookupEnv("CORS_ORIGINS"); exists {
		cfg.Server.CORSOrigins = splitList(origins)
	}

	cfg.Redis.URL = getEnvWithDefault("REDIS_URL", cfg.Redis.URL)
	cfg.Redis.Channel = getEnvWithDefault("MARKET_CHANNEL", cfg.Redis.Channel)
	cfg.Redis.Key = getEnvWithDefault("MARKET_KEY", cfg.Redis.Key)

	if seed, exists := os.LookupEnv("SEED_DATA"); exists {
		if v, err := strconv.ParseBool(seed); err == nil {
			cfg.Market.Seed = v
		}
	}
	if interval, exists := os.LookupEnv("MARKET_TICK_INTERVAL"); exists {
		if v, err := time.ParseDuration(interval); err == nil {
			cfg.Market.TickInterval = duration{v}
		}
	}

	cfg.Logging.Level = getEnvWithDefault("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnvWithDefault("LOG_FORMAT", cfg.Logging.Format)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
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
