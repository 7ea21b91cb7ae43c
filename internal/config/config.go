package config

import (
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the server and tariff settings.
type Config struct {
	Port      string          `yaml:"port"`
	GinMode   string          `yaml:"gin_mode"`
	Redis     RedisConfig     `yaml:"redis"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Tariff    TariffConfig    `yaml:"tariff"`
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type RateLimitConfig struct {
	Requests      int `yaml:"requests"`
	WindowSeconds int `yaml:"window_seconds"`
}

// TariffConfig is the flat electricity price used for bill estimates.
type TariffConfig struct {
	RatePerKWh    float64 `yaml:"rate_per_kwh"`
	Currency      string  `yaml:"currency"`
	WeeksPerMonth float64 `yaml:"weeks_per_month"`
}

func (r RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

func Default() *Config {
	return &Config{
		Port:    "8080",
		GinMode: "release",
		Redis: RedisConfig{
			Enabled: false,
			Host:    "localhost",
			Port:    "6379",
		},
		RateLimit: RateLimitConfig{
			Requests:      100,
			WindowSeconds: 60,
		},
		Tariff: TariffConfig{
			RatePerKWh:    6.0,
			Currency:      "INR",
			WeeksPerMonth: 4.3,
		},
	}
}

// DefaultConfigPath returns the config file looked up when none is given.
func DefaultConfigPath() string {
	return "config.yaml"
}

// Load builds the config from defaults, then the YAML file at path (a missing
// file is not an error), then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
			log.Printf("[CONFIG] Loaded %s", path)
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("reading config file: %w", err)
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
	setString(&c.Port, "PORT")
	setString(&c.GinMode, "GIN_MODE")
	setString(&c.Redis.Host, "REDIS_HOST")
	setString(&c.Redis.Port, "REDIS_PORT")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Tariff.Currency, "TARIFF_CURRENCY")

	if err := setBool(&c.Redis.Enabled, "REDIS_ENABLED"); err != nil {
		return err
	}
	if err := setInt(&c.Redis.DB, "REDIS_DB"); err != nil {
		return err
	}
	if err := setInt(&c.RateLimit.Requests, "RATE_LIMIT_REQUESTS"); err != nil {
		return err
	}
	if err := setInt(&c.RateLimit.WindowSeconds, "RATE_LIMIT_WINDOW_SECONDS"); err != nil {
		return err
	}
	if err := setFloat(&c.Tariff.RatePerKWh, "TARIFF_RATE_PER_KWH"); err != nil {
		return err
	}
	return setFloat(&c.Tariff.WeeksPerMonth, "TARIFF_WEEKS_PER_MONTH")
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port cannot be empty")
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown gin mode %q", c.GinMode)
	}
	if c.RateLimit.Requests < 0 || c.RateLimit.WindowSeconds < 0 {
		return fmt.Errorf("rate limit values cannot be negative")
	}
	if c.RateLimit.Requests > 0 && c.RateLimit.WindowSeconds == 0 {
		return fmt.Errorf("rate limit window must be at least 1 second")
	}
	for name, v := range map[string]float64{
		"rate_per_kwh":    c.Tariff.RatePerKWh,
		"weeks_per_month": c.Tariff.WeeksPerMonth,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("tariff %s must be a finite number", name)
		}
		if v < 0 {
			return fmt.Errorf("tariff %s cannot be negative", name)
		}
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = b
	return nil
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

func setFloat(dst *float64, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = f
	return nil
}
