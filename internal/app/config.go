package app

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`
	AppRateLimit      int           `envconfig:"APP_RATE_LIMIT" default:"120"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	EnergyAPIURL     string        `envconfig:"ENERGY_API_URL" default:"http://127.0.0.1:5000"`
	EnergyAPITimeout time.Duration `envconfig:"ENERGY_API_TIMEOUT" default:"0s"`

	SampleAPIAddr string `envconfig:"SAMPLE_API_ADDR" default:":5000"`

	PredictRateLimit int `envconfig:"PREDICT_RATE_LIMIT" default:"30"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.EnergyAPIURL = strings.TrimSpace(c.EnergyAPIURL)
	if c.EnergyAPIURL == "" {
		return errors.New("energy api url must be provided")
	}
	u, err := url.Parse(c.EnergyAPIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("energy api url %q must be absolute", c.EnergyAPIURL)
	}
	if c.EnergyAPITimeout < 0 {
		return errors.New("energy api timeout must not be negative")
	}
	if c.PredictRateLimit < 0 || c.AppRateLimit < 0 {
		return errors.New("rate limits must not be negative")
	}
	return nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
