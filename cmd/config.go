package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"time"

	"orderalerts/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

const (
	defaultRunTimeout = 30 * time.Second
	defaultHTTPPort   = "8080"
)

// APIEndpoints holds the URLs of the order management and alert APIs.
type APIEndpoints struct {
	OrdersEndpoint string `yaml:"orders_endpoint"`
	UpdateEndpoint string `yaml:"update_endpoint"`
	AlertsEndpoint string `yaml:"alerts_endpoint"`
}

type Config struct {
	APIEndpoints   APIEndpoints
	RunTimeout     time.Duration
	PollSchedule   string
	HTTPPort       string
	LogLevel       slog.Level
	JaegerEndpoint string
}

// Scheduled reports whether the process should keep running on a cron schedule
// instead of performing a single pass.
func (c Config) Scheduled() bool {
	return c.PollSchedule != ""
}

type fileConfig struct {
	APIEndpoints APIEndpoints `yaml:"api_endpoints"`
}

// LoadConfig builds the configuration from lookup, usually os.LookupEnv. The YAML file
// named by CONFIG_FILE, if any, supplies endpoints that environment variables override.
func LoadConfig(lookup func(string) (string, bool)) (Config, error) {
	getEnv := func(key, fallback string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		return fallback
	}

	var fc fileConfig
	if path := getEnv("CONFIG_FILE", ""); path != "" {
		var err error
		if fc, err = readConfigFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg := Config{
		APIEndpoints: APIEndpoints{
			OrdersEndpoint: getEnv("ORDERS_API_URL", fc.APIEndpoints.OrdersEndpoint),
			UpdateEndpoint: getEnv("UPDATE_ORDER_API_URL", fc.APIEndpoints.UpdateEndpoint),
			AlertsEndpoint: getEnv("ALERTS_API_URL", fc.APIEndpoints.AlertsEndpoint),
		},
		RunTimeout:     defaultRunTimeout,
		PollSchedule:   getEnv("ORDER_POLL_SCHEDULE", ""),
		HTTPPort:       getEnv("HTTP_PORT", defaultHTTPPort),
		JaegerEndpoint: getEnv("JAEGER_ENDPOINT", ""),
	}

	var err error
	if raw := getEnv("RUN_TIMEOUT", ""); raw != "" {
		cfg.RunTimeout, err = time.ParseDuration(raw)
		if err != nil {
			return Config{}, errs.NewValueIsInvalidErrorWithCause("RUN_TIMEOUT", err)
		}
		if cfg.RunTimeout <= 0 {
			return Config{}, errs.NewValueIsOutOfRangeError("RUN_TIMEOUT", raw, "1ns", "unbounded")
		}
	}

	if raw := getEnv("LOG_LEVEL", ""); raw != "" {
		if err = cfg.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return Config{}, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
		}
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every endpoint is an absolute http(s) URL.
func (c Config) Validate() error {
	return errors.Join(
		validateEndpoint("ORDERS_API_URL", c.APIEndpoints.OrdersEndpoint),
		validateEndpoint("UPDATE_ORDER_API_URL", c.APIEndpoints.UpdateEndpoint),
		validateEndpoint("ALERTS_API_URL", c.APIEndpoints.AlertsEndpoint),
	)
}

func validateEndpoint(name, raw string) error {
	if raw == "" {
		return errs.NewValueIsRequiredError(name)
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("unsupported scheme %q", u.Scheme))
	}
	return nil
}

func readConfigFile(path string) (fileConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	var fc fileConfig
	if err = yaml.NewDecoder(file).Decode(&fc); err != nil {
		return fileConfig{}, fmt.Errorf("failed to decode config file: %w", err)
	}
	return fc, nil
}
