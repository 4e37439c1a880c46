// Package config loads gateway configuration from the environment.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"time"
)

type Config struct {
	// Addr is the listen address of the RPC transport.
	Addr string

	// YNABBaseURL is the endpoint of the upstream YNAB API.
	YNABBaseURL string

	// YNABTimeout bounds every outbound YNAB call.
	YNABTimeout time.Duration

	LogLevel string
}

func Load() (*Config, error) {
	timeout, err := getEnvDuration("YNAB_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	return &Config{
		Addr:        getEnv("GATEWAY_ADDR", ":50051"),
		YNABBaseURL: getEnv("YNAB_BASE_URL", "https://api.ynab.com/v1"),
		YNABTimeout: timeout,
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("invalid listen address %q: %w", c.Addr, err)
	}

	u, err := url.Parse(c.YNABBaseURL)
	if err != nil {
		return fmt.Errorf("invalid YNAB base URL %q: %w", c.YNABBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid YNAB base URL scheme %q: must be http or https", u.Scheme)
	}

	if c.YNABTimeout <= 0 {
		return fmt.Errorf("invalid YNAB timeout %v: must be positive", c.YNABTimeout)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}
