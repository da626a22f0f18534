package commons

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"ardoise/internal/config"
)

// fileConfig mirrors config.Config with durations as strings, the way they
// read in YAML ("10s", "5m").
type fileConfig struct {
	Server config.ServerConfig `yaml:"server"`
	API    struct {
		BaseURL string `yaml:"base_url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"api"`
	Cache struct {
		TTL string `yaml:"ttl"`
	} `yaml:"cache"`
	Auth    config.AuthConfig `yaml:"auth"`
	Offline bool              `yaml:"offline"`
	Log     config.LogConfig  `yaml:"log"`
}

func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var raw fileConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	timeout, err := parseDuration(raw.API.Timeout, 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("parsing api.timeout: %w", err)
	}
	ttl, err := parseDuration(raw.Cache.TTL, 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("parsing cache.ttl: %w", err)
	}

	return &config.Config{
		Server: raw.Server,
		API: config.APIConfig{
			BaseURL: raw.API.BaseURL,
			Timeout: timeout,
		},
		Cache:   config.CacheConfig{TTL: ttl},
		Auth:    raw.Auth,
		Offline: raw.Offline,
		Log:     raw.Log,
	}, nil
}

func parseDuration(raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	return time.ParseDuration(raw)
}
