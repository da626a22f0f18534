package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig `yaml:"server"`
	API     APIConfig    `yaml:"api"`
	Cache   CacheConfig  `yaml:"cache"`
	Auth    AuthConfig   `yaml:"auth"`
	Offline bool         `yaml:"offline"`
	Log     LogConfig    `yaml:"log"`
}

// ServerConfig applies to the stub fixture server only.
type ServerConfig struct {
	Port int `yaml:"port"`
}

type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type CacheConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

type AuthConfig struct {
	TokenFile string `yaml:"token_file"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func Load() (*Config, error) {
	// A .env in the working directory seeds the environment; absence is fine.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8090)
	viper.SetDefault("API_URL", "http://localhost:8090")
	viper.SetDefault("API_TIMEOUT", "10s")
	viper.SetDefault("CACHE_TTL", "5s")
	viper.SetDefault("TOKEN_FILE", ".ardoise-token")
	viper.SetDefault("OFFLINE_MODE", false)
	viper.SetDefault("LOG_LEVEL", "info")

	timeout, err := time.ParseDuration(viper.GetString("API_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(viper.GetString("CACHE_TTL"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		API: APIConfig{
			BaseURL: viper.GetString("API_URL"),
			Timeout: timeout,
		},
		Cache: CacheConfig{
			TTL: ttl,
		},
		Auth: AuthConfig{
			TokenFile: viper.GetString("TOKEN_FILE"),
		},
		Offline: viper.GetBool("OFFLINE_MODE"),
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
