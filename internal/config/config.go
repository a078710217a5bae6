package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mrlokans/wordcache/internal/dictionary"
)

// ErrMissingDictionaryKey is returned by Validate when DICT_KEY is unset.
var ErrMissingDictionaryKey = errors.New("DICT_KEY not found in environment")

type (
	Config struct {
		HTTP
		Global
		Database
		Dictionary
		RateLimit
		Tasks
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Dictionary struct {
		BaseURL        string
		APIKey         string
		Timeout        time.Duration
		RateLimitRPS   float64 // Outbound provider calls per second, 0 disables
		RateLimitBurst int
	}
	RateLimit struct {
		RPS   float64 // Per-client requests per second on write endpoints
		Burst int
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
)

// NewConfig resolves configuration from the environment, after loading a
// local .env file when one exists.
func NewConfig() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 5)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Dictionary provider defaults
	v.SetDefault("dict_base_url", dictionary.DefaultBaseURL)
	v.SetDefault("dict_key", "")
	v.SetDefault("dict_timeout", "10s")
	v.SetDefault("dict_rate_limit_rps", 5)
	v.SetDefault("dict_rate_limit_burst", 5)

	// Inbound rate limiting on write endpoints
	v.SetDefault("rate_limit_rps", 5)
	v.SetDefault("rate_limit_burst", 10)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Dictionary: Dictionary{
			BaseURL:        v.GetString("DICT_BASE_URL"),
			APIKey:         v.GetString("DICT_KEY"),
			Timeout:        v.GetDuration("DICT_TIMEOUT"),
			RateLimitRPS:   v.GetFloat64("DICT_RATE_LIMIT_RPS"),
			RateLimitBurst: v.GetInt("DICT_RATE_LIMIT_BURST"),
		},
		RateLimit: RateLimit{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
	}
}

// Validate reports configuration that must stop the process from starting.
func (c *Config) Validate() error {
	if c.Dictionary.APIKey == "" {
		return ErrMissingDictionaryKey
	}
	return nil
}

// DictionaryClientConfig maps the provider settings onto the client config.
func (c *Config) DictionaryClientConfig() dictionary.Config {
	return dictionary.Config{
		BaseURL:   c.Dictionary.BaseURL,
		APIKey:    c.Dictionary.APIKey,
		Timeout:   c.Dictionary.Timeout,
		RateLimit: c.Dictionary.RateLimitRPS,
		Burst:     c.Dictionary.RateLimitBurst,
	}
}
