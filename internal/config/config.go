// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Load. TELEGRAM_BOT_TOKEN is the only required setting.
const (
	EnvConfigPath  = "POKEBOT_CONFIG"
	EnvToken       = "TELEGRAM_BOT_TOKEN"
	EnvWorkers     = "POKEBOT_WORKERS"
	EnvEnableStart = "POKEBOT_ENABLE_START"
	EnvShowStats   = "POKEBOT_SHOW_STATS"
	EnvBaseURL     = "POKEAPI_BASE_URL"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
	EnvAdminPort   = "ADMIN_PORT"
	EnvDev         = "POKEBOT_DEV"
)

const DefaultPokeAPIBaseURL = "https://pokeapi.co/api/v2"

type RuntimeConfig struct {
	Dev bool
}

type BotConfig struct {
	Token              string `yaml:"token"`
	Workers            int    `yaml:"workers"`      // concurrent update handlers
	PollTimeout        int    `yaml:"poll_timeout"` // long-poll timeout in seconds
	EnableStartCommand *bool  `yaml:"enable_start_command"`
	ShowStats          bool   `yaml:"show_stats"`
	Debug              bool   `yaml:"debug"`
}

// StartCommandEnabled reports whether /start is answered with the greeting.
// Unset means enabled.
func (b BotConfig) StartCommandEnabled() bool {
	return b.EnableStartCommand == nil || *b.EnableStartCommand
}

type PokeAPIConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type AdminConfig struct {
	Port int `yaml:"port"` // 0 disables the ops server
}

type Config struct {
	Bot     BotConfig     `yaml:"bot"`
	PokeAPI PokeAPIConfig `yaml:"pokeapi"`
	Log     LogConfig     `yaml:"log"`
	Admin   AdminConfig   `yaml:"admin"`

	Runtime RuntimeConfig `yaml:"-"`
}

// Load reads the optional YAML file at path, applies environment overrides and defaults.
// An empty path skips the file. A missing token is not an error here; the caller decides
// whether to start.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config file %s not found: %w", path, err)
			}
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	if cfg.Admin.Port < 0 || cfg.Admin.Port > 65535 {
		return nil, fmt.Errorf("admin.port out of range: %d", cfg.Admin.Port)
	}
	return &cfg, nil
}

// LoadFromEnv is Load with the path taken from POKEBOT_CONFIG.
func LoadFromEnv() (*Config, error) {
	return Load(strings.TrimSpace(os.Getenv(EnvConfigPath)))
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvToken)); v != "" {
		cfg.Bot.Token = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		cfg.Bot.Workers = n
	}
	if v := os.Getenv(EnvEnableStart); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvEnableStart, err)
		}
		cfg.Bot.EnableStartCommand = &on
	}
	if v := os.Getenv(EnvShowStats); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvShowStats, err)
		}
		cfg.Bot.ShowStats = on
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.PokeAPI.BaseURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv(EnvAdminPort); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAdminPort, err)
		}
		cfg.Admin.Port = n
	}
	if v := os.Getenv(EnvDev); v != "" {
		cfg.Runtime.Dev, _ = strconv.ParseBool(v)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Bot.Workers <= 0 {
		cfg.Bot.Workers = 8
	}
	if cfg.Bot.PollTimeout <= 0 {
		cfg.Bot.PollTimeout = 60
	}
	if cfg.PokeAPI.BaseURL == "" {
		cfg.PokeAPI.BaseURL = DefaultPokeAPIBaseURL
	}
	cfg.PokeAPI.BaseURL = strings.TrimRight(cfg.PokeAPI.BaseURL, "/")
	cfg.PokeAPI.Timeout = normalizeTimeout(cfg.PokeAPI.Timeout)
	if cfg.PokeAPI.UserAgent == "" {
		cfg.PokeAPI.UserAgent = "pokeinfo-bot"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
}

func normalizeTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return 15 * time.Second
	}
	return d
}
