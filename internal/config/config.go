package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Provider string `yaml:"provider" validate:"required,oneof=novita openai anthropic gemini ollama custom"`
	APIKey   string `yaml:"api_key,omitempty"`
	Model    string `yaml:"model" validate:"required"`
	BaseURL  string `yaml:"base_url,omitempty" validate:"omitempty,url"`

	Generation GenerationConfig `yaml:"generation"`
	Retry      RetryConfig      `yaml:"retry"`
	Cache      CacheConfig      `yaml:"cache"`
	Log        LogConfig        `yaml:"log"`
	Server     ServerConfig     `yaml:"server"`
}

type GenerationConfig struct {
	MaxTokens   int     `yaml:"max_tokens" validate:"gt=0"`
	Temperature float64 `yaml:"temperature" validate:"gte=0,lte=2"`
	TopP        float64 `yaml:"top_p" validate:"gt=0,lte=1"`
	// PreferTopP sends top_p instead of temperature to Anthropic
	PreferTopP bool `yaml:"prefer_top_p"`
}

type RetryConfig struct {
	MaxRetries     int           `yaml:"max_retries" validate:"gte=0,lte=10"`
	BaseDelay      time.Duration `yaml:"base_delay" validate:"gte=0s"`
	AttemptTimeout time.Duration `yaml:"attempt_timeout" validate:"gt=0s"`
}

type CacheConfig struct {
	Policy string `yaml:"policy" validate:"oneof=unbounded lru none"`
	Size   int    `yaml:"size" validate:"gte=0"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required,hostname_port"`
}

// DefaultProvider is used when no provider is configured
const DefaultProvider = "novita"

func DefaultConfig() *Config {
	cfg := baseConfig()
	cfg.Provider = DefaultProvider
	cfg.fillProviderDefaults()
	return cfg
}

// baseConfig holds every default except the provider selection
func baseConfig() *Config {
	return &Config{
		Generation: GenerationConfig{
			MaxTokens:   4096,
			Temperature: 0.7,
			TopP:        0.9,
		},
		Retry: RetryConfig{
			MaxRetries:     3,
			BaseDelay:      time.Second,
			AttemptTimeout: 30 * time.Second,
		},
		Cache: CacheConfig{
			Policy: "unbounded",
			Size:   512,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8787",
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "promptcraft"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the config file at the default path on top of the defaults.
// It returns nil, nil when no file exists.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the config file at path on top of the defaults.
// It returns nil, nil when the file does not exist.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	cfg := baseConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Provider == "" {
		cfg.Provider = DefaultProvider
	}
	cfg.fillProviderDefaults()

	return cfg, nil
}

// fillProviderDefaults sets an empty model or base URL from the provider table
func (c *Config) fillProviderDefaults() {
	info := GetProvider(c.Provider)
	if info == nil {
		return
	}
	if c.Model == "" {
		c.Model = info.DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = info.DefaultBaseURL
	}
}

// SetProvider switches to provider id and selects its default model and base URL
func (c *Config) SetProvider(id string) {
	if id == c.Provider {
		return
	}
	c.Provider = id
	c.Model = ""
	c.BaseURL = ""
	c.fillProviderDefaults()
}

// Save writes the config to the default path
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path, readable only by the owner
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// Resolve builds the effective config: defaults, then the file at path
// (or the default path when empty), then .env, then PROMPTCRAFT_* variables.
// The second result reports whether a config file was found.
func Resolve(path string) (*Config, bool, error) {
	var (
		cfg *Config
		err error
	)
	if path == "" {
		cfg, err = Load()
	} else {
		cfg, err = LoadFile(path)
	}
	if err != nil {
		return nil, false, err
	}

	found := cfg != nil
	if !found {
		cfg = DefaultConfig()
	}

	loadDotEnv()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, found, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, found, err
	}

	return cfg, found, nil
}
