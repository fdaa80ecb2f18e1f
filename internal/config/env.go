package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "PROMPTCRAFT_"

// loadDotEnv reads .env from the working directory. A missing file is fine.
func loadDotEnv() {
	_ = godotenv.Load()
}

// applyEnv overrides fields from environment variables. Switching the
// provider without naming a model or base URL selects that provider's defaults.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return v, ok && v != ""
	}

	if v, ok := get("PROVIDER"); ok && v != c.Provider {
		c.Provider = v
		c.Model = ""
		c.BaseURL = ""
	}
	if v, ok := get("API_KEY"); ok {
		c.APIKey = v
	}
	if v, ok := get("MODEL"); ok {
		c.Model = v
	}
	if v, ok := get("BASE_URL"); ok {
		c.BaseURL = v
	}
	if v, ok := get("MAX_RETRIES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %sMAX_RETRIES: %w", ErrInvalidConfig, EnvPrefix, err)
		}
		c.Retry.MaxRetries = n
	}
	if v, ok := get("BASE_DELAY"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %sBASE_DELAY: %w", ErrInvalidConfig, EnvPrefix, err)
		}
		c.Retry.BaseDelay = d
	}
	if v, ok := get("ATTEMPT_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %sATTEMPT_TIMEOUT: %w", ErrInvalidConfig, EnvPrefix, err)
		}
		c.Retry.AttemptTimeout = d
	}
	if v, ok := get("CACHE_POLICY"); ok {
		c.Cache.Policy = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := get("SERVER_ADDR"); ok {
		c.Server.Addr = v
	}

	c.fillProviderDefaults()
	return nil
}
