package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidConfig   = errors.New("invalid config")
	ErrUnknownProvider = errors.New("unknown provider")
	ErrMissingAPIKey   = errors.New("missing API key")
	ErrMissingBaseURL  = errors.New("missing base URL")
)

var validate = validator.New()

// Validate checks field ranges and enumerations
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value: %v)", e.Namespace(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// CheckCredentials reports whether the selected provider can be called
func (c *Config) CheckCredentials() error {
	info := GetProvider(c.Provider)
	if info == nil {
		return fmt.Errorf("%w: %s", ErrUnknownProvider, c.Provider)
	}
	if info.NeedsAPIKey && c.APIKey == "" {
		return fmt.Errorf("%w for %s", ErrMissingAPIKey, info.Name)
	}
	if info.NeedsBaseURL && c.BaseURL == "" {
		return fmt.Errorf("%w for %s", ErrMissingBaseURL, info.Name)
	}
	return nil
}
