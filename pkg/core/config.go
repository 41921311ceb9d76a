package core

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Credentials holds API authentication credentials.
// They are owned by the client for its lifetime and never mutated after
// construction.
type Credentials struct {
	// APIKey is the public API key sent in the X-MBX-APIKEY header.
	APIKey string `json:"api_key"`
	// SecretKey is the private key used for query signing.
	SecretKey string `json:"secret_key"`
}

// Config contains all configuration for a market-data client.
// It is constructed once and treated as immutable afterwards.
type Config struct {
	// Sandbox selects the testnet base URL instead of production.
	Sandbox bool `json:"sandbox"`
	// Credentials are optional; endpoints that require an API key fail
	// without them.
	Credentials *Credentials `json:"credentials,omitempty"`

	// Timeout is the maximum duration for a single HTTP round trip.
	Timeout time.Duration `json:"timeout" validate:"min=1ms"`

	// Headers are extra default headers applied to every request.
	Headers map[string]string `json:"headers,omitempty" validate:"omitempty"`

	LogLevel string `json:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns a Config initialized with sensible defaults:
// production environment, 10s timeout, info log level.
func DefaultConfig() *Config {
	return &Config{
		Sandbox:  false,
		Timeout:  10 * time.Second,
		LogLevel: "info",
	}
}

var validate = validator.New()

// Validate checks the configuration against its declared constraints.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// HasCredentials reports whether API credentials are configured.
func (c *Config) HasCredentials() bool {
	return c.Credentials != nil && c.Credentials.APIKey != ""
}

// WithCredentials sets the API credentials and returns the config for chaining.
func (c *Config) WithCredentials(creds *Credentials) *Config {
	c.Credentials = creds
	return c
}

// WithSandbox enables or disables sandbox mode and returns the config for chaining.
func (c *Config) WithSandbox(sandbox bool) *Config {
	c.Sandbox = sandbox
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}
