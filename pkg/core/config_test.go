package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.False(t, config.Sandbox)
	assert.Equal(t, 10*time.Second, config.Timeout)
	assert.Equal(t, "info", config.LogLevel)
	assert.Nil(t, config.Credentials)
}

func TestConfig_ValidateDefaults(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfig_ValidateZeroTimeout(t *testing.T) {
	config := DefaultConfig()
	config.Timeout = 0

	assert.Error(t, config.Validate())
}

func TestConfig_ValidateBadLogLevel(t *testing.T) {
	config := DefaultConfig()
	config.LogLevel = "loud"

	assert.Error(t, config.Validate())
}

func TestConfig_HasCredentials(t *testing.T) {
	config := DefaultConfig()
	assert.False(t, config.HasCredentials())

	config.WithCredentials(&Credentials{APIKey: "", SecretKey: "s"})
	assert.False(t, config.HasCredentials())

	config.WithCredentials(&Credentials{APIKey: "k", SecretKey: "s"})
	assert.True(t, config.HasCredentials())
}

func TestConfig_Chaining(t *testing.T) {
	creds := &Credentials{APIKey: "key", SecretKey: "secret"}
	config := DefaultConfig().
		WithCredentials(creds).
		WithSandbox(true).
		WithTimeout(5 * time.Second)

	assert.Equal(t, creds, config.Credentials)
	assert.True(t, config.Sandbox)
	assert.Equal(t, 5*time.Second, config.Timeout)
}
