package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequest(t *testing.T) {
	req := NewRequest("https://api.binance.com/api/v3/ping")

	assert.Equal(t, "https://api.binance.com/api/v3/ping", req.URL)
	assert.NotNil(t, req.Headers)
	assert.Empty(t, req.Signature)
}

func TestRequest_SetHeader(t *testing.T) {
	req := NewRequest("https://api.binance.com/api/v3/depth")
	result := req.SetHeader("X-MBX-APIKEY", "test-key")

	assert.Equal(t, req, result)
	assert.Equal(t, "test-key", req.Headers["X-MBX-APIKEY"])
}

func TestRequest_SetSignature(t *testing.T) {
	req := NewRequest("https://api.binance.com/api/v3/depth")
	result := req.SetSignature("abc123")

	assert.Equal(t, req, result)
	assert.Equal(t, "abc123", req.Signature)
}

func TestRequest_Chained(t *testing.T) {
	req := NewRequest("https://api.binance.com/api/v3/trades?symbol=BTCUSDT").
		SetHeader("X-MBX-APIKEY", "key").
		SetSignature("sig")

	assert.Equal(t, "key", req.Headers["X-MBX-APIKEY"])
	assert.Equal(t, "sig", req.Signature)
}
