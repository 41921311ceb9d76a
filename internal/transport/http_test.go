package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{Timeout: 5 * time.Second}
}

func TestNewClient(t *testing.T) {
	client, err := NewClient(testConfig(), zerolog.Nop())

	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := NewClient(&Config{Timeout: 0}, zerolog.Nop())
	assert.Error(t, err)
}

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/test", r.URL.Path)
		assert.Equal(t, "value", r.URL.Query().Get("key"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"result":"success"}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(), zerolog.Nop())
	require.NoError(t, err)

	resp, err := client.Get(context.Background(), server.URL+"/test?key=value")

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode())
	assert.Equal(t, `{"result":"success"}`, string(resp.Bytes()))
}

func TestClient_GetQueryVerbatim(t *testing.T) {
	// The raw query must travel exactly as composed; no re-encoding.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "limit=100&symbol=BTCUSDT", r.URL.RawQuery)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(), zerolog.Nop())
	require.NoError(t, err)

	_, err = client.Get(context.Background(), server.URL+"/api/v3/depth?limit=100&symbol=BTCUSDT")
	require.NoError(t, err)
}

func TestClient_GetWithHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-MBX-APIKEY"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(testConfig(), zerolog.Nop())
	require.NoError(t, err)

	resp, err := client.Get(context.Background(), server.URL+"/test", WithHeader("X-MBX-APIKEY", "test-key"))

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode())
}

func TestClient_GetWithHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "a", r.Header.Get("X-One"))
		assert.Equal(t, "b", r.Header.Get("X-Two"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(testConfig(), zerolog.Nop())
	require.NoError(t, err)

	_, err = client.Get(context.Background(), server.URL+"/test",
		WithHeaders(map[string]string{"X-One": "a", "X-Two": "b"}))
	require.NoError(t, err)
}

func TestClient_DefaultHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "spotdata", r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	config := testConfig()
	config.Headers = map[string]string{"User-Agent": "spotdata"}

	client, err := NewClient(config, zerolog.Nop())
	require.NoError(t, err)

	_, err = client.Get(context.Background(), server.URL+"/test")
	require.NoError(t, err)
}

func TestClient_Closed(t *testing.T) {
	client, err := NewClient(testConfig(), zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, client.Close())
	require.NoError(t, client.Close())

	_, err = client.Get(context.Background(), "http://localhost/test")
	assert.Error(t, err)
}
