package binance

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spotdata/pkg/core"
)

func newServerClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(core.DefaultConfig(), WithBaseURL(server.URL))
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestCall_CompletesOnce(t *testing.T) {
	call := newCall[int]()

	call.complete(1, nil)
	call.complete(2, fmt.Errorf("late"))

	value, err := call.Result(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, value)
}

func TestCall_ResultContextCancel(t *testing.T) {
	call := newCall[int]()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := call.Result(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	// The call itself is still pending; a later completion is observable.
	call.complete(7, nil)
	value, err := call.Result(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, value)
}

func TestCall_Done(t *testing.T) {
	call := newCall[string]()

	select {
	case <-call.Done():
		t.Fatal("call completed before anything happened")
	default:
	}

	call.complete("ok", nil)

	select {
	case <-call.Done():
	case <-time.After(time.Second):
		t.Fatal("Done channel never closed")
	}
}

func TestFailedCall(t *testing.T) {
	wantErr := core.NewStatusError(500)
	call := failedCall[int](wantErr)

	_, err := call.Result(context.Background())
	assert.ErrorIs(t, err, wantErr)
}

func TestDispatchStatus_OK(t *testing.T) {
	client := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{}"))
	}))

	_, err := client.Ping(context.Background()).Result(context.Background())
	assert.NoError(t, err)
}

func TestDispatchStatus_Teapot(t *testing.T) {
	client := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	_, err := client.Ping(context.Background()).Result(context.Background())

	require.Error(t, err)
	var apiErr *core.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, core.ErrorTypeUnexpectedStatus, apiErr.Type)
	assert.Equal(t, 418, apiErr.StatusCode)
}

func TestDispatchStatus_ServerError(t *testing.T) {
	client := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.Ping(context.Background()).Result(context.Background())

	var apiErr *core.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.StatusCode)
}

func TestDispatch_TypedDecode(t *testing.T) {
	client := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"symbol":"BTCUSDT","price":"50123.45"}`))
	}))

	price, err := client.Price(context.Background(), "BTCUSDT").Result(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "BTCUSDT", price.Symbol)
	assert.Equal(t, "50123.45", price.Value.Text('f'))
}

func TestDispatch_MalformedJSON(t *testing.T) {
	client := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"symbol":`))
	}))

	_, err := client.Price(context.Background(), "BTCUSDT").Result(context.Background())

	require.Error(t, err)
	assert.True(t, core.IsDecodeError(err))
}

func TestDispatch_EmptyBody(t *testing.T) {
	client := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	_, err := client.Price(context.Background(), "BTCUSDT").Result(context.Background())

	require.Error(t, err)
	assert.True(t, core.IsNoResponse(err))
}

func TestDispatch_TransportError(t *testing.T) {
	client, err := New(core.DefaultConfig().WithTimeout(time.Second),
		WithBaseURL("http://127.0.0.1:1"))
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	_, err = client.Price(context.Background(), "BTCUSDT").Result(context.Background())

	require.Error(t, err)
	assert.True(t, core.IsNetworkError(err))
}

func TestDispatch_ExchangeErrorBody(t *testing.T) {
	client := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":-1121,"msg":"Invalid symbol."}`))
	}))

	_, err := client.Price(context.Background(), "NOPE").Result(context.Background())

	require.Error(t, err)
	var apiErr *core.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, core.ErrorTypeUnexpectedStatus, apiErr.Type)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "Invalid symbol.")
	assert.Contains(t, apiErr.Message, "-1121")
}

func TestDispatch_ErrorStatusUnparsableBody(t *testing.T) {
	client := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	}))

	_, err := client.Price(context.Background(), "BTCUSDT").Result(context.Background())

	var apiErr *core.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 502, apiErr.StatusCode)
}

func TestTime_Success(t *testing.T) {
	client := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"serverTime":1620000000000}`))
	}))

	serverTime, err := client.Time(context.Background()).Result(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1620000000000), serverTime.UnixMilli())
}

func TestTime_MissingKey(t *testing.T) {
	client := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	_, err := client.Time(context.Background()).Result(context.Background())

	require.Error(t, err)
	assert.True(t, core.IsInvalidBody(err))
}

func TestTime_MalformedBody(t *testing.T) {
	client := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[1,2,3]`))
	}))

	_, err := client.Time(context.Background()).Result(context.Background())

	require.Error(t, err)
	assert.True(t, core.IsDecodeError(err))
}

func TestDispatch_ConcurrentCallsIndependent(t *testing.T) {
	// N concurrent calls with distinct parameters must each see their own
	// query string and complete exactly once, with no cross-call leakage.
	const n = 20

	var mu sync.Mutex
	seen := make(map[string]int)

	client := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		symbol := r.URL.Query().Get("symbol")
		mu.Lock()
		seen[symbol]++
		mu.Unlock()
		fmt.Fprintf(w, `{"symbol":%q,"price":"1.0"}`, symbol)
	}))

	calls := make([]*Call[*core.Price], n)
	for i := 0; i < n; i++ {
		symbol := fmt.Sprintf("SYM%02dUSDT", i)
		calls[i] = client.Price(context.Background(), symbol)
	}

	for i, call := range calls {
		price, err := call.Result(context.Background())
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("SYM%02dUSDT", i), price.Symbol)
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, n)
	for symbol, count := range seen {
		assert.Equal(t, 1, count, "symbol %s fetched more than once", symbol)
	}
}
