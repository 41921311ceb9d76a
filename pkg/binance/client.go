package binance

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"spotdata/internal/transport"
	"spotdata/pkg/core"
)

// Client is a Binance market-data API client. It is created once with its
// configuration and credentials and is safe for concurrent use: calls in
// flight share only the immutable config, the transport, and the stateless
// normalizer.
type Client struct {
	config     *core.Config
	transport  *transport.Client
	logger     zerolog.Logger
	normalizer *Normalizer
	baseURL    string
}

// ClientOption is a functional option for configuring the Client.
type ClientOption func(*clientOptions)

type clientOptions struct {
	logger  zerolog.Logger
	baseURL string
}

// WithLogger returns an option that sets the logger for the client.
func WithLogger(l zerolog.Logger) ClientOption {
	return func(o *clientOptions) {
		o.logger = l
	}
}

// WithBaseURL overrides the REST base URL. Mainly useful for pointing the
// client at a local test server.
func WithBaseURL(url string) ClientOption {
	return func(o *clientOptions) {
		o.baseURL = url
	}
}

// New creates a Client from the given configuration and options.
func New(config *core.Config, opts ...ClientOption) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	options := &clientOptions{
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(options)
	}

	tr, err := transport.NewClient(&transport.Config{
		Timeout: config.Timeout,
		Headers: config.Headers,
	}, options.logger)
	if err != nil {
		return nil, fmt.Errorf("create transport: %w", err)
	}

	base := ProductionURL
	if config.Sandbox {
		base = SandboxURL
	}
	if options.baseURL != "" {
		base = options.baseURL
	}

	return &Client{
		config:     config,
		transport:  tr,
		logger:     options.logger,
		normalizer: NewNormalizer(),
		baseURL:    base,
	}, nil
}

// Close releases the underlying transport resources.
func (c *Client) Close() error {
	return c.transport.Close()
}

// BaseURL returns the REST base URL the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ping tests connectivity to the REST API. The call succeeds on status
// 200 and fails with an UnexpectedStatus error on anything else.
func (c *Client) Ping(ctx context.Context) *Call[struct{}] {
	req, err := c.buildRequest(EndpointPing, core.Params{})
	if err != nil {
		return failedCall[struct{}](err)
	}
	return dispatchStatus(ctx, c, req)
}

// Time retrieves the current server time.
func (c *Client) Time(ctx context.Context) *Call[time.Time] {
	req, err := c.buildRequest(EndpointTime, core.Params{})
	if err != nil {
		return failedCall[time.Time](err)
	}

	return dispatch(ctx, c, req, func(body []byte) (time.Time, error) {
		ts, err := decodeServerTime(body)
		if err != nil {
			return time.Time{}, err
		}
		return time.UnixMilli(ts), nil
	})
}

// ExchangeInfo retrieves the exchange's trading rules and symbol list.
func (c *Client) ExchangeInfo(ctx context.Context) *Call[*core.ExchangeInfo] {
	req, err := c.buildRequest(EndpointExchangeInfo, core.Params{})
	if err != nil {
		return failedCall[*core.ExchangeInfo](err)
	}

	return dispatch(ctx, c, req, func(body []byte) (*core.ExchangeInfo, error) {
		return decodeRaw(body, func(raw *binanceExchangeInfo) (*core.ExchangeInfo, error) {
			return c.normalizer.NormalizeExchangeInfo(raw), nil
		})
	})
}

// Depth retrieves an order book snapshot for the symbol.
func (c *Client) Depth(ctx context.Context, symbol string, opts ...Option) *Call[*core.OrderBook] {
	params := core.Params{"symbol": core.StringParam(symbol)}
	applyQueryOptions(params, opts...)

	req, err := c.buildRequest(EndpointDepth, params)
	if err != nil {
		return failedCall[*core.OrderBook](err)
	}

	return dispatch(ctx, c, req, func(body []byte) (*core.OrderBook, error) {
		return decodeRaw(body, func(raw *binanceDepth) (*core.OrderBook, error) {
			book, err := c.normalizer.NormalizeDepth(raw, symbol)
			if err != nil {
				return nil, core.NewBodyError(err.Error(), body)
			}
			return book, nil
		})
	})
}

// Trades retrieves recent public trades for the symbol.
func (c *Client) Trades(ctx context.Context, symbol string, opts ...Option) *Call[[]core.Trade] {
	params := core.Params{"symbol": core.StringParam(symbol)}
	applyQueryOptions(params, opts...)

	req, err := c.buildRequest(EndpointTrades, params)
	if err != nil {
		return failedCall[[]core.Trade](err)
	}

	return dispatch(ctx, c, req, func(body []byte) ([]core.Trade, error) {
		return decodeRaw(body, func(raw *[]binanceTrade) ([]core.Trade, error) {
			return c.normalizer.NormalizeTrades(*raw, symbol), nil
		})
	})
}

// HistoricalTrades retrieves older public trades for the symbol. The
// endpoint requires an API key; the call fails immediately when the client
// has no credentials configured.
func (c *Client) HistoricalTrades(ctx context.Context, symbol string, opts ...Option) *Call[[]core.Trade] {
	if !c.config.HasCredentials() {
		return failedCall[[]core.Trade](core.ErrNoCredentials)
	}

	params := core.Params{"symbol": core.StringParam(symbol)}
	applyQueryOptions(params, opts...)

	req, err := c.buildRequest(EndpointHistoricalTrades, params)
	if err != nil {
		return failedCall[[]core.Trade](err)
	}

	return dispatch(ctx, c, req, func(body []byte) ([]core.Trade, error) {
		return decodeRaw(body, func(raw *[]binanceTrade) ([]core.Trade, error) {
			return c.normalizer.NormalizeTrades(*raw, symbol), nil
		})
	})
}

// AggTrades retrieves compressed/aggregate trades for the symbol.
func (c *Client) AggTrades(ctx context.Context, symbol string, opts ...Option) *Call[[]core.AggTrade] {
	params := core.Params{"symbol": core.StringParam(symbol)}
	applyQueryOptions(params, opts...)

	req, err := c.buildRequest(EndpointAggTrades, params)
	if err != nil {
		return failedCall[[]core.AggTrade](err)
	}

	return dispatch(ctx, c, req, func(body []byte) ([]core.AggTrade, error) {
		return decodeRaw(body, func(raw *[]binanceAggTrade) ([]core.AggTrade, error) {
			return c.normalizer.NormalizeAggTrades(*raw, symbol), nil
		})
	})
}

// Klines retrieves candlestick data for the symbol at the given interval
// (e.g., "1m", "1h", "1d").
func (c *Client) Klines(ctx context.Context, symbol, interval string, opts ...Option) *Call[[]core.Kline] {
	params := core.Params{
		"symbol":   core.StringParam(symbol),
		"interval": core.StringParam(interval),
	}
	applyQueryOptions(params, opts...)

	req, err := c.buildRequest(EndpointKlines, params)
	if err != nil {
		return failedCall[[]core.Kline](err)
	}

	return dispatch(ctx, c, req, func(body []byte) ([]core.Kline, error) {
		return decodeRaw(body, func(raw *[]binanceKline) ([]core.Kline, error) {
			klines, err := c.normalizer.NormalizeKlines(*raw, symbol)
			if err != nil {
				return nil, core.NewBodyError(err.Error(), body)
			}
			return klines, nil
		})
	})
}

// Ticker retrieves 24-hour price change statistics for the symbol.
func (c *Client) Ticker(ctx context.Context, symbol string) *Call[*core.Ticker] {
	params := core.Params{"symbol": core.StringParam(symbol)}

	req, err := c.buildRequest(EndpointTicker, params)
	if err != nil {
		return failedCall[*core.Ticker](err)
	}

	return dispatch(ctx, c, req, func(body []byte) (*core.Ticker, error) {
		return decodeRaw(body, func(raw *binanceTicker) (*core.Ticker, error) {
			return c.normalizer.NormalizeTicker(raw), nil
		})
	})
}

// Tickers retrieves 24-hour price change statistics for all symbols.
func (c *Client) Tickers(ctx context.Context) *Call[[]core.Ticker] {
	req, err := c.buildRequest(EndpointTicker, core.Params{})
	if err != nil {
		return failedCall[[]core.Ticker](err)
	}

	return dispatch(ctx, c, req, func(body []byte) ([]core.Ticker, error) {
		return decodeRaw(body, func(raw *[]binanceTicker) ([]core.Ticker, error) {
			return c.normalizer.NormalizeTickers(*raw), nil
		})
	})
}

// Price retrieves the latest price for the symbol.
func (c *Client) Price(ctx context.Context, symbol string) *Call[*core.Price] {
	params := core.Params{"symbol": core.StringParam(symbol)}

	req, err := c.buildRequest(EndpointPrice, params)
	if err != nil {
		return failedCall[*core.Price](err)
	}

	return dispatch(ctx, c, req, func(body []byte) (*core.Price, error) {
		return decodeRaw(body, func(raw *binancePrice) (*core.Price, error) {
			return c.normalizer.NormalizePrice(raw), nil
		})
	})
}

// Prices retrieves the latest price for all symbols.
func (c *Client) Prices(ctx context.Context) *Call[[]core.Price] {
	req, err := c.buildRequest(EndpointPrice, core.Params{})
	if err != nil {
		return failedCall[[]core.Price](err)
	}

	return dispatch(ctx, c, req, func(body []byte) ([]core.Price, error) {
		return decodeRaw(body, func(raw *[]binancePrice) ([]core.Price, error) {
			return c.normalizer.NormalizePrices(*raw), nil
		})
	})
}

// BookTicker retrieves the best resting bid and ask for the symbol.
func (c *Client) BookTicker(ctx context.Context, symbol string) *Call[*core.BookTicker] {
	params := core.Params{"symbol": core.StringParam(symbol)}

	req, err := c.buildRequest(EndpointBookTicker, params)
	if err != nil {
		return failedCall[*core.BookTicker](err)
	}

	return dispatch(ctx, c, req, func(body []byte) (*core.BookTicker, error) {
		return decodeRaw(body, func(raw *binanceBookTicker) (*core.BookTicker, error) {
			return c.normalizer.NormalizeBookTicker(raw), nil
		})
	})
}

// BookTickers retrieves the best resting bid and ask for all symbols.
func (c *Client) BookTickers(ctx context.Context) *Call[[]core.BookTicker] {
	req, err := c.buildRequest(EndpointBookTicker, core.Params{})
	if err != nil {
		return failedCall[[]core.BookTicker](err)
	}

	return dispatch(ctx, c, req, func(body []byte) ([]core.BookTicker, error) {
		return decodeRaw(body, func(raw *[]binanceBookTicker) ([]core.BookTicker, error) {
			return c.normalizer.NormalizeBookTickers(*raw), nil
		})
	})
}

// applyQueryOptions folds the optional query parameters into the param map.
func applyQueryOptions(params core.Params, opts ...Option) {
	o := ApplyOptions(opts...)

	if o.Limit > 0 {
		params.Set("limit", core.IntParam(int64(o.Limit)))
	}
	if o.FromID > 0 {
		params.Set("fromId", core.IntParam(o.FromID))
	}
	if !o.StartTime.IsZero() {
		params.Set("startTime", core.IntParam(o.StartTime.UnixMilli()))
	}
	if !o.EndTime.IsZero() {
		params.Set("endTime", core.IntParam(o.EndTime.UnixMilli()))
	}
}
