package binance

// Endpoint identifies one of the supported market-data API operations.
type Endpoint int

// Endpoint constants define all supported API operations.
const (
	// EndpointPing tests REST API connectivity.
	EndpointPing Endpoint = iota
	// EndpointTime retrieves the current server time.
	EndpointTime
	// EndpointExchangeInfo retrieves exchange trading rules and symbols.
	EndpointExchangeInfo
	// EndpointDepth retrieves the order book for a symbol.
	EndpointDepth
	// EndpointTrades retrieves recent trades for a symbol.
	EndpointTrades
	// EndpointHistoricalTrades retrieves older trades; requires an API key.
	EndpointHistoricalTrades
	// EndpointAggTrades retrieves compressed/aggregate trades.
	EndpointAggTrades
	// EndpointKlines retrieves candlestick data.
	EndpointKlines
	// EndpointTicker retrieves 24-hour price change statistics.
	EndpointTicker
	// EndpointPrice retrieves the latest price.
	EndpointPrice
	// EndpointBookTicker retrieves the best resting bid and ask.
	EndpointBookTicker
)

// String returns the string representation of the endpoint.
func (e Endpoint) String() string {
	return [...]string{
		"PING",
		"TIME",
		"EXCHANGE_INFO",
		"DEPTH",
		"TRADES",
		"HISTORICAL_TRADES",
		"AGG_TRADES",
		"KLINES",
		"TICKER",
		"PRICE",
		"BOOK_TICKER",
	}[e]
}

// Path returns the REST path for the endpoint.
func (e Endpoint) Path() string {
	return [...]string{
		"/api/v3/ping",
		"/api/v3/time",
		"/api/v3/exchangeInfo",
		"/api/v3/depth",
		"/api/v3/trades",
		"/api/v3/historicalTrades",
		"/api/v3/aggTrades",
		"/api/v3/klines",
		"/api/v3/ticker/24hr",
		"/api/v3/ticker/price",
		"/api/v3/ticker/bookTicker",
	}[e]
}

// RequiresAPIKey reports whether the endpoint needs the X-MBX-APIKEY header.
func (e Endpoint) RequiresAPIKey() bool {
	return e == EndpointHistoricalTrades
}
