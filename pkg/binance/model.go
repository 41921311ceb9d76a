package binance

import "github.com/cockroachdb/apd/v3"

// binanceTicker represents the raw 24hr ticker response.
type binanceTicker struct {
	Symbol             string      `json:"symbol"`
	PriceChange        apd.Decimal `json:"priceChange"`
	PriceChangePercent apd.Decimal `json:"priceChangePercent"`
	WeightedAvgPrice   apd.Decimal `json:"weightedAvgPrice"`
	LastPrice          apd.Decimal `json:"lastPrice"`
	BidPrice           apd.Decimal `json:"bidPrice"`
	AskPrice           apd.Decimal `json:"askPrice"`
	OpenPrice          apd.Decimal `json:"openPrice"`
	HighPrice          apd.Decimal `json:"highPrice"`
	LowPrice           apd.Decimal `json:"lowPrice"`
	Volume             apd.Decimal `json:"volume"`
	QuoteVolume        apd.Decimal `json:"quoteVolume"`
	OpenTime           int64       `json:"openTime"`
	CloseTime          int64       `json:"closeTime"`
	Count              int64       `json:"count"`
}

// binancePrice represents the raw price ticker response.
type binancePrice struct {
	Symbol string      `json:"symbol"`
	Price  apd.Decimal `json:"price"`
}

// binanceBookTicker represents the raw best bid/ask response.
type binanceBookTicker struct {
	Symbol   string      `json:"symbol"`
	BidPrice apd.Decimal `json:"bidPrice"`
	BidQty   apd.Decimal `json:"bidQty"`
	AskPrice apd.Decimal `json:"askPrice"`
	AskQty   apd.Decimal `json:"askQty"`
}

// binanceDepth represents the raw order book response. Levels arrive as
// [price, quantity] string pairs.
type binanceDepth struct {
	LastUpdateID int64      `json:"lastUpdateId"`
	Bids         [][]string `json:"bids"`
	Asks         [][]string `json:"asks"`
}

// binanceTrade represents a raw public trade.
type binanceTrade struct {
	ID           int64       `json:"id"`
	Price        apd.Decimal `json:"price"`
	Qty          apd.Decimal `json:"qty"`
	QuoteQty     apd.Decimal `json:"quoteQty"`
	Time         int64       `json:"time"`
	IsBuyerMaker bool        `json:"isBuyerMaker"`
	IsBestMatch  bool        `json:"isBestMatch"`
}

// binanceAggTrade represents a raw compressed trade. Binance uses
// single-letter field names on this endpoint.
type binanceAggTrade struct {
	ID           int64       `json:"a"`
	Price        apd.Decimal `json:"p"`
	Qty          apd.Decimal `json:"q"`
	FirstTradeID int64       `json:"f"`
	LastTradeID  int64       `json:"l"`
	Time         int64       `json:"T"`
	IsBuyerMaker bool        `json:"m"`
}

// binanceKline represents a raw kline row: a heterogeneous JSON array of
// timestamps, price strings, and counters.
type binanceKline []any

// binanceRateLimit represents a raw rate limit descriptor.
type binanceRateLimit struct {
	RateLimitType string `json:"rateLimitType"`
	Interval      string `json:"interval"`
	IntervalNum   int    `json:"intervalNum"`
	Limit         int    `json:"limit"`
}

// binanceFilter represents a raw symbol trading rule.
type binanceFilter struct {
	FilterType  string `json:"filterType"`
	MinPrice    string `json:"minPrice,omitempty"`
	MaxPrice    string `json:"maxPrice,omitempty"`
	TickSize    string `json:"tickSize,omitempty"`
	MinQty      string `json:"minQty,omitempty"`
	MaxQty      string `json:"maxQty,omitempty"`
	StepSize    string `json:"stepSize,omitempty"`
	MinNotional string `json:"minNotional,omitempty"`
}

// binanceSymbol represents a raw tradable symbol descriptor.
type binanceSymbol struct {
	Symbol             string          `json:"symbol"`
	Status             string          `json:"status"`
	BaseAsset          string          `json:"baseAsset"`
	BaseAssetPrecision int             `json:"baseAssetPrecision"`
	QuoteAsset         string          `json:"quoteAsset"`
	QuotePrecision     int             `json:"quotePrecision"`
	OrderTypes         []string        `json:"orderTypes"`
	Filters            []binanceFilter `json:"filters"`
}

// binanceExchangeInfo represents the raw exchange information response.
type binanceExchangeInfo struct {
	Timezone   string             `json:"timezone"`
	ServerTime int64              `json:"serverTime"`
	RateLimits []binanceRateLimit `json:"rateLimits"`
	Symbols    []binanceSymbol    `json:"symbols"`
}
