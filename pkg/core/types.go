package core

import (
	"time"

	"github.com/cockroachdb/apd/v3"
)

// Ticker represents 24-hour rolling window price change statistics for a
// trading pair.
type Ticker struct {
	// Symbol is the trading pair identifier (e.g., "BTCUSDT").
	Symbol string `json:"symbol"`
	// PriceChange is the absolute price change over the window.
	PriceChange apd.Decimal `json:"price_change"`
	// PriceChangePercent is the relative price change over the window.
	PriceChangePercent apd.Decimal `json:"price_change_percent"`
	// WeightedAvgPrice is the volume-weighted average price.
	WeightedAvgPrice apd.Decimal `json:"weighted_avg_price"`
	// Last is the price of the most recent trade.
	Last apd.Decimal `json:"last"`
	// Bid is the highest price a buyer is willing to pay.
	Bid apd.Decimal `json:"bid"`
	// Ask is the lowest price a seller is willing to accept.
	Ask apd.Decimal `json:"ask"`
	// Open is the price at the start of the window.
	Open apd.Decimal `json:"open"`
	// High is the highest price in the window.
	High apd.Decimal `json:"high"`
	// Low is the lowest price in the window.
	Low apd.Decimal `json:"low"`
	// Volume is the base asset volume traded in the window.
	Volume apd.Decimal `json:"volume"`
	// QuoteVolume is the quote asset volume traded in the window.
	QuoteVolume apd.Decimal `json:"quote_volume"`
	// OpenTime is the start of the statistics window.
	OpenTime time.Time `json:"open_time"`
	// CloseTime is the end of the statistics window.
	CloseTime time.Time `json:"close_time"`
	// NumTrades is the number of trades in the window.
	NumTrades int64 `json:"num_trades"`
}

// Price represents the latest traded price for a trading pair.
type Price struct {
	// Symbol is the trading pair identifier.
	Symbol string `json:"symbol"`
	// Value is the latest price.
	Value apd.Decimal `json:"value"`
}

// BookTicker represents the best bid and ask currently resting on the
// order book for a trading pair.
type BookTicker struct {
	// Symbol is the trading pair identifier.
	Symbol string `json:"symbol"`
	// BidPrice is the best bid price.
	BidPrice apd.Decimal `json:"bid_price"`
	// BidQty is the quantity available at the best bid.
	BidQty apd.Decimal `json:"bid_qty"`
	// AskPrice is the best ask price.
	AskPrice apd.Decimal `json:"ask_price"`
	// AskQty is the quantity available at the best ask.
	AskQty apd.Decimal `json:"ask_qty"`
}

// OrderBookLevel represents a single price level in the order book.
type OrderBookLevel struct {
	// Price is the limit price for this level.
	Price apd.Decimal `json:"price"`
	// Quantity is the total quantity available at this price.
	Quantity apd.Decimal `json:"quantity"`
}

// OrderBook represents a depth snapshot for a trading pair.
type OrderBook struct {
	// Symbol is the trading pair for this order book.
	Symbol string `json:"symbol"`
	// LastUpdateID is the exchange sequence number of the snapshot.
	LastUpdateID int64 `json:"last_update_id"`
	// Bids are buy orders sorted by price descending.
	Bids []OrderBookLevel `json:"bids"`
	// Asks are sell orders sorted by price ascending.
	Asks []OrderBookLevel `json:"asks"`
}

// Trade represents a single executed public trade.
type Trade struct {
	// ID is the exchange-assigned trade identifier.
	ID int64 `json:"id"`
	// Symbol is the trading pair for this trade.
	Symbol string `json:"symbol"`
	// Price is the execution price.
	Price apd.Decimal `json:"price"`
	// Quantity is the base asset amount executed.
	Quantity apd.Decimal `json:"quantity"`
	// QuoteQuantity is the quote asset amount executed.
	QuoteQuantity apd.Decimal `json:"quote_quantity"`
	// Timestamp is when the trade was executed.
	Timestamp time.Time `json:"timestamp"`
	// IsBuyerMaker indicates the buyer was the resting order.
	IsBuyerMaker bool `json:"is_buyer_maker"`
}

// AggTrade represents a compressed trade: one or more fills at the same
// price from the same taker order, aggregated by the exchange.
type AggTrade struct {
	// ID is the aggregate trade identifier.
	ID int64 `json:"id"`
	// Symbol is the trading pair for this trade.
	Symbol string `json:"symbol"`
	// Price is the execution price of the aggregated fills.
	Price apd.Decimal `json:"price"`
	// Quantity is the total base asset amount across the fills.
	Quantity apd.Decimal `json:"quantity"`
	// FirstTradeID is the first constituent trade identifier.
	FirstTradeID int64 `json:"first_trade_id"`
	// LastTradeID is the last constituent trade identifier.
	LastTradeID int64 `json:"last_trade_id"`
	// Timestamp is when the trades were executed.
	Timestamp time.Time `json:"timestamp"`
	// IsBuyerMaker indicates the buyer was the resting order.
	IsBuyerMaker bool `json:"is_buyer_maker"`
}

// Kline represents a candlestick/OHLCV data point for a time period.
type Kline struct {
	// Symbol is the trading pair for this kline.
	Symbol string `json:"symbol"`
	// OpenTime is the start of the candlestick period.
	OpenTime time.Time `json:"open_time"`
	// Open is the price at the start of the period.
	Open apd.Decimal `json:"open"`
	// High is the highest price during the period.
	High apd.Decimal `json:"high"`
	// Low is the lowest price during the period.
	Low apd.Decimal `json:"low"`
	// Close is the price at the end of the period.
	Close apd.Decimal `json:"close"`
	// Volume is the base asset volume during the period.
	Volume apd.Decimal `json:"volume"`
	// CloseTime is the end of the candlestick period.
	CloseTime time.Time `json:"close_time"`
	// QuoteVolume is the quote asset volume during the period.
	QuoteVolume apd.Decimal `json:"quote_volume"`
	// NumTrades is the number of trades during the period.
	NumTrades int64 `json:"num_trades"`
}

// RateLimit describes one of the exchange's request rate limits.
type RateLimit struct {
	// Type is the rate limit category (e.g., "REQUEST_WEIGHT").
	Type string `json:"type"`
	// Interval is the measurement interval unit (e.g., "MINUTE").
	Interval string `json:"interval"`
	// IntervalNum is the number of interval units per window.
	IntervalNum int `json:"interval_num"`
	// Limit is the maximum allowed within the window.
	Limit int `json:"limit"`
}

// SymbolFilter describes a single trading rule attached to a symbol.
type SymbolFilter struct {
	// Type identifies the filter (e.g., "PRICE_FILTER", "LOT_SIZE").
	Type string `json:"type"`
	// MinPrice is the minimum allowed price (PRICE_FILTER).
	MinPrice string `json:"min_price,omitempty"`
	// MaxPrice is the maximum allowed price (PRICE_FILTER).
	MaxPrice string `json:"max_price,omitempty"`
	// TickSize is the price increment (PRICE_FILTER).
	TickSize string `json:"tick_size,omitempty"`
	// MinQty is the minimum allowed quantity (LOT_SIZE).
	MinQty string `json:"min_qty,omitempty"`
	// MaxQty is the maximum allowed quantity (LOT_SIZE).
	MaxQty string `json:"max_qty,omitempty"`
	// StepSize is the quantity increment (LOT_SIZE).
	StepSize string `json:"step_size,omitempty"`
	// MinNotional is the minimum order value (MIN_NOTIONAL).
	MinNotional string `json:"min_notional,omitempty"`
}

// SymbolInfo describes a tradable symbol and its rules.
type SymbolInfo struct {
	// Symbol is the trading pair identifier.
	Symbol string `json:"symbol"`
	// Status is the symbol trading status (e.g., "TRADING").
	Status string `json:"status"`
	// BaseAsset is the asset being bought or sold.
	BaseAsset string `json:"base_asset"`
	// QuoteAsset is the asset prices are quoted in.
	QuoteAsset string `json:"quote_asset"`
	// BaseAssetPrecision is the decimal precision of the base asset.
	BaseAssetPrecision int `json:"base_asset_precision"`
	// QuotePrecision is the decimal precision of the quote asset.
	QuotePrecision int `json:"quote_precision"`
	// OrderTypes lists the order types accepted for this symbol.
	OrderTypes []string `json:"order_types"`
	// Filters are the trading rules attached to this symbol.
	Filters []SymbolFilter `json:"filters"`
}

// ExchangeInfo describes the exchange's current trading configuration:
// server time, global rate limits, and all tradable symbols.
type ExchangeInfo struct {
	// Timezone is the exchange's reference timezone.
	Timezone string `json:"timezone"`
	// ServerTime is the exchange clock at response time.
	ServerTime time.Time `json:"server_time"`
	// RateLimits are the exchange's global request limits.
	RateLimits []RateLimit `json:"rate_limits"`
	// Symbols lists every tradable symbol and its rules.
	Symbols []SymbolInfo `json:"symbols"`
}
