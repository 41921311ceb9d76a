package binance

import (
	"fmt"
	"time"

	"github.com/cockroachdb/apd/v3"

	"spotdata/pkg/core"
)

// Normalizer converts wire-level Binance structures to canonical core
// types. It is stateless and safe for concurrent use.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer instance.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// NormalizeTicker converts a raw 24hr ticker to a canonical Ticker.
func (n *Normalizer) NormalizeTicker(data *binanceTicker) *core.Ticker {
	t := &core.Ticker{
		Symbol:             data.Symbol,
		PriceChange:        data.PriceChange,
		PriceChangePercent: data.PriceChangePercent,
		WeightedAvgPrice:   data.WeightedAvgPrice,
		Last:               data.LastPrice,
		Bid:                data.BidPrice,
		Ask:                data.AskPrice,
		Open:               data.OpenPrice,
		High:               data.HighPrice,
		Low:                data.LowPrice,
		Volume:             data.Volume,
		QuoteVolume:        data.QuoteVolume,
		NumTrades:          data.Count,
	}

	if data.OpenTime > 0 {
		t.OpenTime = time.UnixMilli(data.OpenTime)
	}
	if data.CloseTime > 0 {
		t.CloseTime = time.UnixMilli(data.CloseTime)
	}

	return t
}

// NormalizeTickers converts multiple raw tickers to canonical Tickers.
func (n *Normalizer) NormalizeTickers(data []binanceTicker) []core.Ticker {
	tickers := make([]core.Ticker, 0, len(data))
	for i := range data {
		tickers = append(tickers, *n.NormalizeTicker(&data[i]))
	}
	return tickers
}

// NormalizePrice converts a raw price ticker to a canonical Price.
func (n *Normalizer) NormalizePrice(data *binancePrice) *core.Price {
	return &core.Price{
		Symbol: data.Symbol,
		Value:  data.Price,
	}
}

// NormalizePrices converts multiple raw price tickers to canonical Prices.
func (n *Normalizer) NormalizePrices(data []binancePrice) []core.Price {
	prices := make([]core.Price, 0, len(data))
	for i := range data {
		prices = append(prices, *n.NormalizePrice(&data[i]))
	}
	return prices
}

// NormalizeBookTicker converts a raw book ticker to a canonical BookTicker.
func (n *Normalizer) NormalizeBookTicker(data *binanceBookTicker) *core.BookTicker {
	return &core.BookTicker{
		Symbol:   data.Symbol,
		BidPrice: data.BidPrice,
		BidQty:   data.BidQty,
		AskPrice: data.AskPrice,
		AskQty:   data.AskQty,
	}
}

// NormalizeBookTickers converts multiple raw book tickers to canonical
// BookTickers.
func (n *Normalizer) NormalizeBookTickers(data []binanceBookTicker) []core.BookTicker {
	tickers := make([]core.BookTicker, 0, len(data))
	for i := range data {
		tickers = append(tickers, *n.NormalizeBookTicker(&data[i]))
	}
	return tickers
}

// NormalizeDepth converts a raw depth snapshot to a canonical OrderBook.
func (n *Normalizer) NormalizeDepth(data *binanceDepth, symbol string) (*core.OrderBook, error) {
	book := &core.OrderBook{
		Symbol:       symbol,
		LastUpdateID: data.LastUpdateID,
	}

	bids, err := n.normalizeLevels(data.Bids)
	if err != nil {
		return nil, fmt.Errorf("normalize bids: %w", err)
	}
	book.Bids = bids

	asks, err := n.normalizeLevels(data.Asks)
	if err != nil {
		return nil, fmt.Errorf("normalize asks: %w", err)
	}
	book.Asks = asks

	return book, nil
}

func (n *Normalizer) normalizeLevels(levels [][]string) ([]core.OrderBookLevel, error) {
	result := make([]core.OrderBookLevel, 0, len(levels))

	for _, level := range levels {
		if len(level) < 2 {
			continue
		}

		var obl core.OrderBookLevel
		if err := parseDecimal(&obl.Price, level[0]); err != nil {
			return nil, fmt.Errorf("parse price: %w", err)
		}
		if err := parseDecimal(&obl.Quantity, level[1]); err != nil {
			return nil, fmt.Errorf("parse quantity: %w", err)
		}

		result = append(result, obl)
	}

	return result, nil
}

// NormalizeTrade converts a raw public trade to a canonical Trade.
func (n *Normalizer) NormalizeTrade(data *binanceTrade, symbol string) *core.Trade {
	trade := &core.Trade{
		ID:            data.ID,
		Symbol:        symbol,
		Price:         data.Price,
		Quantity:      data.Qty,
		QuoteQuantity: data.QuoteQty,
		IsBuyerMaker:  data.IsBuyerMaker,
	}

	if data.Time > 0 {
		trade.Timestamp = time.UnixMilli(data.Time)
	}

	return trade
}

// NormalizeTrades converts multiple raw trades to canonical Trades.
func (n *Normalizer) NormalizeTrades(data []binanceTrade, symbol string) []core.Trade {
	trades := make([]core.Trade, 0, len(data))
	for i := range data {
		trades = append(trades, *n.NormalizeTrade(&data[i], symbol))
	}
	return trades
}

// NormalizeAggTrade converts a raw compressed trade to a canonical AggTrade.
func (n *Normalizer) NormalizeAggTrade(data *binanceAggTrade, symbol string) *core.AggTrade {
	trade := &core.AggTrade{
		ID:           data.ID,
		Symbol:       symbol,
		Price:        data.Price,
		Quantity:     data.Qty,
		FirstTradeID: data.FirstTradeID,
		LastTradeID:  data.LastTradeID,
		IsBuyerMaker: data.IsBuyerMaker,
	}

	if data.Time > 0 {
		trade.Timestamp = time.UnixMilli(data.Time)
	}

	return trade
}

// NormalizeAggTrades converts multiple raw compressed trades to canonical
// AggTrades.
func (n *Normalizer) NormalizeAggTrades(data []binanceAggTrade, symbol string) []core.AggTrade {
	trades := make([]core.AggTrade, 0, len(data))
	for i := range data {
		trades = append(trades, *n.NormalizeAggTrade(&data[i], symbol))
	}
	return trades
}

// NormalizeKline converts a raw kline row to a canonical Kline.
// Returns an error if the row has insufficient elements.
func (n *Normalizer) NormalizeKline(data binanceKline, symbol string) (*core.Kline, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("insufficient kline elements: %d", len(data))
	}

	kline := &core.Kline{
		Symbol: symbol,
	}

	if openTime, ok := data[0].(float64); ok {
		kline.OpenTime = time.UnixMilli(int64(openTime))
	}

	if err := parseDecimalFromAny(&kline.Open, data[1]); err != nil {
		return nil, fmt.Errorf("parse open: %w", err)
	}
	if err := parseDecimalFromAny(&kline.High, data[2]); err != nil {
		return nil, fmt.Errorf("parse high: %w", err)
	}
	if err := parseDecimalFromAny(&kline.Low, data[3]); err != nil {
		return nil, fmt.Errorf("parse low: %w", err)
	}
	if err := parseDecimalFromAny(&kline.Close, data[4]); err != nil {
		return nil, fmt.Errorf("parse close: %w", err)
	}
	if err := parseDecimalFromAny(&kline.Volume, data[5]); err != nil {
		return nil, fmt.Errorf("parse volume: %w", err)
	}

	if closeTime, ok := data[6].(float64); ok {
		kline.CloseTime = time.UnixMilli(int64(closeTime))
	}

	if err := parseDecimalFromAny(&kline.QuoteVolume, data[7]); err != nil {
		kline.QuoteVolume = apd.Decimal{}
	}

	if len(data) > 8 {
		if numTrades, ok := data[8].(float64); ok {
			kline.NumTrades = int64(numTrades)
		}
	}

	return kline, nil
}

// NormalizeKlines converts multiple raw kline rows to canonical Klines.
func (n *Normalizer) NormalizeKlines(data []binanceKline, symbol string) ([]core.Kline, error) {
	klines := make([]core.Kline, 0, len(data))
	for _, k := range data {
		kline, err := n.NormalizeKline(k, symbol)
		if err != nil {
			return nil, fmt.Errorf("normalize kline: %w", err)
		}
		klines = append(klines, *kline)
	}
	return klines, nil
}

// NormalizeExchangeInfo converts the raw exchange information response to
// a canonical ExchangeInfo.
func (n *Normalizer) NormalizeExchangeInfo(data *binanceExchangeInfo) *core.ExchangeInfo {
	info := &core.ExchangeInfo{
		Timezone:   data.Timezone,
		RateLimits: make([]core.RateLimit, 0, len(data.RateLimits)),
		Symbols:    make([]core.SymbolInfo, 0, len(data.Symbols)),
	}

	if data.ServerTime > 0 {
		info.ServerTime = time.UnixMilli(data.ServerTime)
	}

	for _, rl := range data.RateLimits {
		info.RateLimits = append(info.RateLimits, core.RateLimit{
			Type:        rl.RateLimitType,
			Interval:    rl.Interval,
			IntervalNum: rl.IntervalNum,
			Limit:       rl.Limit,
		})
	}

	for _, s := range data.Symbols {
		symbol := core.SymbolInfo{
			Symbol:             s.Symbol,
			Status:             s.Status,
			BaseAsset:          s.BaseAsset,
			QuoteAsset:         s.QuoteAsset,
			BaseAssetPrecision: s.BaseAssetPrecision,
			QuotePrecision:     s.QuotePrecision,
			OrderTypes:         s.OrderTypes,
			Filters:            make([]core.SymbolFilter, 0, len(s.Filters)),
		}

		for _, f := range s.Filters {
			symbol.Filters = append(symbol.Filters, core.SymbolFilter{
				Type:        f.FilterType,
				MinPrice:    f.MinPrice,
				MaxPrice:    f.MaxPrice,
				TickSize:    f.TickSize,
				MinQty:      f.MinQty,
				MaxQty:      f.MaxQty,
				StepSize:    f.StepSize,
				MinNotional: f.MinNotional,
			})
		}

		info.Symbols = append(info.Symbols, symbol)
	}

	return info
}

func parseDecimal(dest *apd.Decimal, s string) error {
	if s == "" {
		*dest = apd.Decimal{}
		return nil
	}

	_, _, err := apd.BaseContext.SetString(dest, s)
	if err != nil {
		return fmt.Errorf("set decimal from string: %w", err)
	}

	return nil
}

func parseDecimalFromAny(dest *apd.Decimal, val any) error {
	switch v := val.(type) {
	case string:
		return parseDecimal(dest, v)
	case float64:
		_, _, err := apd.BaseContext.SetString(dest, fmt.Sprintf("%v", v))
		return err
	default:
		return fmt.Errorf("unsupported type for decimal: %T", val)
	}
}
