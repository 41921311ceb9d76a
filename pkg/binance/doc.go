// Package binance implements a client for the Binance public market-data
// REST API.
//
// The package includes:
//   - Client: one method per endpoint, each returning an in-flight Call
//   - request assembly: canonical query ordering, URL composition, API-key header
//   - signQuery: the HMAC-SHA256 query signing scheme
//   - Normalizer: conversion between wire-level and canonical types
//
// Example usage:
//
//	client, err := binance.New(core.DefaultConfig())
//	call := client.Price(ctx, "BTCUSDT")
//	price, err := call.Result(ctx)
package binance
