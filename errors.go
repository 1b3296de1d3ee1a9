package main

import "errors"

var (
	errSymbolNotFound  = errors.New("no data found for symbol")
	errUpstreamFailure = errors.New("upstream market-data fetch failed")
	errCacheMiss       = errors.New("cache miss")
)
