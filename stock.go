package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	cacheKeyPrefix = "stock:"
	snapshotTTL    = 12 * time.Hour
)

// cacheKey derives the namespaced cache key for a symbol. The symbol goes in
// verbatim; callers must pass consistent casing for cache coherence.
func cacheKey(symbol string) string {
	return cacheKeyPrefix + symbol
}

// getStock returns the cached snapshot for symbol, or fetches, assembles, and
// caches a fresh one. A corrupt cache entry counts as a miss; an upstream
// failure never populates the cache.
func getStock(ctx context.Context, deps *Dependencies, symbol string) (Snapshot, error) {
	sublog := deps.logger.With().Str("symbol", symbol).Logger()
	key := cacheKey(symbol)

	cached, err := deps.cache.get(ctx, key)
	if err == nil {
		var snapshot Snapshot
		if err = json.Unmarshal([]byte(cached), &snapshot); err == nil {
			cacheHits.Inc()
			sublog.Debug().Str("cache_key", key).Msg("cache hit")
			return snapshot, nil
		}
		sublog.Warn().Err(err).Str("cache_key", key).Msg("corrupt cache entry, refetching")
	} else if !errors.Is(err, errCacheMiss) {
		sublog.Warn().Err(err).Str("cache_key", key).Msg("cache lookup failed, refetching")
	}
	cacheMisses.Inc()

	upstreamFetches.Inc()
	record, err := deps.gateway.fetchRawRecord(ctx, symbol)
	if err != nil {
		upstreamErrors.Inc()
		sublog.Error().Err(err).Msg("failed to fetch from upstream")
		return Snapshot{}, fmt.Errorf("%w: %s", errUpstreamFailure, err)
	}

	if len(record.Trend) == 0 {
		sublog.Debug().Msg("no recommendation trend in upstream record, defaulting to zero counts")
	}

	snapshot, err := assembleSnapshot(symbol, record)
	if err != nil {
		return Snapshot{}, err
	}

	encoded, err := json.Marshal(snapshot)
	if err != nil {
		return Snapshot{}, err
	}
	if err = deps.cache.setex(ctx, key, string(encoded), snapshotTTL); err != nil {
		sublog.Error().Err(err).Str("cache_key", key).Msg("failed to save to redis")
	}

	return snapshot, nil
}

// getStocks applies the single-symbol path to each requested symbol in order.
// A symbol that fails for any reason is dropped from the result with only a
// log line; the batch itself never fails. The drop policy lives here and
// nowhere else.
func getStocks(ctx context.Context, deps *Dependencies, symbols []string) []Snapshot {
	snapshots := make([]Snapshot, 0, len(symbols))
	for _, symbol := range symbols {
		snapshot, err := getStock(ctx, deps, symbol)
		if err != nil {
			deps.logger.Warn().Err(err).Str("symbol", symbol).Msg("dropping symbol from batch")
			continue
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots
}
