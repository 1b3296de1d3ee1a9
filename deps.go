package main

import "github.com/rs/zerolog"

// Dependencies carries the per-process collaborators every handler needs.
// Built once in main and handed down explicitly; tests substitute fakes for
// the cache and the gateway.
type Dependencies struct {
	logger  *zerolog.Logger
	cfg     *Config
	cache   cacheStore
	gateway stockGateway
}
