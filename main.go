package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	appVersion = "1.0.0"

	debugging = false // output DEBUG level logs
)

func main() {
	ctx := setupLogging()

	// .env is optional; real environment variables win either way
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		zerolog.Ctx(ctx).Fatal().Err(err).Msg("failed to load configuration")
	}

	redisPool := newRedisPool(cfg)
	defer redisPool.Close()

	deps := &Dependencies{
		logger:  zerolog.Ctx(ctx),
		cfg:     cfg,
		cache:   &redisStore{pool: redisPool},
		gateway: newYahooFinance(cfg.YahooBaseURL),
	}

	startHTTPServer(ctx, deps)
}
