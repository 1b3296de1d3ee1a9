package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func setupLogging() context.Context {
	// alter the caller() return to only include the last directory
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		parts := strings.Split(file, "/")
		if len(parts) > 1 {
			return strings.Join(parts[len(parts)-2:], "/") + ":" + strconv.Itoa(line)
		}
		return file + ":" + strconv.Itoa(line)
	}
	pgmPath := strings.Split(os.Args[0], `/`)
	logTag := "fundcache"
	if len(pgmPath) > 1 {
		logTag = pgmPath[len(pgmPath)-1]
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if debugging {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := log.With().Str("@tag", logTag).Caller().Logger()
	ctx := logger.WithContext(context.Background())

	return ctx
}

func newRouter(deps *Dependencies) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", healthHandler()).Methods("GET")
	router.HandleFunc("/stock/{symbol}", stockHandler(deps)).Methods("GET")
	router.HandleFunc("/stocks", stocksHandler(deps)).Methods("POST")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return router
}

func startHTTPServer(ctx context.Context, deps *Dependencies) {
	router := newRouter(deps)

	// middleware chain
	chainedMux1 := withAddContext(router, deps) // deepest level, last to run
	chainedMux2 := withAddHeader(chainedMux1)
	chainedMux3 := withLogging(chainedMux2) // outer level, first to run

	zerolog.Ctx(ctx).Info().Int("port", deps.cfg.HTTPPort).Msg("started serving requests")

	// startup or die
	server := &http.Server{
		Handler:      chainedMux3,
		Addr:         ":" + strconv.Itoa(deps.cfg.HTTPPort),
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil {
		zerolog.Ctx(ctx).Fatal().Err(err).Msg("ended abnormally")
	} else {
		zerolog.Ctx(ctx).Info().Msg("stopped serving requests")
	}
}
