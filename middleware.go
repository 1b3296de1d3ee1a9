package main

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Logging middleware ---------------------------------------------------------

type Logger struct {
	handler http.Handler
}

func (l *Logger) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	t := time.Now()
	l.handler.ServeHTTP(w, r)
	log.Info().
		Stringer("url", r.URL).
		Str("method", r.Method).
		Int64("response_time", time.Since(t).Nanoseconds()).
		Msg("")
}
func withLogging(h http.Handler) *Logger {
	return &Logger{h}
}

// CORS/header middleware -----------------------------------------------------

type AddHeader struct {
	handler http.Handler
}

func (a *AddHeader) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	a.handler.ServeHTTP(w, r)
}
func withAddHeader(h http.Handler) *AddHeader {
	return &AddHeader{h}
}

// Context-injection middleware ------------------------------------------------

type AddContext struct {
	handler http.Handler
	deps    *Dependencies
}

func (a *AddContext) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r = r.Clone(a.deps.logger.WithContext(r.Context()))
	a.handler.ServeHTTP(w, r)
}
func withAddContext(h http.Handler, deps *Dependencies) *AddContext {
	return &AddContext{h, deps}
}
