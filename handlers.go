package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type stocksRequest struct {
	Symbols []string `json:"symbols"`
}

type stocksResponse struct {
	Stocks []Snapshot `json:"stocks"`
}

func healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: appVersion})
	}
}

func stockHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		symbol := mux.Vars(r)["symbol"]

		snapshot, err := getStock(ctx, deps, symbol)
		switch {
		case errors.Is(err, errSymbolNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse{Detail: "no data found for symbol " + symbol})
		case err != nil:
			zerolog.Ctx(ctx).Error().Err(err).Str("symbol", symbol).Msg("stock lookup failed")
			writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "failed to fetch data for symbol " + symbol})
		default:
			writeJSON(w, http.StatusOK, snapshot)
		}
	}
}

// stocksHandler is best-effort: symbols that fail are left out of the
// response and the status is 200 regardless. Only an unreadable request body
// is rejected.
func stocksHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req stocksRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request body"})
			return
		}

		writeJSON(w, http.StatusOK, stocksResponse{Stocks: getStocks(ctx, deps, req.Symbols)})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
