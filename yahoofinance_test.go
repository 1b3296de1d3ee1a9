package main

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

const quoteSummaryFixture = `{
	"quoteSummary": {
		"result": [{
			"price": {
				"symbol": "AAPL",
				"shortName": "Apple Inc.",
				"longName": "Apple Inc.",
				"regularMarketPrice": {"raw": 178.23, "fmt": "178.23"},
				"regularMarketChange": {"raw": 1.73, "fmt": "1.73"},
				"regularMarketChangePercent": {"raw": 0.0098, "fmt": "0.98%"},
				"marketCap": {"raw": 2750000000000, "fmt": "2.75T"}
			},
			"summaryDetail": {
				"trailingPE": {"raw": 29.3, "fmt": "29.30"},
				"forwardPE": {"raw": 26.1, "fmt": "26.10"},
				"volume": {"raw": 50000000, "fmt": "50M"},
				"averageVolume": {"raw": 58000000, "fmt": "58M"},
				"fiftyTwoWeekLow": {"raw": 164.08, "fmt": "164.08"},
				"fiftyTwoWeekHigh": {"raw": 199.62, "fmt": "199.62"}
			},
			"financialData": {
				"currentPrice": {"raw": 178.23, "fmt": "178.23"},
				"targetHighPrice": {"raw": 250, "fmt": "250.00"},
				"targetLowPrice": {"raw": 158, "fmt": "158.00"},
				"targetMeanPrice": {"raw": 200.5, "fmt": "200.50"},
				"totalCash": {"raw": 61555000000, "fmt": "61.56B"},
				"totalDebt": {}
			},
			"defaultKeyStatistics": {
				"shortPercentOfFloat": {"raw": 0.0075, "fmt": "0.75%"},
				"heldPercentInsiders": {"raw": 0.0207, "fmt": "2.07%"},
				"heldPercentInstitutions": {"raw": 0.6133, "fmt": "61.33%"},
				"sharesOutstanding": {"raw": 15441900000, "fmt": "15.44B"}
			},
			"incomeStatementHistory": {
				"incomeStatementHistory": [
					{
						"endDate": {"raw": 1703980800, "fmt": "2023-12-31"},
						"netIncome": {"raw": 96995000000, "fmt": "97B"},
						"operatingIncome": {"raw": 114301000000, "fmt": "114.3B"},
						"totalOperatingExpenses": {"raw": 54847000000, "fmt": "54.85B"},
						"totalOtherIncomeExpenseNet": {"raw": -565000000, "fmt": "-565M"},
						"grossProfit": {"raw": 169148000000, "fmt": "169.15B"},
						"costOfRevenue": {"raw": 214137000000, "fmt": "214.14B"},
						"totalRevenue": {"raw": 383285000000, "fmt": "383.29B"}
					},
					{
						"endDate": {"raw": 1672444800, "fmt": "2022-12-31"},
						"netIncome": {"raw": 99803000000, "fmt": "99.8B"},
						"totalRevenue": {"raw": 394328000000, "fmt": "394.33B"}
					}
				]
			},
			"recommendationTrend": {
				"trend": [
					{"period": "0m", "strongBuy": 7, "buy": 21, "hold": 6, "sell": 1},
					{"period": "-1m", "strongBuy": 8, "buy": 20, "hold": 7, "sell": 0}
				]
			}
		}],
		"error": null
	}
}`

func TestFetchRawRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v10/finance/quoteSummary/AAPL" {
			t.Errorf("path = %q, want /v10/finance/quoteSummary/AAPL", r.URL.Path)
		}
		if r.URL.Query().Get("modules") != yahooModules {
			t.Errorf("modules = %q, want %q", r.URL.Query().Get("modules"), yahooModules)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(quoteSummaryFixture))
	}))
	defer server.Close()

	gateway := newYahooFinance(server.URL)
	record, err := gateway.fetchRawRecord(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("fetchRawRecord() error = %v", err)
	}

	if record.Symbol != "AAPL" {
		t.Errorf("symbol = %q, want AAPL", record.Symbol)
	}
	if record.DisplayName != "Apple Inc." {
		t.Errorf("displayName = %q, want Apple Inc.", record.DisplayName)
	}

	// scalar metrics present
	if got := record.Metrics["currentPrice"]; got != 178.23 {
		t.Errorf("currentPrice = %v, want 178.23", got)
	}
	if got := record.Metrics["marketCap"]; got != 2750000000000 {
		t.Errorf("marketCap = %v, want 2.75T", got)
	}
	// a wrapper without "raw" must not land in the metric map
	if _, ok := record.Metrics["totalDebt"]; ok {
		t.Error("totalDebt has no raw value and must be absent from the metrics")
	}

	// income table: most recent period first
	if len(record.Income.Periods) != 2 || record.Income.Periods[0] != "2023-12-31" {
		t.Fatalf("periods = %v, want 2023-12-31 first", record.Income.Periods)
	}
	if got := record.Income.Rows["Net Income"][0]; got != 96995000000 {
		t.Errorf("Net Income[0] = %v, want the 2023 value", got)
	}
	if got := record.Income.Rows["Net Income"][1]; got != 99803000000 {
		t.Errorf("Net Income[1] = %v, want the 2022 value", got)
	}
	// EBITDA was never reported, so its cells must be undefined
	if !math.IsNaN(record.Income.Rows["EBITDA"][0]) {
		t.Errorf("EBITDA[0] = %v, want NaN for an unreported line item", record.Income.Rows["EBITDA"][0])
	}

	if len(record.Trend) != 2 || record.Trend[0].Period != "0m" || record.Trend[0].Buy != 21 {
		t.Errorf("trend = %+v, want the 0m bucket first with buy=21", record.Trend)
	}
}

func TestFetchRawRecord_UnknownSymbol(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"quoteSummary":{"result":null,"error":{"code":"Not Found","description":"Quote not found for ticker symbol: NOSUCH"}}}`))
	}))
	defer server.Close()

	gateway := newYahooFinance(server.URL)
	record, err := gateway.fetchRawRecord(context.Background(), "NOSUCH")
	if err != nil {
		t.Fatalf("fetchRawRecord() error = %v, an unknown symbol is not a transport failure", err)
	}
	if !record.IsZero() {
		t.Errorf("record = %+v, want empty record for an unknown symbol", record)
	}
}

func TestFetchRawRecord_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"quoteSummary":{"result":[],"error":null}}`))
	}))
	defer server.Close()

	gateway := newYahooFinance(server.URL)
	record, err := gateway.fetchRawRecord(context.Background(), "NOSUCH")
	if err != nil {
		t.Fatalf("fetchRawRecord() error = %v", err)
	}
	if !record.IsZero() {
		t.Errorf("record = %+v, want empty record", record)
	}
}

func TestFetchRawRecord_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gateway := newYahooFinance(server.URL)
	if _, err := gateway.fetchRawRecord(context.Background(), "AAPL"); err == nil {
		t.Fatal("fetchRawRecord() error = nil, want an error for a 5xx response")
	}
}
