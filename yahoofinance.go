package main

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// stockGateway is the upstream market-data provider boundary.
type stockGateway interface {
	fetchRawRecord(ctx context.Context, symbol string) (RawRecord, error)
}

const yahooModules = "price,summaryDetail,financialData,defaultKeyStatistics,incomeStatementHistory,recommendationTrend"

// yahooFinance fetches quoteSummary data from the public Yahoo Finance
// endpoint and flattens it into a RawRecord.
type yahooFinance struct {
	client *resty.Client
}

func newYahooFinance(baseURL string) *yahooFinance {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "Mozilla/5.0").
		SetTimeout(30 * time.Second)

	return &yahooFinance{client: client}
}

// yahooNumber is Yahoo's raw/fmt wrapper around a numeric field. A missing
// wrapper or a wrapper without "raw" both mean the value is undefined.
type yahooNumber struct {
	Raw *float64 `json:"raw"`
}

type yahooQuoteSummary struct {
	QuoteSummary struct {
		Result []yahooResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

type yahooResult struct {
	Price struct {
		Symbol                     string      `json:"symbol"`
		ShortName                  string      `json:"shortName"`
		LongName                   string      `json:"longName"`
		RegularMarketPrice         yahooNumber `json:"regularMarketPrice"`
		RegularMarketChange        yahooNumber `json:"regularMarketChange"`
		RegularMarketChangePercent yahooNumber `json:"regularMarketChangePercent"`
		MarketCap                  yahooNumber `json:"marketCap"`
	} `json:"price"`
	SummaryDetail struct {
		TrailingPE       yahooNumber `json:"trailingPE"`
		ForwardPE        yahooNumber `json:"forwardPE"`
		MarketCap        yahooNumber `json:"marketCap"`
		Volume           yahooNumber `json:"volume"`
		AverageVolume    yahooNumber `json:"averageVolume"`
		FiftyTwoWeekLow  yahooNumber `json:"fiftyTwoWeekLow"`
		FiftyTwoWeekHigh yahooNumber `json:"fiftyTwoWeekHigh"`
	} `json:"summaryDetail"`
	FinancialData struct {
		CurrentPrice    yahooNumber `json:"currentPrice"`
		TargetHighPrice yahooNumber `json:"targetHighPrice"`
		TargetLowPrice  yahooNumber `json:"targetLowPrice"`
		TargetMeanPrice yahooNumber `json:"targetMeanPrice"`
		TotalCash       yahooNumber `json:"totalCash"`
		TotalDebt       yahooNumber `json:"totalDebt"`
	} `json:"financialData"`
	DefaultKeyStatistics struct {
		ShortPercentOfFloat     yahooNumber `json:"shortPercentOfFloat"`
		HeldPercentInsiders     yahooNumber `json:"heldPercentInsiders"`
		HeldPercentInstitutions yahooNumber `json:"heldPercentInstitutions"`
		SharesOutstanding       yahooNumber `json:"sharesOutstanding"`
	} `json:"defaultKeyStatistics"`
	IncomeStatementHistory struct {
		Statements []yahooIncomeStatement `json:"incomeStatementHistory"`
	} `json:"incomeStatementHistory"`
	RecommendationTrend struct {
		Trend []struct {
			Period    string `json:"period"`
			StrongBuy int64  `json:"strongBuy"`
			Buy       int64  `json:"buy"`
			Hold      int64  `json:"hold"`
			Sell      int64  `json:"sell"`
		} `json:"trend"`
	} `json:"recommendationTrend"`
}

type yahooIncomeStatement struct {
	EndDate struct {
		Fmt string `json:"fmt"`
	} `json:"endDate"`
	NetIncome                  yahooNumber `json:"netIncome"`
	OperatingIncome            yahooNumber `json:"operatingIncome"`
	TotalOperatingExpenses     yahooNumber `json:"totalOperatingExpenses"`
	TotalOtherIncomeExpenseNet yahooNumber `json:"totalOtherIncomeExpenseNet"`
	GrossProfit                yahooNumber `json:"grossProfit"`
	CostOfRevenue              yahooNumber `json:"costOfRevenue"`
	TotalRevenue               yahooNumber `json:"totalRevenue"`
	EBITDA                     yahooNumber `json:"ebitda"`
}

// fetchRawRecord pulls the quoteSummary modules for one symbol. An unknown
// symbol comes back as an empty RawRecord, not an error; only transport and
// decode problems are errors.
func (y *yahooFinance) fetchRawRecord(ctx context.Context, symbol string) (RawRecord, error) {
	var summary yahooQuoteSummary

	resp, err := y.client.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		SetQueryParam("modules", yahooModules).
		SetResult(&summary).
		Get("/v10/finance/quoteSummary/{symbol}")
	if err != nil {
		return RawRecord{}, fmt.Errorf("quoteSummary request for %s: %w", symbol, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return RawRecord{}, nil
	}
	if !resp.IsSuccess() {
		return RawRecord{}, fmt.Errorf("quoteSummary for %s: status %d", symbol, resp.StatusCode())
	}
	if apiErr := summary.QuoteSummary.Error; apiErr != nil {
		return RawRecord{}, fmt.Errorf("quoteSummary for %s: %s %s", symbol, apiErr.Code, apiErr.Description)
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return RawRecord{}, nil
	}

	return newRawRecord(summary.QuoteSummary.Result[0]), nil
}

func newRawRecord(result yahooResult) RawRecord {
	metrics := map[string]float64{}
	put := func(key string, n yahooNumber) {
		if n.Raw != nil {
			metrics[key] = *n.Raw
		}
	}

	// summaryDetail first so the price module wins where both carry a value
	put("trailingPE", result.SummaryDetail.TrailingPE)
	put("forwardPE", result.SummaryDetail.ForwardPE)
	put("marketCap", result.SummaryDetail.MarketCap)
	put("volume", result.SummaryDetail.Volume)
	put("averageVolume", result.SummaryDetail.AverageVolume)
	put("fiftyTwoWeekLow", result.SummaryDetail.FiftyTwoWeekLow)
	put("fiftyTwoWeekHigh", result.SummaryDetail.FiftyTwoWeekHigh)

	put("currentPrice", result.FinancialData.CurrentPrice)
	put("targetHighPrice", result.FinancialData.TargetHighPrice)
	put("targetLowPrice", result.FinancialData.TargetLowPrice)
	put("targetMeanPrice", result.FinancialData.TargetMeanPrice)
	put("totalCash", result.FinancialData.TotalCash)
	put("totalDebt", result.FinancialData.TotalDebt)

	put("shortPercentOfFloat", result.DefaultKeyStatistics.ShortPercentOfFloat)
	put("heldPercentInsiders", result.DefaultKeyStatistics.HeldPercentInsiders)
	put("heldPercentInstitutions", result.DefaultKeyStatistics.HeldPercentInstitutions)
	put("sharesOutstanding", result.DefaultKeyStatistics.SharesOutstanding)

	put("marketCap", result.Price.MarketCap)
	put("regularMarketPrice", result.Price.RegularMarketPrice)
	put("regularMarketChange", result.Price.RegularMarketChange)
	put("regularMarketChangePercent", result.Price.RegularMarketChangePercent)

	displayName := result.Price.LongName
	if displayName == "" {
		displayName = result.Price.ShortName
	}

	trend := make([]RecommendationBucket, 0, len(result.RecommendationTrend.Trend))
	for _, t := range result.RecommendationTrend.Trend {
		trend = append(trend, RecommendationBucket{
			Period:    t.Period,
			StrongBuy: t.StrongBuy,
			Buy:       t.Buy,
			Hold:      t.Hold,
			Sell:      t.Sell,
		})
	}

	return RawRecord{
		Symbol:      result.Price.Symbol,
		DisplayName: displayName,
		Income:      newIncomeStatement(result.IncomeStatementHistory.Statements),
		Metrics:     metrics,
		Trend:       trend,
	}
}

// newIncomeStatement builds the row-indexed table, one column per annual
// statement, most recent first (upstream order). Values Yahoo did not report
// become NaN so the extractor treats them as undefined.
func newIncomeStatement(statements []yahooIncomeStatement) IncomeStatement {
	if len(statements) == 0 {
		return IncomeStatement{}
	}

	stmt := IncomeStatement{
		Periods: make([]string, 0, len(statements)),
		Rows:    map[string][]float64{},
	}
	appendCell := func(name string, n yahooNumber) {
		value := math.NaN()
		if n.Raw != nil {
			value = *n.Raw
		}
		stmt.Rows[name] = append(stmt.Rows[name], value)
	}

	for _, s := range statements {
		stmt.Periods = append(stmt.Periods, s.EndDate.Fmt)
		appendCell("Net Income", s.NetIncome)
		appendCell("Operating Income", s.OperatingIncome)
		appendCell("Operating Expense", s.TotalOperatingExpenses)
		appendCell("Other Income Expense", s.TotalOtherIncomeExpenseNet)
		appendCell("Gross Profit", s.GrossProfit)
		appendCell("Cost Of Revenue", s.CostOfRevenue)
		appendCell("Total Revenue", s.TotalRevenue)
		appendCell("EBITDA", s.EBITDA)
	}

	return stmt
}
