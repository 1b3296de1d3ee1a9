package main

// Snapshot is the normalized, cacheable record of one symbol's fundamentals
// and analyst recommendation counts. Optional fields are pointers so that
// "absent" survives the cache round-trip distinct from zero. A Snapshot is
// never mutated after assembly.
type Snapshot struct {
	Symbol      string `json:"symbol"`
	DisplayName string `json:"displayName"`

	NetIncome          *float64 `json:"netIncome,omitempty"`
	OperatingIncome    *float64 `json:"operatingIncome,omitempty"`
	OperatingExpense   *float64 `json:"operatingExpense,omitempty"`
	OtherIncomeExpense *float64 `json:"otherIncomeExpense,omitempty"`
	GrossProfit        *float64 `json:"grossProfit,omitempty"`
	CostOfRevenue      *float64 `json:"costOfRevenue,omitempty"`
	Revenue            *float64 `json:"revenue,omitempty"`
	EBITDA             *float64 `json:"ebitda,omitempty"`

	ShortInterestPercent    *float64 `json:"shortInterestPercent,omitempty"`
	HeldPercentInsiders     *float64 `json:"heldPercentInsiders,omitempty"`
	HeldPercentInstitutions *float64 `json:"heldPercentInstitutions,omitempty"`
	SharesOutstanding       *float64 `json:"sharesOutstanding,omitempty"`

	TotalCash *float64 `json:"totalCash,omitempty"`
	TotalDebt *float64 `json:"totalDebt,omitempty"`

	CurrentPrice               *float64 `json:"currentPrice,omitempty"`
	TargetHighPrice            *float64 `json:"targetHighPrice,omitempty"`
	TargetLowPrice             *float64 `json:"targetLowPrice,omitempty"`
	TargetMeanPrice            *float64 `json:"targetMeanPrice,omitempty"`
	ForwardPE                  *float64 `json:"forwardPE,omitempty"`
	TrailingPE                 *float64 `json:"trailingPE,omitempty"`
	PERatio                    *float64 `json:"peRatio,omitempty"`
	MarketCap                  *float64 `json:"marketCap,omitempty"`
	FiftyTwoWeekLow            *float64 `json:"fiftyTwoWeekLow,omitempty"`
	FiftyTwoWeekHigh           *float64 `json:"fiftyTwoWeekHigh,omitempty"`
	RegularMarketChangePercent *float64 `json:"regularMarketChangePercent,omitempty"`
	RegularMarketChange        *float64 `json:"regularMarketChange,omitempty"`
	RegularMarketPrice         *float64 `json:"regularMarketPrice,omitempty"`

	Volume        *int64 `json:"volume,omitempty"`
	AverageVolume *int64 `json:"averageVolume,omitempty"`

	Recommendations Recommendations `json:"recommendations"`
}

// Recommendations holds the current-period analyst recommendation counts.
// Always present and non-negative; missing upstream data yields zeros, not
// omission.
type Recommendations struct {
	StrongBuy int64 `json:"strongBuy"`
	Buy       int64 `json:"buy"`
	Hold      int64 `json:"hold"`
	Sell      int64 `json:"sell"`
}

// assembleSnapshot combines the extractors' output with identity fields into
// one Snapshot. An empty record means upstream never heard of the symbol, and
// that is the one condition reported as an error rather than defaulted.
func assembleSnapshot(symbol string, rec RawRecord) (Snapshot, error) {
	if rec.IsZero() {
		return Snapshot{}, errSymbolNotFound
	}

	canonical := rec.Symbol
	if canonical == "" {
		canonical = symbol
	}
	displayName := rec.DisplayName
	if displayName == "" {
		displayName = symbol
	}

	income := extractIncomeFields(rec.Income)

	snapshot := Snapshot{
		Symbol:      canonical,
		DisplayName: displayName,

		NetIncome:          income.netIncome,
		OperatingIncome:    income.operatingIncome,
		OperatingExpense:   income.operatingExpense,
		OtherIncomeExpense: income.otherIncomeExpense,
		GrossProfit:        income.grossProfit,
		CostOfRevenue:      income.costOfRevenue,
		Revenue:            income.revenue,
		EBITDA:             income.ebitda,

		ShortInterestPercent:    metricValue(rec.Metrics, "shortPercentOfFloat"),
		HeldPercentInsiders:     metricValue(rec.Metrics, "heldPercentInsiders"),
		HeldPercentInstitutions: metricValue(rec.Metrics, "heldPercentInstitutions"),
		SharesOutstanding:       metricValue(rec.Metrics, "sharesOutstanding"),

		TotalCash: metricValue(rec.Metrics, "totalCash"),
		TotalDebt: metricValue(rec.Metrics, "totalDebt"),

		CurrentPrice:               metricValue(rec.Metrics, "currentPrice"),
		TargetHighPrice:            metricValue(rec.Metrics, "targetHighPrice"),
		TargetLowPrice:             metricValue(rec.Metrics, "targetLowPrice"),
		TargetMeanPrice:            metricValue(rec.Metrics, "targetMeanPrice"),
		ForwardPE:                  metricValue(rec.Metrics, "forwardPE"),
		TrailingPE:                 metricValue(rec.Metrics, "trailingPE"),
		MarketCap:                  metricValue(rec.Metrics, "marketCap"),
		FiftyTwoWeekLow:            metricValue(rec.Metrics, "fiftyTwoWeekLow"),
		FiftyTwoWeekHigh:           metricValue(rec.Metrics, "fiftyTwoWeekHigh"),
		RegularMarketChangePercent: metricValue(rec.Metrics, "regularMarketChangePercent"),
		RegularMarketChange:        metricValue(rec.Metrics, "regularMarketChange"),
		RegularMarketPrice:         metricValue(rec.Metrics, "regularMarketPrice"),

		Volume:        metricCount(rec.Metrics, "volume"),
		AverageVolume: metricCount(rec.Metrics, "averageVolume"),

		Recommendations: extractRecommendations(rec.Trend),
	}

	// peRatio is derived from trailingPE, never sourced on its own
	if snapshot.TrailingPE != nil {
		pe := *snapshot.TrailingPE
		snapshot.PERatio = &pe
	}

	return snapshot, nil
}
