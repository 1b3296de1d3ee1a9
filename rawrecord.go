package main

// RawRecord is the upstream provider's response for one symbol. It is
// untrusted and possibly partial: any row, metric, or bucket may be missing
// and any value may be NaN.
type RawRecord struct {
	Symbol      string
	DisplayName string
	Income      IncomeStatement
	Metrics     map[string]float64
	Trend       []RecommendationBucket
}

// IncomeStatement is a row-indexed financial statement: line-item name to one
// value per reporting period, most recent period first.
type IncomeStatement struct {
	Periods []string
	Rows    map[string][]float64
}

// RecommendationBucket is one time bucket of analyst recommendation counts.
// Period "0m" is the current bucket.
type RecommendationBucket struct {
	Period    string
	StrongBuy int64
	Buy       int64
	Hold      int64
	Sell      int64
}

// IsZero reports whether upstream resolved nothing at all for the symbol.
// That means the symbol itself is unknown, not that some field is missing.
func (r RawRecord) IsZero() bool {
	return r.Symbol == "" && r.DisplayName == "" &&
		len(r.Metrics) == 0 && len(r.Income.Rows) == 0 && len(r.Trend) == 0
}
