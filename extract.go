package main

import "math"

// incomeFields is the income-statement slice of a Snapshot, each field
// independently optional.
type incomeFields struct {
	netIncome          *float64
	operatingIncome    *float64
	operatingExpense   *float64
	otherIncomeExpense *float64
	grossProfit        *float64
	costOfRevenue      *float64
	revenue            *float64
	ebitda             *float64
}

// extractIncomeFields reads each line item from the most recent reporting
// period. A missing row or undefined value blanks that field alone; it never
// takes sibling fields down with it.
func extractIncomeFields(stmt IncomeStatement) incomeFields {
	if len(stmt.Periods) == 0 {
		return incomeFields{}
	}
	return incomeFields{
		netIncome:          lineItem(stmt, "Net Income"),
		operatingIncome:    lineItem(stmt, "Operating Income"),
		operatingExpense:   lineItem(stmt, "Operating Expense"),
		otherIncomeExpense: lineItem(stmt, "Other Income Expense"),
		grossProfit:        lineItem(stmt, "Gross Profit"),
		costOfRevenue:      lineItem(stmt, "Cost Of Revenue"),
		revenue:            lineItem(stmt, "Total Revenue"),
		ebitda:             lineItem(stmt, "EBITDA"),
	}
}

// lineItem returns the named row's value for the most recent period, or nil
// when the row is missing, has no columns, or holds an undefined value.
func lineItem(stmt IncomeStatement, name string) *float64 {
	values, ok := stmt.Rows[name]
	if !ok || len(values) == 0 {
		return nil
	}
	return definedFloat(values[0])
}

// metricValue looks up one scalar metric, nil on a missing key or an
// undefined value.
func metricValue(metrics map[string]float64, key string) *float64 {
	value, ok := metrics[key]
	if !ok {
		return nil
	}
	return definedFloat(value)
}

// metricCount is metricValue for whole-number metrics (volume counts).
func metricCount(metrics map[string]float64, key string) *int64 {
	value := metricValue(metrics, key)
	if value == nil {
		return nil
	}
	count := int64(*value)
	return &count
}

// definedFloat converts NaN/Inf, the upstream markers for "no value", to nil.
func definedFloat(value float64) *float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}
	return &value
}

// extractRecommendations pulls the current-period ("0m") analyst counts out
// of the trend table. A missing table, a missing current bucket, or a
// malformed column all degrade to zero counts; this path never fails the
// caller.
func extractRecommendations(trend []RecommendationBucket) Recommendations {
	for _, bucket := range trend {
		if bucket.Period != "0m" {
			continue
		}
		return Recommendations{
			StrongBuy: nonNegative(bucket.StrongBuy),
			Buy:       nonNegative(bucket.Buy),
			Hold:      nonNegative(bucket.Hold),
			Sell:      nonNegative(bucket.Sell),
		}
	}
	return Recommendations{}
}

func nonNegative(count int64) int64 {
	if count < 0 {
		return 0
	}
	return count
}
