package dto

import "github.com/GregMSThompson/pocketledger/internal/finance"

// AnalyticsCategoriesResult carries one breakdown per kind so a single
// call can feed both pie charts.
type AnalyticsCategoriesResult struct {
	Income   []finance.CategorySlice `json:"income"`
	Expenses []finance.CategorySlice `json:"expenses"`
}

type AnalyticsTrendResult struct {
	Points []finance.TrendPoint `json:"points"`
}
