package dto

type CreateBudgetRequest struct {
	CategoryID    string   `json:"categoryId"`
	LimitAmount   float64  `json:"limitAmount"`
	CurrentAmount *float64 `json:"currentAmount,omitempty"`
	Month         string   `json:"month,omitempty"` // YYYY-MM, defaults to the current month
}

type UpdateBudgetRequest struct {
	CategoryID    *string  `json:"categoryId,omitempty"`
	LimitAmount   *float64 `json:"limitAmount,omitempty"`
	CurrentAmount *float64 `json:"currentAmount,omitempty"`
	Month         *string  `json:"month,omitempty"`
}

// BudgetQuery filters a list. Month nil means all months.
type BudgetQuery struct {
	Month *string
}
