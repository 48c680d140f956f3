package models

import "time"

// Budget is a per-category spending limit for one calendar month.
type Budget struct {
	BudgetID      string    `firestore:"budgetId" json:"budgetId"`
	CategoryID    string    `firestore:"categoryId" json:"categoryId"`
	LimitAmount   float64   `firestore:"limitAmount" json:"limitAmount"`
	CurrentAmount float64   `firestore:"currentAmount" json:"currentAmount"`
	Month         string    `firestore:"month" json:"month"` // YYYY-MM
	CreatedAt     time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `firestore:"updatedAt" json:"updatedAt"`
}
