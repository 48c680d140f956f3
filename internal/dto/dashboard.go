package dto

import (
	"github.com/GregMSThompson/pocketledger/internal/models"
)

// DashboardSummary is the single payload behind the dashboard cards:
// balance across accounts, current-month flows, latest activity, goals.
type DashboardSummary struct {
	TotalBalance       float64              `json:"totalBalance"`
	MonthlyIncome      float64              `json:"monthlyIncome"`
	MonthlyExpenses    float64              `json:"monthlyExpenses"`
	RecentTransactions []models.Transaction `json:"recentTransactions"`
	Goals              []models.Goal        `json:"goals"`
	MonthStart         string               `json:"monthStart"` // YYYY-MM-DD
}
