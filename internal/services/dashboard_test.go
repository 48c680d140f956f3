package services

import (
	"context"
	"testing"
	"time"

	"github.com/GregMSThompson/pocketledger/internal/dto"
	"github.com/GregMSThompson/pocketledger/internal/models"
	"github.com/GregMSThompson/pocketledger/pkg/helpers"
)

type stubDashboardTxStore struct {
	txs []models.Transaction
}

func (s *stubDashboardTxStore) List(_ context.Context, _ string, _ dto.TransactionQuery) ([]models.Transaction, error) {
	return s.txs, nil
}

type stubDashboardAccountStore struct {
	accounts []models.Account
}

func (s *stubDashboardAccountStore) List(_ context.Context, _ string) ([]models.Account, error) {
	return s.accounts, nil
}

type stubDashboardGoalStore struct {
	goals []models.Goal
}

func (s *stubDashboardGoalStore) List(_ context.Context, _ string) ([]models.Goal, error) {
	return s.goals, nil
}

func TestDashboardServiceGetSummary(t *testing.T) {
	txs := &stubDashboardTxStore{txs: []models.Transaction{
		{TransactionID: "t6", Kind: models.KindExpense, Category: "Food", Amount: 40, Date: "2024-03-12"},
		{TransactionID: "t5", Kind: models.KindIncome, Category: "Salary", Amount: 2000, Date: "2024-03-10"},
		{TransactionID: "t4", Kind: models.KindExpense, Category: "Transport", Amount: 15, Date: "2024-03-08"},
		{TransactionID: "t3", Kind: models.KindExpense, Category: "Food", Amount: 30, Date: "2024-03-05"},
		{TransactionID: "t2", Kind: models.KindIncome, Category: "Freelance", Amount: 500, Date: "2024-02-20"},
		{TransactionID: "t1", Kind: models.KindExpense, Category: "Utilities", Amount: 90, Date: "2024-02-01"},
	}}
	accounts := &stubDashboardAccountStore{accounts: []models.Account{
		{AccountID: "a1", Name: "Cash", Balance: 150},
		{AccountID: "a2", Name: "Checking", Balance: 1200},
	}}
	goals := &stubDashboardGoalStore{goals: []models.Goal{
		{GoalID: "g1", Title: "Trip", Deadline: "2024-09-01"},
		{GoalID: "g2", Title: "Laptop", Deadline: "2024-05-01"},
	}}

	svc := NewDashboardService(txs, accounts, goals)
	svc.now = func() time.Time {
		return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	}

	summary, err := svc.GetSummary(helpers.TestCtx(), "uid-1")
	if err != nil {
		t.Fatalf("GetSummary returned error: %v", err)
	}

	if summary.TotalBalance != 1350 {
		t.Fatalf("total balance = %v, want 1350", summary.TotalBalance)
	}
	if summary.MonthlyIncome != 2000 {
		t.Fatalf("monthly income = %v, want 2000", summary.MonthlyIncome)
	}
	if summary.MonthlyExpenses != 85 {
		t.Fatalf("monthly expenses = %v, want 85", summary.MonthlyExpenses)
	}
	if summary.MonthStart != "2024-03-01" {
		t.Fatalf("month start = %q, want 2024-03-01", summary.MonthStart)
	}

	if len(summary.RecentTransactions) != recentTransactionLimit {
		t.Fatalf("recent transactions = %d, want %d", len(summary.RecentTransactions), recentTransactionLimit)
	}
	if summary.RecentTransactions[0].TransactionID != "t6" {
		t.Fatalf("recent transactions not newest first: %+v", summary.RecentTransactions[0])
	}

	if summary.Goals[0].GoalID != "g2" || summary.Goals[1].GoalID != "g1" {
		t.Fatalf("goals not ordered by nearest deadline: %+v", summary.Goals)
	}
}
