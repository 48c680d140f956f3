package services

import (
	"context"
	"sort"
	"time"

	"github.com/GregMSThompson/pocketledger/internal/dto"
	"github.com/GregMSThompson/pocketledger/internal/finance"
	"github.com/GregMSThompson/pocketledger/internal/models"
)

const recentTransactionLimit = 5

type dashboardTransactionStore interface {
	List(ctx context.Context, uid string, q dto.TransactionQuery) ([]models.Transaction, error)
}

type dashboardAccountStore interface {
	List(ctx context.Context, uid string) ([]models.Account, error)
}

type dashboardGoalStore interface {
	List(ctx context.Context, uid string) ([]models.Goal, error)
}

type dashboardService struct {
	txs      dashboardTransactionStore
	accounts dashboardAccountStore
	goals    dashboardGoalStore
	now      func() time.Time
}

func NewDashboardService(txs dashboardTransactionStore, accounts dashboardAccountStore, goals dashboardGoalStore) *dashboardService {
	return &dashboardService{txs: txs, accounts: accounts, goals: goals, now: time.Now}
}

// GetSummary assembles the dashboard payload: balance across accounts,
// current-month flows, the five most recent transactions, and goals
// ordered by nearest deadline.
func (s *dashboardService) GetSummary(ctx context.Context, uid string) (dto.DashboardSummary, error) {
	now := s.now()
	summary := dto.DashboardSummary{
		MonthStart: finance.MonthStart(now).Format(finance.DateLayout),
	}

	accounts, err := s.accounts.List(ctx, uid)
	if err != nil {
		return summary, err
	}
	for _, a := range accounts {
		summary.TotalBalance += a.Balance
	}

	txs, err := s.txs.List(ctx, uid, dto.TransactionQuery{})
	if err != nil {
		return summary, err
	}
	summary.MonthlyIncome = finance.MonthlyIncome(txs, now)
	summary.MonthlyExpenses = finance.MonthlyExpenses(txs, now)

	// The store already returns newest first.
	if len(txs) > recentTransactionLimit {
		txs = txs[:recentTransactionLimit]
	}
	summary.RecentTransactions = txs

	goals, err := s.goals.List(ctx, uid)
	if err != nil {
		return summary, err
	}
	sort.SliceStable(goals, func(i, j int) bool {
		return goals[i].Deadline < goals[j].Deadline
	})
	summary.Goals = goals

	return summary, nil
}
