package services

import (
	"context"

	"github.com/GregMSThompson/pocketledger/internal/dto"
	"github.com/GregMSThompson/pocketledger/internal/finance"
	"github.com/GregMSThompson/pocketledger/internal/models"
)

type analyticsTransactionStore interface {
	List(ctx context.Context, uid string, q dto.TransactionQuery) ([]models.Transaction, error)
}

// analyticsService pulls a fresh snapshot per request and delegates all
// arithmetic to the finance package. Nothing is cached.
type analyticsService struct {
	txs analyticsTransactionStore
}

func NewAnalyticsService(txs analyticsTransactionStore) *analyticsService {
	return &analyticsService{txs: txs}
}

func (s *analyticsService) GetSummary(ctx context.Context, uid string) (finance.Summary, error) {
	txs, err := s.txs.List(ctx, uid, dto.TransactionQuery{})
	if err != nil {
		return finance.Summary{}, err
	}
	return finance.Summarize(txs), nil
}

func (s *analyticsService) GetCategories(ctx context.Context, uid string) (dto.AnalyticsCategoriesResult, error) {
	txs, err := s.txs.List(ctx, uid, dto.TransactionQuery{})
	if err != nil {
		return dto.AnalyticsCategoriesResult{}, err
	}
	return dto.AnalyticsCategoriesResult{
		Income:   finance.CategoryBreakdown(txs, models.KindIncome),
		Expenses: finance.CategoryBreakdown(txs, models.KindExpense),
	}, nil
}

func (s *analyticsService) GetTrend(ctx context.Context, uid string) (dto.AnalyticsTrendResult, error) {
	txs, err := s.txs.List(ctx, uid, dto.TransactionQuery{})
	if err != nil {
		return dto.AnalyticsTrendResult{}, err
	}
	// Buckets follow first appearance in the snapshot, so with the
	// store's date-descending listing the newest month comes first.
	return dto.AnalyticsTrendResult{Points: finance.MonthlyTrend(txs)}, nil
}
