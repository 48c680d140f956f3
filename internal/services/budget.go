package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/GregMSThompson/pocketledger/internal/dto"
	"github.com/GregMSThompson/pocketledger/internal/errs"
	"github.com/GregMSThompson/pocketledger/internal/models"
	"github.com/GregMSThompson/pocketledger/pkg/logger"
)

type budgetBSStore interface {
	Create(ctx context.Context, uid string, b *models.Budget) error
	Get(ctx context.Context, uid, budgetID string) (*models.Budget, error)
	List(ctx context.Context, uid string, q dto.BudgetQuery) ([]models.Budget, error)
	Update(ctx context.Context, uid string, b *models.Budget) error
	Delete(ctx context.Context, uid, budgetID string) error
}

type budgetService struct {
	store budgetBSStore
	now   func() time.Time
}

func NewBudgetService(store budgetBSStore) *budgetService {
	return &budgetService{store: store, now: time.Now}
}

func (s *budgetService) Create(ctx context.Context, uid string, req dto.CreateBudgetRequest) (*models.Budget, error) {
	if req.CategoryID == "" {
		return nil, errs.NewValidationError("categoryId is required")
	}
	if err := validatePositive("limitAmount", req.LimitAmount); err != nil {
		return nil, err
	}
	var current float64
	if req.CurrentAmount != nil {
		if err := validateNonNegative("currentAmount", *req.CurrentAmount); err != nil {
			return nil, err
		}
		current = *req.CurrentAmount
	}
	month := req.Month
	if month == "" {
		month = s.now().Format(monthLayout)
	} else if err := validateMonth(month); err != nil {
		return nil, err
	}

	b := &models.Budget{
		BudgetID:      uuid.New().String(),
		CategoryID:    req.CategoryID,
		LimitAmount:   req.LimitAmount,
		CurrentAmount: current,
		Month:         month,
	}
	if err := s.store.Create(ctx, uid, b); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("budget created",
		"budget_id", b.BudgetID, "category_id", b.CategoryID, "month", b.Month)
	return b, nil
}

func (s *budgetService) Get(ctx context.Context, uid, budgetID string) (*models.Budget, error) {
	return s.store.Get(ctx, uid, budgetID)
}

func (s *budgetService) List(ctx context.Context, uid string, q dto.BudgetQuery) ([]models.Budget, error) {
	if q.Month != nil {
		if err := validateMonth(*q.Month); err != nil {
			return nil, err
		}
	}
	return s.store.List(ctx, uid, q)
}

func (s *budgetService) Update(ctx context.Context, uid, budgetID string, req dto.UpdateBudgetRequest) (*models.Budget, error) {
	if req.CategoryID != nil && *req.CategoryID == "" {
		return nil, errs.NewValidationError("categoryId must not be empty")
	}
	if req.LimitAmount != nil {
		if err := validatePositive("limitAmount", *req.LimitAmount); err != nil {
			return nil, err
		}
	}
	if req.CurrentAmount != nil {
		if err := validateNonNegative("currentAmount", *req.CurrentAmount); err != nil {
			return nil, err
		}
	}
	if req.Month != nil {
		if err := validateMonth(*req.Month); err != nil {
			return nil, err
		}
	}

	b, err := s.store.Get(ctx, uid, budgetID)
	if err != nil {
		return nil, err
	}
	if req.CategoryID != nil {
		b.CategoryID = *req.CategoryID
	}
	if req.LimitAmount != nil {
		b.LimitAmount = *req.LimitAmount
	}
	if req.CurrentAmount != nil {
		b.CurrentAmount = *req.CurrentAmount
	}
	if req.Month != nil {
		b.Month = *req.Month
	}
	if err := s.store.Update(ctx, uid, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *budgetService) Delete(ctx context.Context, uid, budgetID string) error {
	if _, err := s.store.Get(ctx, uid, budgetID); err != nil {
		return err
	}
	return s.store.Delete(ctx, uid, budgetID)
}
