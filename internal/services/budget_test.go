package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GregMSThompson/pocketledger/internal/dto"
	"github.com/GregMSThompson/pocketledger/internal/errs"
	"github.com/GregMSThompson/pocketledger/internal/models"
	"github.com/GregMSThompson/pocketledger/pkg/helpers"
)

type stubBudgetStore struct {
	created   *models.Budget
	getResult *models.Budget
	err       error
}

func (s *stubBudgetStore) Create(_ context.Context, _ string, b *models.Budget) error {
	s.created = b
	return s.err
}

func (s *stubBudgetStore) Get(_ context.Context, _, _ string) (*models.Budget, error) {
	if s.getResult == nil {
		return nil, errs.NewNotFoundError("budget not found")
	}
	cp := *s.getResult
	return &cp, s.err
}

func (s *stubBudgetStore) List(_ context.Context, _ string, _ dto.BudgetQuery) ([]models.Budget, error) {
	return nil, s.err
}

func (s *stubBudgetStore) Update(_ context.Context, _ string, _ *models.Budget) error { return s.err }
func (s *stubBudgetStore) Delete(_ context.Context, _, _ string) error                { return s.err }

func TestBudgetServiceCreateDefaultsMonth(t *testing.T) {
	store := &stubBudgetStore{}
	svc := NewBudgetService(store)
	svc.now = func() time.Time {
		return time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	}

	b, err := svc.Create(helpers.TestCtx(), "uid-1", dto.CreateBudgetRequest{
		CategoryID:  "expense-food",
		LimitAmount: 400,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if b.Month != "2024-03" {
		t.Fatalf("month = %q, want current month 2024-03", b.Month)
	}
	if store.created == nil {
		t.Fatalf("store never received the budget")
	}
}

func TestBudgetServiceCreateRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		req  dto.CreateBudgetRequest
	}{
		{"missing category", dto.CreateBudgetRequest{LimitAmount: 400}},
		{"zero limit", dto.CreateBudgetRequest{CategoryID: "expense-food", LimitAmount: 0}},
		{"bad month", dto.CreateBudgetRequest{CategoryID: "expense-food", LimitAmount: 400, Month: "March 2024"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &stubBudgetStore{}
			svc := NewBudgetService(store)

			_, err := svc.Create(helpers.TestCtx(), "uid-1", tc.req)
			var verr *errs.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if store.created != nil {
				t.Fatalf("invalid budget reached the store")
			}
		})
	}
}

func TestBudgetServiceListValidatesMonth(t *testing.T) {
	svc := NewBudgetService(&stubBudgetStore{})

	_, err := svc.List(helpers.TestCtx(), "uid-1", dto.BudgetQuery{Month: helpers.Ptr("2024-3")})
	var verr *errs.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
