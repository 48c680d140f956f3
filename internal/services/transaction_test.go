package services

import (
	"context"
	"errors"
	"testing"

	"github.com/GregMSThompson/pocketledger/internal/dto"
	"github.com/GregMSThompson/pocketledger/internal/errs"
	"github.com/GregMSThompson/pocketledger/internal/models"
	"github.com/GregMSThompson/pocketledger/pkg/helpers"
)

type stubTransactionStore struct {
	created     *models.Transaction
	updated     *models.Transaction
	getResult   *models.Transaction
	listResult  []models.Transaction
	deleteCalls int
	err         error
}

func (s *stubTransactionStore) Create(_ context.Context, _ string, tx *models.Transaction) error {
	s.created = tx
	return s.err
}

func (s *stubTransactionStore) Get(_ context.Context, _, _ string) (*models.Transaction, error) {
	if s.getResult == nil {
		return nil, errs.NewNotFoundError("transaction not found")
	}
	cp := *s.getResult
	return &cp, s.err
}

func (s *stubTransactionStore) List(_ context.Context, _ string, _ dto.TransactionQuery) ([]models.Transaction, error) {
	return s.listResult, s.err
}

func (s *stubTransactionStore) Update(_ context.Context, _ string, tx *models.Transaction) error {
	s.updated = tx
	return s.err
}

func (s *stubTransactionStore) Delete(_ context.Context, _, _ string) error {
	s.deleteCalls++
	return s.err
}

func TestTransactionServiceCreate(t *testing.T) {
	store := &stubTransactionStore{}
	svc := NewTransactionService(store)

	tx, err := svc.Create(helpers.TestCtx(), "uid-1", dto.CreateTransactionRequest{
		Kind:     models.KindExpense,
		Category: "  Food ",
		Amount:   0.01,
		Date:     "2024-03-15",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if tx.TransactionID == "" {
		t.Fatalf("transaction id was not assigned")
	}
	if tx.Category != "Food" {
		t.Fatalf("category not trimmed: %q", tx.Category)
	}
	if store.created != tx {
		t.Fatalf("store did not receive the created transaction")
	}
}

func TestTransactionServiceCreateRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		req  dto.CreateTransactionRequest
	}{
		{"zero amount", dto.CreateTransactionRequest{Kind: models.KindIncome, Category: "Salary", Amount: 0, Date: "2024-03-15"}},
		{"negative amount", dto.CreateTransactionRequest{Kind: models.KindIncome, Category: "Salary", Amount: -5, Date: "2024-03-15"}},
		{"bad kind", dto.CreateTransactionRequest{Kind: "transfer", Category: "Salary", Amount: 10, Date: "2024-03-15"}},
		{"blank category", dto.CreateTransactionRequest{Kind: models.KindIncome, Category: "   ", Amount: 10, Date: "2024-03-15"}},
		{"bad date", dto.CreateTransactionRequest{Kind: models.KindIncome, Category: "Salary", Amount: 10, Date: "15/03/2024"}},
		{"missing date", dto.CreateTransactionRequest{Kind: models.KindIncome, Category: "Salary", Amount: 10}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &stubTransactionStore{}
			svc := NewTransactionService(store)

			_, err := svc.Create(helpers.TestCtx(), "uid-1", tc.req)
			var verr *errs.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if store.created != nil {
				t.Fatalf("invalid payload reached the store")
			}
		})
	}
}

func TestTransactionServiceUpdatePartial(t *testing.T) {
	store := &stubTransactionStore{
		getResult: &models.Transaction{
			TransactionID: "tx-1",
			Kind:          models.KindExpense,
			Category:      "Food",
			Amount:        25,
			Date:          "2024-03-01",
			Note:          "lunch",
		},
	}
	svc := NewTransactionService(store)

	tx, err := svc.Update(helpers.TestCtx(), "uid-1", "tx-1", dto.UpdateTransactionRequest{
		Amount: helpers.Ptr(30.0),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if tx.Amount != 30 {
		t.Fatalf("amount = %v, want 30", tx.Amount)
	}
	if tx.Category != "Food" || tx.Date != "2024-03-01" || tx.Note != "lunch" {
		t.Fatalf("absent fields were modified: %+v", tx)
	}
	if store.updated == nil {
		t.Fatalf("store never received the update")
	}
}

func TestTransactionServiceUpdateRejectsBeforeRead(t *testing.T) {
	store := &stubTransactionStore{getResult: &models.Transaction{TransactionID: "tx-1"}}
	svc := NewTransactionService(store)

	_, err := svc.Update(helpers.TestCtx(), "uid-1", "tx-1", dto.UpdateTransactionRequest{
		Amount: helpers.Ptr(-1.0),
	})
	var verr *errs.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if store.updated != nil {
		t.Fatalf("invalid update reached the store")
	}
}

func TestTransactionServiceDeleteMissing(t *testing.T) {
	store := &stubTransactionStore{}
	svc := NewTransactionService(store)

	err := svc.Delete(helpers.TestCtx(), "uid-1", "nope")
	var nf *errs.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if store.deleteCalls != 0 {
		t.Fatalf("Delete reached the store for a missing id")
	}
}

func TestTransactionServiceRunningBalance(t *testing.T) {
	store := &stubTransactionStore{
		listResult: []models.Transaction{
			{TransactionID: "t3", Kind: models.KindIncome, Amount: 500, Date: "2024-02-01"},
			{TransactionID: "t2", Kind: models.KindExpense, Amount: 300, Date: "2024-01-10"},
			{TransactionID: "t1", Kind: models.KindIncome, Amount: 1000, Date: "2024-01-05"},
		},
	}
	svc := NewTransactionService(store)

	rb, err := svc.RunningBalance(helpers.TestCtx(), "uid-1", "t2")
	if err != nil {
		t.Fatalf("RunningBalance returned error: %v", err)
	}
	if rb.Before != 1000 || rb.After != 700 {
		t.Fatalf("running balance = %+v, want before 1000 after 700", rb)
	}

	_, err = svc.RunningBalance(helpers.TestCtx(), "uid-1", "unknown")
	var nf *errs.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError for unknown id, got %v", err)
	}
}
