package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/GregMSThompson/pocketledger/internal/dto"
	"github.com/GregMSThompson/pocketledger/internal/errs"
	"github.com/GregMSThompson/pocketledger/internal/finance"
	"github.com/GregMSThompson/pocketledger/internal/models"
	"github.com/GregMSThompson/pocketledger/pkg/logger"
)

type transactionTSStore interface {
	Create(ctx context.Context, uid string, tx *models.Transaction) error
	Get(ctx context.Context, uid, transactionID string) (*models.Transaction, error)
	List(ctx context.Context, uid string, q dto.TransactionQuery) ([]models.Transaction, error)
	Update(ctx context.Context, uid string, tx *models.Transaction) error
	Delete(ctx context.Context, uid, transactionID string) error
}

type transactionService struct {
	store transactionTSStore
}

func NewTransactionService(store transactionTSStore) *transactionService {
	return &transactionService{store: store}
}

func (s *transactionService) Create(ctx context.Context, uid string, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	if err := validateKind(req.Kind); err != nil {
		return nil, err
	}
	if err := validateCategory(req.Category); err != nil {
		return nil, err
	}
	if err := validatePositive("amount", req.Amount); err != nil {
		return nil, err
	}
	if err := validateDate("date", req.Date); err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		TransactionID: uuid.New().String(),
		Kind:          req.Kind,
		Category:      strings.TrimSpace(req.Category),
		Amount:        req.Amount,
		Date:          req.Date,
		Note:          req.Note,
	}
	if err := s.store.Create(ctx, uid, tx); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("transaction created",
		"transaction_id", tx.TransactionID, "type", tx.Kind, "category", tx.Category)
	return tx, nil
}

func (s *transactionService) Get(ctx context.Context, uid, transactionID string) (*models.Transaction, error) {
	return s.store.Get(ctx, uid, transactionID)
}

func (s *transactionService) List(ctx context.Context, uid string, q dto.TransactionQuery) ([]models.Transaction, error) {
	if q.Kind != nil {
		if err := validateKind(*q.Kind); err != nil {
			return nil, err
		}
	}
	return s.store.List(ctx, uid, q)
}

// Update applies the present fields of a partial payload. Every present
// field is validated before the record is rewritten.
func (s *transactionService) Update(ctx context.Context, uid, transactionID string, req dto.UpdateTransactionRequest) (*models.Transaction, error) {
	if req.Kind != nil {
		if err := validateKind(*req.Kind); err != nil {
			return nil, err
		}
	}
	if req.Category != nil {
		if err := validateCategory(*req.Category); err != nil {
			return nil, err
		}
	}
	if req.Amount != nil {
		if err := validatePositive("amount", *req.Amount); err != nil {
			return nil, err
		}
	}
	if req.Date != nil {
		if err := validateDate("date", *req.Date); err != nil {
			return nil, err
		}
	}

	tx, err := s.store.Get(ctx, uid, transactionID)
	if err != nil {
		return nil, err
	}
	if req.Kind != nil {
		tx.Kind = *req.Kind
	}
	if req.Category != nil {
		tx.Category = strings.TrimSpace(*req.Category)
	}
	if req.Amount != nil {
		tx.Amount = *req.Amount
	}
	if req.Date != nil {
		tx.Date = *req.Date
	}
	if req.Note != nil {
		tx.Note = *req.Note
	}
	if err := s.store.Update(ctx, uid, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *transactionService) Delete(ctx context.Context, uid, transactionID string) error {
	// Get first so a missing or foreign id reports not-found rather
	// than silently succeeding.
	if _, err := s.store.Get(ctx, uid, transactionID); err != nil {
		return err
	}
	return s.store.Delete(ctx, uid, transactionID)
}

// RunningBalance computes the chronological balance around one
// transaction from a fresh snapshot of the owner's history.
func (s *transactionService) RunningBalance(ctx context.Context, uid, transactionID string) (finance.RunningBalance, error) {
	txs, err := s.store.List(ctx, uid, dto.TransactionQuery{})
	if err != nil {
		return finance.RunningBalance{}, err
	}
	rb, ok := finance.RunningBalanceFor(txs, transactionID)
	if !ok {
		return finance.RunningBalance{}, errs.NewNotFoundError("transaction not found")
	}
	return rb, nil
}
