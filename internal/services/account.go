package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/GregMSThompson/pocketledger/internal/dto"
	"github.com/GregMSThompson/pocketledger/internal/models"
	"github.com/GregMSThompson/pocketledger/pkg/logger"
)

type accountASStore interface {
	Create(ctx context.Context, uid string, a *models.Account) error
	Get(ctx context.Context, uid, accountID string) (*models.Account, error)
	List(ctx context.Context, uid string) ([]models.Account, error)
	Update(ctx context.Context, uid string, a *models.Account) error
	Delete(ctx context.Context, uid, accountID string) error
}

type accountService struct {
	store accountASStore
}

func NewAccountService(store accountASStore) *accountService {
	return &accountService{store: store}
}

func (s *accountService) Create(ctx context.Context, uid string, req dto.CreateAccountRequest) (*models.Account, error) {
	if err := validateTitle("name", req.Name); err != nil {
		return nil, err
	}
	var balance float64
	if req.Balance != nil {
		if err := validateNonNegative("balance", *req.Balance); err != nil {
			return nil, err
		}
		balance = *req.Balance
	}

	a := &models.Account{
		AccountID: uuid.New().String(),
		Name:      strings.TrimSpace(req.Name),
		Balance:   balance,
	}
	if err := s.store.Create(ctx, uid, a); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("account created", "account_id", a.AccountID, "name", a.Name)
	return a, nil
}

func (s *accountService) Get(ctx context.Context, uid, accountID string) (*models.Account, error) {
	return s.store.Get(ctx, uid, accountID)
}

func (s *accountService) List(ctx context.Context, uid string) ([]models.Account, error) {
	return s.store.List(ctx, uid)
}

func (s *accountService) Update(ctx context.Context, uid, accountID string, req dto.UpdateAccountRequest) (*models.Account, error) {
	if req.Name != nil {
		if err := validateTitle("name", *req.Name); err != nil {
			return nil, err
		}
	}
	if req.Balance != nil {
		if err := validateNonNegative("balance", *req.Balance); err != nil {
			return nil, err
		}
	}

	a, err := s.store.Get(ctx, uid, accountID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		a.Name = strings.TrimSpace(*req.Name)
	}
	if req.Balance != nil {
		a.Balance = *req.Balance
	}
	if err := s.store.Update(ctx, uid, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *accountService) Delete(ctx context.Context, uid, accountID string) error {
	if _, err := s.store.Get(ctx, uid, accountID); err != nil {
		return err
	}
	return s.store.Delete(ctx, uid, accountID)
}
