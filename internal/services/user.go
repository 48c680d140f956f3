package services

import (
	"context"

	"github.com/GregMSThompson/pocketledger/internal/errs"
	"github.com/GregMSThompson/pocketledger/internal/models"
	"github.com/GregMSThompson/pocketledger/pkg/logger"
)

type userUSStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, uid string) (*models.User, error)
	DeleteUser(ctx context.Context, uid string) error
}

// ownerPurger deletes every record of one entity an owner has.
type ownerPurger interface {
	DeleteAll(ctx context.Context, uid string) error
}

// identityDeleter removes the identity-provider record itself.
type identityDeleter interface {
	DeleteUser(ctx context.Context, uid string) error
}

type userService struct {
	store        userUSStore
	transactions ownerPurger
	goals        ownerPurger
	budgets      ownerPurger
	accounts     ownerPurger
	identity     identityDeleter
}

func NewUserService(store userUSStore, transactions, goals, budgets, accounts ownerPurger, identity identityDeleter) *userService {
	return &userService{
		store:        store,
		transactions: transactions,
		goals:        goals,
		budgets:      budgets,
		accounts:     accounts,
		identity:     identity,
	}
}

func (s *userService) Register(ctx context.Context, uid, email, first, last string) error {
	log := logger.FromContext(ctx)

	user := &models.User{
		UID:       uid,
		Email:     email,
		FirstName: first,
		LastName:  last,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		log.Error("failed to create user profile", "error", err)
		return err
	}

	log.Info("user registered", "first_name", first, "last_name", last)
	return nil
}

func (s *userService) GetProfile(ctx context.Context, uid string) (*models.User, error) {
	return s.store.GetUser(ctx, uid)
}

// DeleteAccount tears down everything the owner has, children before
// parents: transactions, goals, budgets, accounts, the profile doc and
// finally the identity record. The sequence is fail-fast with no
// compensation; a mid-sequence failure is reported as a partial
// deletion and later steps never run.
func (s *userService) DeleteAccount(ctx context.Context, uid string) error {
	log := logger.FromContext(ctx)

	steps := []struct {
		name string
		run  func(context.Context, string) error
	}{
		{"transactions", s.transactions.DeleteAll},
		{"goals", s.goals.DeleteAll},
		{"budgets", s.budgets.DeleteAll},
		{"accounts", s.accounts.DeleteAll},
		{"profile", s.store.DeleteUser},
		{"identity", s.identity.DeleteUser},
	}

	completed := make([]string, 0, len(steps))
	for _, step := range steps {
		if err := step.run(ctx, uid); err != nil {
			log.Error("account deletion aborted",
				"failed_step", step.name, "completed", completed, "error", err)
			return errs.NewPartialDeletionError(step.name, completed, err)
		}
		completed = append(completed, step.name)
	}

	log.Info("account deleted")
	return nil
}
