package services

import (
	"context"
	"strings"
	"time"

	"github.com/GregMSThompson/pocketledger/internal/models"
	"github.com/GregMSThompson/pocketledger/pkg/logger"
)

var defaultCategories = []struct {
	name string
	kind string
}{
	{"Salary", models.KindIncome},
	{"Freelance", models.KindIncome},
	{"Investment", models.KindIncome},
	{"Bonus", models.KindIncome},
	{"Other", models.KindIncome},
	{"Food", models.KindExpense},
	{"Transport", models.KindExpense},
	{"Utilities", models.KindExpense},
	{"Entertainment", models.KindExpense},
	{"Shopping", models.KindExpense},
	{"Health", models.KindExpense},
	{"Other", models.KindExpense},
}

const starterAccountName = "Cash"

type seedCategoryStore interface {
	CreateBatch(ctx context.Context, categories []models.Category) error
}

type seedAccountStore interface {
	List(ctx context.Context, uid string) ([]models.Account, error)
	Create(ctx context.Context, uid string, a *models.Account) error
}

type seedService struct {
	categories seedCategoryStore
	accounts   seedAccountStore
	now        func() time.Time
}

func NewSeedService(categories seedCategoryStore, accounts seedAccountStore) *seedService {
	return &seedService{categories: categories, accounts: accounts, now: time.Now}
}

// Seed populates the shared category suggestions and gives the owner a
// starter account. Owners that already hold accounts are left untouched,
// so repeated calls are safe.
func (s *seedService) Seed(ctx context.Context, uid string) error {
	cats := make([]models.Category, 0, len(defaultCategories))
	now := s.now()
	for _, dc := range defaultCategories {
		cats = append(cats, models.Category{
			CategoryID: categorySlug(dc.kind, dc.name),
			Name:       dc.name,
			Kind:       dc.kind,
			CreatedAt:  now,
		})
	}
	if err := s.categories.CreateBatch(ctx, cats); err != nil {
		return err
	}

	existing, err := s.accounts.List(ctx, uid)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.FromContext(ctx).Info("seed skipped, accounts already exist", "uid", uid)
		return nil
	}

	account := &models.Account{
		AccountID: categorySlug("account", starterAccountName),
		Name:      starterAccountName,
		Balance:   0,
	}
	if err := s.accounts.Create(ctx, uid, account); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("seeded starter data", "uid", uid)
	return nil
}

// categorySlug builds a stable doc id so reseeding overwrites instead of
// duplicating.
func categorySlug(kind, name string) string {
	return kind + "-" + strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}
