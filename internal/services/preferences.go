package services

import (
	"context"
	"strings"
	"time"

	"github.com/GregMSThompson/pocketledger/internal/dto"
	"github.com/GregMSThompson/pocketledger/internal/errs"
	"github.com/GregMSThompson/pocketledger/internal/models"
	"github.com/GregMSThompson/pocketledger/pkg/logger"
)

type preferencesPSStore interface {
	Get(ctx context.Context, uid string) (*models.Preferences, error)
	Set(ctx context.Context, uid string, prefs *models.Preferences) error
}

type preferencesService struct {
	store preferencesPSStore
	now   func() time.Time
}

func NewPreferencesService(store preferencesPSStore) *preferencesService {
	return &preferencesService{store: store, now: time.Now}
}

func (s *preferencesService) Get(ctx context.Context, uid string) (*models.Preferences, error) {
	return s.store.Get(ctx, uid)
}

func (s *preferencesService) Update(ctx context.Context, uid string, req *dto.UpdatePreferencesRequest) (*models.Preferences, error) {
	prefs, err := s.store.Get(ctx, uid)
	if err != nil {
		return nil, err
	}

	if req.Currency != nil {
		currency := strings.TrimSpace(*req.Currency)
		if currency == "" {
			return nil, errs.NewValidationError("currency must be a non-empty string")
		}
		prefs.Currency = currency
	}
	if req.Theme != nil {
		switch *req.Theme {
		case "light", "dark":
			prefs.Theme = *req.Theme
		default:
			return nil, errs.NewValidationError("theme must be 'light' or 'dark'")
		}
	}

	prefs.UpdatedAt = s.now()
	if err := s.store.Set(ctx, uid, prefs); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("preferences updated", "uid", uid)
	return prefs, nil
}
