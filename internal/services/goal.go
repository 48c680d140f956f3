package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/GregMSThompson/pocketledger/internal/dto"
	"github.com/GregMSThompson/pocketledger/internal/finance"
	"github.com/GregMSThompson/pocketledger/internal/models"
	"github.com/GregMSThompson/pocketledger/pkg/logger"
)

type goalGSStore interface {
	Create(ctx context.Context, uid string, g *models.Goal) error
	Get(ctx context.Context, uid, goalID string) (*models.Goal, error)
	List(ctx context.Context, uid string) ([]models.Goal, error)
	Update(ctx context.Context, uid string, g *models.Goal) error
	Delete(ctx context.Context, uid, goalID string) error
}

type goalService struct {
	store goalGSStore
	now   func() time.Time
}

func NewGoalService(store goalGSStore) *goalService {
	return &goalService{store: store, now: time.Now}
}

// Create accepts deadlines in the past; only the date format is checked.
// Days-remaining then simply comes out non-positive.
func (s *goalService) Create(ctx context.Context, uid string, req dto.CreateGoalRequest) (*models.Goal, error) {
	if err := validateTitle("title", req.Title); err != nil {
		return nil, err
	}
	if err := validatePositive("targetAmount", req.TargetAmount); err != nil {
		return nil, err
	}
	var current float64
	if req.CurrentAmount != nil {
		if err := validateNonNegative("currentAmount", *req.CurrentAmount); err != nil {
			return nil, err
		}
		current = *req.CurrentAmount
	}
	if err := validateDate("deadline", req.Deadline); err != nil {
		return nil, err
	}

	g := &models.Goal{
		GoalID:        uuid.New().String(),
		Title:         strings.TrimSpace(req.Title),
		TargetAmount:  req.TargetAmount,
		CurrentAmount: current,
		Deadline:      req.Deadline,
	}
	if err := s.store.Create(ctx, uid, g); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("goal created", "goal_id", g.GoalID, "title", g.Title)
	return g, nil
}

func (s *goalService) Get(ctx context.Context, uid, goalID string) (*models.Goal, error) {
	return s.store.Get(ctx, uid, goalID)
}

func (s *goalService) List(ctx context.Context, uid string) ([]models.Goal, error) {
	return s.store.List(ctx, uid)
}

func (s *goalService) Update(ctx context.Context, uid, goalID string, req dto.UpdateGoalRequest) (*models.Goal, error) {
	if req.Title != nil {
		if err := validateTitle("title", *req.Title); err != nil {
			return nil, err
		}
	}
	if req.TargetAmount != nil {
		if err := validatePositive("targetAmount", *req.TargetAmount); err != nil {
			return nil, err
		}
	}
	if req.CurrentAmount != nil {
		if err := validateNonNegative("currentAmount", *req.CurrentAmount); err != nil {
			return nil, err
		}
	}
	if req.Deadline != nil {
		if err := validateDate("deadline", *req.Deadline); err != nil {
			return nil, err
		}
	}

	g, err := s.store.Get(ctx, uid, goalID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		g.Title = strings.TrimSpace(*req.Title)
	}
	if req.TargetAmount != nil {
		g.TargetAmount = *req.TargetAmount
	}
	if req.CurrentAmount != nil {
		g.CurrentAmount = *req.CurrentAmount
	}
	if req.Deadline != nil {
		g.Deadline = *req.Deadline
	}
	if err := s.store.Update(ctx, uid, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *goalService) Delete(ctx context.Context, uid, goalID string) error {
	if _, err := s.store.Get(ctx, uid, goalID); err != nil {
		return err
	}
	return s.store.Delete(ctx, uid, goalID)
}

// AddProgress records a contribution. The stored amount may pass the
// target; only the display percentage clamps.
func (s *goalService) AddProgress(ctx context.Context, uid, goalID string, req dto.AddGoalProgressRequest) (*models.Goal, error) {
	if err := validatePositive("amount", req.Amount); err != nil {
		return nil, err
	}
	g, err := s.store.Get(ctx, uid, goalID)
	if err != nil {
		return nil, err
	}
	g.CurrentAmount += req.Amount
	if err := s.store.Update(ctx, uid, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Progress derives the display fields for one goal.
func (s *goalService) Progress(ctx context.Context, uid, goalID string) (dto.GoalProgressResponse, error) {
	g, err := s.store.Get(ctx, uid, goalID)
	if err != nil {
		return dto.GoalProgressResponse{}, err
	}

	remaining := g.TargetAmount - g.CurrentAmount
	if remaining < 0 {
		remaining = 0
	}
	days, err := finance.DaysRemaining(g.Deadline, s.now())
	if err != nil {
		// Deadline was validated at write time; treat corruption as zero.
		days = 0
	}
	return dto.GoalProgressResponse{
		GoalID:        g.GoalID,
		Progress:      finance.GoalProgress(g.CurrentAmount, g.TargetAmount),
		Remaining:     remaining,
		DaysRemaining: days,
	}, nil
}
