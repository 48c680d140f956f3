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

type stubGoalStore struct {
	created   *models.Goal
	updated   *models.Goal
	getResult *models.Goal
	err       error
}

func (s *stubGoalStore) Create(_ context.Context, _ string, g *models.Goal) error {
	s.created = g
	return s.err
}

func (s *stubGoalStore) Get(_ context.Context, _, _ string) (*models.Goal, error) {
	if s.getResult == nil {
		return nil, errs.NewNotFoundError("goal not found")
	}
	cp := *s.getResult
	return &cp, s.err
}

func (s *stubGoalStore) List(_ context.Context, _ string) ([]models.Goal, error) {
	return nil, s.err
}

func (s *stubGoalStore) Update(_ context.Context, _ string, g *models.Goal) error {
	s.updated = g
	return s.err
}

func (s *stubGoalStore) Delete(_ context.Context, _, _ string) error { return s.err }

func TestGoalServiceCreateAcceptsPastDeadline(t *testing.T) {
	store := &stubGoalStore{}
	svc := NewGoalService(store)

	g, err := svc.Create(helpers.TestCtx(), "uid-1", dto.CreateGoalRequest{
		Title:        "Emergency fund",
		TargetAmount: 5000,
		Deadline:     "2020-01-01",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if g.GoalID == "" {
		t.Fatalf("goal id was not assigned")
	}
	if g.CurrentAmount != 0 {
		t.Fatalf("current amount defaulted to %v, want 0", g.CurrentAmount)
	}
}

func TestGoalServiceCreateRejectsBlankTitle(t *testing.T) {
	store := &stubGoalStore{}
	svc := NewGoalService(store)

	_, err := svc.Create(helpers.TestCtx(), "uid-1", dto.CreateGoalRequest{
		Title:        "   ",
		TargetAmount: 5000,
		Deadline:     "2026-01-01",
	})
	var verr *errs.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if store.created != nil {
		t.Fatalf("invalid goal reached the store")
	}
}

func TestGoalServiceAddProgress(t *testing.T) {
	store := &stubGoalStore{
		getResult: &models.Goal{GoalID: "g1", Title: "Trip", TargetAmount: 1000, CurrentAmount: 900, Deadline: "2026-06-01"},
	}
	svc := NewGoalService(store)

	g, err := svc.AddProgress(helpers.TestCtx(), "uid-1", "g1", dto.AddGoalProgressRequest{Amount: 250})
	if err != nil {
		t.Fatalf("AddProgress returned error: %v", err)
	}
	if g.CurrentAmount != 1150 {
		t.Fatalf("current amount = %v, want 1150 (may exceed target)", g.CurrentAmount)
	}
	if store.updated == nil {
		t.Fatalf("store never received the update")
	}
}

func TestGoalServiceAddProgressRejectsNonPositive(t *testing.T) {
	store := &stubGoalStore{
		getResult: &models.Goal{GoalID: "g1", TargetAmount: 1000},
	}
	svc := NewGoalService(store)

	_, err := svc.AddProgress(helpers.TestCtx(), "uid-1", "g1", dto.AddGoalProgressRequest{Amount: 0})
	var verr *errs.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if store.updated != nil {
		t.Fatalf("invalid progress reached the store")
	}
}

func TestGoalServiceProgress(t *testing.T) {
	store := &stubGoalStore{
		getResult: &models.Goal{GoalID: "g1", TargetAmount: 1000, CurrentAmount: 1500, Deadline: "2024-03-20"},
	}
	svc := NewGoalService(store)
	svc.now = func() time.Time {
		return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	}

	resp, err := svc.Progress(helpers.TestCtx(), "uid-1", "g1")
	if err != nil {
		t.Fatalf("Progress returned error: %v", err)
	}
	if resp.Progress != 100 {
		t.Fatalf("progress = %v, want clamp to 100", resp.Progress)
	}
	if resp.Remaining != 0 {
		t.Fatalf("remaining = %v, want clamp to 0", resp.Remaining)
	}
	if resp.DaysRemaining != 5 {
		t.Fatalf("days remaining = %d, want 5", resp.DaysRemaining)
	}
}
