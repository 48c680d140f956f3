package services

import (
	"context"
	"errors"
	"testing"

	"github.com/GregMSThompson/pocketledger/internal/errs"
	"github.com/GregMSThompson/pocketledger/internal/models"
	"github.com/GregMSThompson/pocketledger/pkg/helpers"
)

type stubUserStore struct {
	user            *models.User
	createUserCalls int
	deleteUserCalls int
	err             error
}

func (s *stubUserStore) CreateUser(_ context.Context, user *models.User) error {
	s.user = user
	s.createUserCalls++
	return s.err
}

func (s *stubUserStore) GetUser(_ context.Context, _ string) (*models.User, error) {
	return s.user, s.err
}

func (s *stubUserStore) DeleteUser(_ context.Context, _ string) error {
	s.deleteUserCalls++
	return s.err
}

type stubPurger struct {
	calls int
	err   error
}

func (s *stubPurger) DeleteAll(_ context.Context, _ string) error {
	s.calls++
	return s.err
}

type stubIdentity struct {
	calls int
	err   error
}

func (s *stubIdentity) DeleteUser(_ context.Context, _ string) error {
	s.calls++
	return s.err
}

func TestUserServiceRegister(t *testing.T) {
	store := &stubUserStore{}
	svc := NewUserService(store, &stubPurger{}, &stubPurger{}, &stubPurger{}, &stubPurger{}, &stubIdentity{})

	err := svc.Register(helpers.TestCtx(), "uid-123", "user@example.com", "Jane", "Doe")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if store.createUserCalls != 1 {
		t.Fatalf("CreateUser called %d times, want 1", store.createUserCalls)
	}
	if store.user.UID != "uid-123" || store.user.Email != "user@example.com" {
		t.Fatalf("unexpected user identifiers: %+v", store.user)
	}
	if store.user.FirstName != "Jane" || store.user.LastName != "Doe" {
		t.Fatalf("unexpected user name: %+v", store.user)
	}
}

func TestUserServiceDeleteAccount(t *testing.T) {
	store := &stubUserStore{}
	txs := &stubPurger{}
	goals := &stubPurger{}
	budgets := &stubPurger{}
	accounts := &stubPurger{}
	identity := &stubIdentity{}
	svc := NewUserService(store, txs, goals, budgets, accounts, identity)

	if err := svc.DeleteAccount(helpers.TestCtx(), "uid-123"); err != nil {
		t.Fatalf("DeleteAccount returned error: %v", err)
	}
	for name, calls := range map[string]int{
		"transactions": txs.calls,
		"goals":        goals.calls,
		"budgets":      budgets.calls,
		"accounts":     accounts.calls,
		"profile":      store.deleteUserCalls,
		"identity":     identity.calls,
	} {
		if calls != 1 {
			t.Fatalf("%s step ran %d times, want 1", name, calls)
		}
	}
}

func TestUserServiceDeleteAccountFailFast(t *testing.T) {
	store := &stubUserStore{}
	txs := &stubPurger{}
	goals := &stubPurger{err: errors.New("firestore unavailable")}
	budgets := &stubPurger{}
	accounts := &stubPurger{}
	identity := &stubIdentity{}
	svc := NewUserService(store, txs, goals, budgets, accounts, identity)

	err := svc.DeleteAccount(helpers.TestCtx(), "uid-123")

	var pde *errs.PartialDeletionError
	if !errors.As(err, &pde) {
		t.Fatalf("expected PartialDeletionError, got %v", err)
	}
	if pde.FailedStep != "goals" {
		t.Fatalf("failed step = %q, want goals", pde.FailedStep)
	}
	if len(pde.Completed) != 1 || pde.Completed[0] != "transactions" {
		t.Fatalf("completed steps = %v, want [transactions]", pde.Completed)
	}

	if txs.calls != 1 || goals.calls != 1 {
		t.Fatalf("transactions/goals calls = %d/%d, want 1/1", txs.calls, goals.calls)
	}
	if budgets.calls != 0 || accounts.calls != 0 || store.deleteUserCalls != 0 || identity.calls != 0 {
		t.Fatalf("later steps ran after failure: budgets=%d accounts=%d profile=%d identity=%d",
			budgets.calls, accounts.calls, store.deleteUserCalls, identity.calls)
	}
}
