package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GregMSThompson/pocketledger/internal/finance"
)

func TestClientRunningBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/transactions/t2/running-balance" {
			t.Errorf("path = %s, want /transactions/t2/running-balance", r.URL.Path)
		}
		writeSuccess(w, http.StatusOK, finance.RunningBalance{Before: 1000, After: 700})
	}))
	defer srv.Close()

	c := New(srv.URL, "token-1")
	rb, err := c.RunningBalance(context.Background(), "t2")
	if err != nil {
		t.Fatalf("RunningBalance returned error: %v", err)
	}
	if rb.Before != 1000 || rb.After != 700 {
		t.Fatalf("running balance = %+v, want before 1000 after 700", rb)
	}
}

func TestClientDeleteAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		if r.URL.Path != "/users/me" {
			t.Errorf("path = %s, want /users/me", r.URL.Path)
		}
		writeSuccess(w, http.StatusOK, map[string]string{"message": "account deleted"})
	}))
	defer srv.Close()

	c := New(srv.URL, "token-1")
	if err := c.DeleteAccount(context.Background()); err != nil {
		t.Fatalf("DeleteAccount returned error: %v", err)
	}
}

func TestClientDeleteAccountPartialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusInternalServerError, "partial_deletion", "account deletion failed at step 'goals'")
	}))
	defer srv.Close()

	c := New(srv.URL, "token-1")
	err := c.DeleteAccount(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusInternalServerError || apiErr.Code != "partial_deletion" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}
