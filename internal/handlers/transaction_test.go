package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/pocketledger/internal/dto"
	"github.com/GregMSThompson/pocketledger/internal/errs"
	"github.com/GregMSThompson/pocketledger/internal/finance"
	"github.com/GregMSThompson/pocketledger/internal/middleware"
	"github.com/GregMSThompson/pocketledger/internal/models"
)

// --- Shared test doubles ---

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	handleErrorCalled bool
	handleError       error

	writeErrorCalled bool
	writeErrorStatus int
	writeErrorCode   string
	writeErrorMsg    string
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, _ *http.Request, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"success":true}`))
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, _ *http.Request, status int, code, message string) {
	s.writeErrorCalled = true
	s.writeErrorStatus = status
	s.writeErrorCode = code
	s.writeErrorMsg = message
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, _ *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleError = err
	w.WriteHeader(http.StatusInternalServerError)
}

// withUID injects a UID into the request context.
func withUID(r *http.Request, uid string) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.UIDKey, uid)
	return r.WithContext(ctx)
}

// withChiParam injects a chi URL parameter into the request context.
func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

// --- Stub service ---

type stubTransactionService struct {
	createTx      *models.Transaction
	createErr     error
	lastCreateReq dto.CreateTransactionRequest
	listTxs       []models.Transaction
	listErr       error
	lastQuery     dto.TransactionQuery
	deleteErr     error
	lastDeleteID  string
	balance       finance.RunningBalance
	balanceErr    error
}

func (s *stubTransactionService) Create(_ context.Context, _ string, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	s.lastCreateReq = req
	return s.createTx, s.createErr
}

func (s *stubTransactionService) Get(_ context.Context, _, _ string) (*models.Transaction, error) {
	return s.createTx, s.createErr
}

func (s *stubTransactionService) List(_ context.Context, _ string, q dto.TransactionQuery) ([]models.Transaction, error) {
	s.lastQuery = q
	return s.listTxs, s.listErr
}

func (s *stubTransactionService) Update(_ context.Context, _, _ string, _ dto.UpdateTransactionRequest) (*models.Transaction, error) {
	return s.createTx, s.createErr
}

func (s *stubTransactionService) Delete(_ context.Context, _, transactionID string) error {
	s.lastDeleteID = transactionID
	return s.deleteErr
}

func (s *stubTransactionService) RunningBalance(_ context.Context, _, _ string) (finance.RunningBalance, error) {
	return s.balance, s.balanceErr
}

// --- Tests ---

func TestCreateTransaction_OK(t *testing.T) {
	svc := &stubTransactionService{
		createTx: &models.Transaction{TransactionID: "tx1", Kind: models.KindExpense},
	}
	resp := &stubResponseHandler{}
	h := NewTransactionHandlers(&Deps{ResponseHandler: resp, TransactionSvc: svc})

	body := `{"type":"expense","category":"Food","amount":12.5,"date":"2024-03-15"}`
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	req = withUID(req, "uid1")
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusCreated {
		t.Fatalf("expected WriteSuccess with 201, got called=%v status=%d", resp.writeSuccessCalled, resp.writeSuccessStatus)
	}
	if svc.lastCreateReq.Kind != models.KindExpense || svc.lastCreateReq.Amount != 12.5 {
		t.Fatalf("service received wrong payload: %+v", svc.lastCreateReq)
	}
}

func TestCreateTransaction_BadJSON(t *testing.T) {
	svc := &stubTransactionService{}
	resp := &stubResponseHandler{}
	h := NewTransactionHandlers(&Deps{ResponseHandler: resp, TransactionSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader("{not json"))
	req = withUID(req, "uid1")
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError to be called")
	}
	var verr *errs.ValidationError
	if !errors.As(resp.handleError, &verr) {
		t.Fatalf("expected ValidationError for malformed body, got %v", resp.handleError)
	}
}

func TestListTransactions_KindFilter(t *testing.T) {
	svc := &stubTransactionService{listTxs: []models.Transaction{{TransactionID: "tx1"}}}
	resp := &stubResponseHandler{}
	h := NewTransactionHandlers(&Deps{ResponseHandler: resp, TransactionSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/transactions?type=income", nil)
	req = withUID(req, "uid1")
	rr := httptest.NewRecorder()
	h.List(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected WriteSuccess with 200, got called=%v status=%d", resp.writeSuccessCalled, resp.writeSuccessStatus)
	}
	if svc.lastQuery.Kind == nil || *svc.lastQuery.Kind != models.KindIncome {
		t.Fatalf("kind filter not forwarded: %+v", svc.lastQuery)
	}
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	svc := &stubTransactionService{deleteErr: errs.NewNotFoundError("transaction not found")}
	resp := &stubResponseHandler{}
	h := NewTransactionHandlers(&Deps{ResponseHandler: resp, TransactionSvc: svc})

	req := httptest.NewRequest(http.MethodDelete, "/transactions/tx9", nil)
	req = withUID(req, "uid1")
	req = withChiParam(req, "transactionId", "tx9")
	rr := httptest.NewRecorder()
	h.Delete(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError to be called")
	}
	if svc.lastDeleteID != "tx9" {
		t.Fatalf("service received id %q, want tx9", svc.lastDeleteID)
	}
}

func TestRunningBalance_OK(t *testing.T) {
	svc := &stubTransactionService{balance: finance.RunningBalance{Before: 100, After: 150}}
	resp := &stubResponseHandler{}
	h := NewTransactionHandlers(&Deps{ResponseHandler: resp, TransactionSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/transactions/tx1/running-balance", nil)
	req = withUID(req, "uid1")
	req = withChiParam(req, "transactionId", "tx1")
	rr := httptest.NewRecorder()
	h.RunningBalance(rr, req)

	if !resp.writeSuccessCalled {
		t.Fatal("expected WriteSuccess to be called")
	}
	rb, ok := resp.writeSuccessData.(finance.RunningBalance)
	if !ok || rb.Before != 100 || rb.After != 150 {
		t.Fatalf("unexpected payload: %+v", resp.writeSuccessData)
	}
}
