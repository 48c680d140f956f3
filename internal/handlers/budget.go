package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/pocketledger/internal/dto"
	"github.com/GregMSThompson/pocketledger/internal/errs"
	"github.com/GregMSThompson/pocketledger/internal/middleware"
	"github.com/GregMSThompson/pocketledger/internal/models"
	"github.com/GregMSThompson/pocketledger/internal/response"
)

type BudgetService interface {
	Create(ctx context.Context, uid string, req dto.CreateBudgetRequest) (*models.Budget, error)
	Get(ctx context.Context, uid, budgetID string) (*models.Budget, error)
	List(ctx context.Context, uid string, q dto.BudgetQuery) ([]models.Budget, error)
	Update(ctx context.Context, uid, budgetID string, req dto.UpdateBudgetRequest) (*models.Budget, error)
	Delete(ctx context.Context, uid, budgetID string) error
}

type budgetHandlers struct {
	ResponseHandler response.ResponseHandler
	BudgetSvc       BudgetService
}

func NewBudgetHandlers(deps *Deps) *budgetHandlers {
	return &budgetHandlers{
		ResponseHandler: deps.ResponseHandler,
		BudgetSvc:       deps.BudgetSvc,
	}
}

func (h *budgetHandlers) BudgetRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{budgetId}", h.Get)
	r.Put("/{budgetId}", h.Update)
	r.Delete("/{budgetId}", h.Delete)
	return r
}

func (h *budgetHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	b, err := h.BudgetSvc.Create(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, b)
}

func (h *budgetHandlers) Get(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetId")
	uid := middleware.UID(r.Context())
	b, err := h.BudgetSvc.Get(r.Context(), uid, budgetID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, b)
}

func (h *budgetHandlers) List(w http.ResponseWriter, r *http.Request) {
	var q dto.BudgetQuery
	if month := r.URL.Query().Get("month"); month != "" {
		q.Month = &month
	}
	uid := middleware.UID(r.Context())
	budgets, err := h.BudgetSvc.List(r.Context(), uid, q)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, budgets)
}

func (h *budgetHandlers) Update(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetId")
	var req dto.UpdateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	b, err := h.BudgetSvc.Update(r.Context(), uid, budgetID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, b)
}

func (h *budgetHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetId")
	uid := middleware.UID(r.Context())
	if err := h.BudgetSvc.Delete(r.Context(), uid, budgetID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
