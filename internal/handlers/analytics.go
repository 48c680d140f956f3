package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/pocketledger/internal/dto"
	"github.com/GregMSThompson/pocketledger/internal/finance"
	"github.com/GregMSThompson/pocketledger/internal/middleware"
	"github.com/GregMSThompson/pocketledger/internal/response"
)

type AnalyticsService interface {
	GetSummary(ctx context.Context, uid string) (finance.Summary, error)
	GetCategories(ctx context.Context, uid string) (dto.AnalyticsCategoriesResult, error)
	GetTrend(ctx context.Context, uid string) (dto.AnalyticsTrendResult, error)
}

type analyticsHandlers struct {
	ResponseHandler response.ResponseHandler
	AnalyticsSvc    AnalyticsService
}

func NewAnalyticsHandlers(deps *Deps) *analyticsHandlers {
	return &analyticsHandlers{
		ResponseHandler: deps.ResponseHandler,
		AnalyticsSvc:    deps.AnalyticsSvc,
	}
}

func (h *analyticsHandlers) AnalyticsRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/summary", h.GetSummary)
	r.Get("/categories", h.GetCategories)
	r.Get("/trend", h.GetTrend)
	return r
}

func (h *analyticsHandlers) GetSummary(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	summary, err := h.AnalyticsSvc.GetSummary(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, summary)
}

func (h *analyticsHandlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	result, err := h.AnalyticsSvc.GetCategories(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *analyticsHandlers) GetTrend(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	result, err := h.AnalyticsSvc.GetTrend(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}
