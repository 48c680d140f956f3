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

type GoalService interface {
	Create(ctx context.Context, uid string, req dto.CreateGoalRequest) (*models.Goal, error)
	Get(ctx context.Context, uid, goalID string) (*models.Goal, error)
	List(ctx context.Context, uid string) ([]models.Goal, error)
	Update(ctx context.Context, uid, goalID string, req dto.UpdateGoalRequest) (*models.Goal, error)
	Delete(ctx context.Context, uid, goalID string) error
	AddProgress(ctx context.Context, uid, goalID string, req dto.AddGoalProgressRequest) (*models.Goal, error)
	Progress(ctx context.Context, uid, goalID string) (dto.GoalProgressResponse, error)
}

type goalHandlers struct {
	ResponseHandler response.ResponseHandler
	GoalSvc         GoalService
}

func NewGoalHandlers(deps *Deps) *goalHandlers {
	return &goalHandlers{
		ResponseHandler: deps.ResponseHandler,
		GoalSvc:         deps.GoalSvc,
	}
}

func (h *goalHandlers) GoalRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{goalId}", h.Get)
	r.Put("/{goalId}", h.Update)
	r.Delete("/{goalId}", h.Delete)
	r.Post("/{goalId}/progress", h.AddProgress)
	r.Get("/{goalId}/progress", h.Progress)
	return r
}

func (h *goalHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	g, err := h.GoalSvc.Create(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, g)
}

func (h *goalHandlers) Get(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "goalId")
	uid := middleware.UID(r.Context())
	g, err := h.GoalSvc.Get(r.Context(), uid, goalID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, g)
}

func (h *goalHandlers) List(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	goals, err := h.GoalSvc.List(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, goals)
}

func (h *goalHandlers) Update(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "goalId")
	var req dto.UpdateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	g, err := h.GoalSvc.Update(r.Context(), uid, goalID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, g)
}

func (h *goalHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "goalId")
	uid := middleware.UID(r.Context())
	if err := h.GoalSvc.Delete(r.Context(), uid, goalID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *goalHandlers) AddProgress(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "goalId")
	var req dto.AddGoalProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	g, err := h.GoalSvc.AddProgress(r.Context(), uid, goalID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, g)
}

func (h *goalHandlers) Progress(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "goalId")
	uid := middleware.UID(r.Context())
	progress, err := h.GoalSvc.Progress(r.Context(), uid, goalID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, progress)
}
