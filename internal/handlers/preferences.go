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

type PreferencesService interface {
	Get(ctx context.Context, uid string) (*models.Preferences, error)
	Update(ctx context.Context, uid string, req *dto.UpdatePreferencesRequest) (*models.Preferences, error)
}

type preferencesHandlers struct {
	ResponseHandler response.ResponseHandler
	PreferencesSvc  PreferencesService
}

func NewPreferencesHandlers(deps *Deps) *preferencesHandlers {
	return &preferencesHandlers{
		ResponseHandler: deps.ResponseHandler,
		PreferencesSvc:  deps.PreferencesSvc,
	}
}

func (h *preferencesHandlers) PreferencesRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Get)
	r.Put("/", h.Update)
	return r
}

func (h *preferencesHandlers) Get(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	prefs, err := h.PreferencesSvc.Get(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, prefs)
}

func (h *preferencesHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	prefs, err := h.PreferencesSvc.Update(r.Context(), uid, &req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, prefs)
}
