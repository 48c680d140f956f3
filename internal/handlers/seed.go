package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/pocketledger/internal/middleware"
	"github.com/GregMSThompson/pocketledger/internal/response"
)

type SeedService interface {
	Seed(ctx context.Context, uid string) error
}

type seedHandlers struct {
	ResponseHandler response.ResponseHandler
	SeedSvc         SeedService
}

func NewSeedHandlers(deps *Deps) *seedHandlers {
	return &seedHandlers{
		ResponseHandler: deps.ResponseHandler,
		SeedSvc:         deps.SeedSvc,
	}
}

func (h *seedHandlers) SeedRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Seed)
	return r
}

func (h *seedHandlers) Seed(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	if err := h.SeedSvc.Seed(r.Context(), uid); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
