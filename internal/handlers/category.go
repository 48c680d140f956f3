package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/pocketledger/internal/models"
	"github.com/GregMSThompson/pocketledger/internal/response"
)

type CategoryService interface {
	List(ctx context.Context, kind *string) ([]models.Category, error)
}

type categoryHandlers struct {
	ResponseHandler response.ResponseHandler
	CategorySvc     CategoryService
}

func NewCategoryHandlers(deps *Deps) *categoryHandlers {
	return &categoryHandlers{
		ResponseHandler: deps.ResponseHandler,
		CategorySvc:     deps.CategorySvc,
	}
}

func (h *categoryHandlers) CategoryRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	return r
}

func (h *categoryHandlers) List(w http.ResponseWriter, r *http.Request) {
	var kind *string
	if k := r.URL.Query().Get("type"); k != "" {
		kind = &k
	}
	categories, err := h.CategorySvc.List(r.Context(), kind)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, categories)
}
