package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/taskdeck/internal/service"
)

// CategoryHandler serves the read-only category catalog.
type CategoryHandler struct {
	categories *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// HandleList returns all categories.
// GET /api/categories
func (h *CategoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		slog.Error("list categories", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch categories.")
		return
	}

	writeJSON(w, http.StatusOK, toCategoryDTOs(categories))
}
