package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/phamanh/retail-store-backend/internal/entity"
	"github.com/phamanh/retail-store-backend/internal/repository"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repository.CategoryFilter{Name: q.Get("categoryName"), Page: pageFrom(q)}

	categories, total, err := h.categories.Find(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Payload: categories, Total: total})
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.categories.FindByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resultResponse{OK: true, Result: category})
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var category entity.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{OK: false, Message: "invalid request body"})
		return
	}
	category.ID = uuid.New().String()

	if err := h.categories.Create(r.Context(), &category); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resultResponse{OK: true, Message: "Created", Result: category})
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{OK: false, Message: "invalid request body"})
		return
	}
	if err := h.categories.Update(r.Context(), r.PathValue("id"), patch); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{OK: true, Message: "Updated"})
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.categories.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resultResponse{OK: true, Result: category})
}
