package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/phamanh/retail-store-backend/internal/entity"
	"github.com/phamanh/retail-store-backend/internal/repository"
)

func (h *Handler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repository.SupplierFilter{Name: q.Get("supplierName"), Page: pageFrom(q)}

	suppliers, total, err := h.suppliers.Find(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Payload: suppliers, Total: total})
}

func (h *Handler) getSupplier(w http.ResponseWriter, r *http.Request) {
	supplier, err := h.suppliers.FindByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resultResponse{OK: true, Result: supplier})
}

func (h *Handler) createSupplier(w http.ResponseWriter, r *http.Request) {
	var supplier entity.Supplier
	if err := json.NewDecoder(r.Body).Decode(&supplier); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{OK: false, Message: "invalid request body"})
		return
	}
	supplier.ID = uuid.New().String()

	if err := h.suppliers.Create(r.Context(), &supplier); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resultResponse{OK: true, Message: "Created", Result: supplier})
}

func (h *Handler) updateSupplier(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{OK: false, Message: "invalid request body"})
		return
	}
	if err := h.suppliers.Update(r.Context(), r.PathValue("id"), patch); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{OK: true, Message: "Updated"})
}

func (h *Handler) deleteSupplier(w http.ResponseWriter, r *http.Request) {
	supplier, err := h.suppliers.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resultResponse{OK: true, Result: supplier})
}
