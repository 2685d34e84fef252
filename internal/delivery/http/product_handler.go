package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/phamanh/retail-store-backend/internal/entity"
	"github.com/phamanh/retail-store-backend/internal/repository"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repository.ProductFilter{
		CategoryID:  q.Get("category"),
		SupplierID:  q.Get("supplier"),
		Name:        q.Get("productName"),
		Description: q.Get("description"),
		Stock:       rangeFrom(q, "stockStart", "stockEnd"),
		Price:       rangeFrom(q, "priceStart", "priceEnd"),
		Discount:    rangeFrom(q, "discountStart", "discountEnd"),
		Page:        pageFrom(q),
	}

	products, total, err := h.products.Find(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Payload: products, Total: total})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.FindByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resultResponse{OK: true, Result: product})
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var product entity.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{OK: false, Message: "invalid request body"})
		return
	}
	product.ID = uuid.New().String()

	if err := h.products.Create(r.Context(), &product); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resultResponse{OK: true, Message: "Created", Result: product})
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{OK: false, Message: "invalid request body"})
		return
	}
	if err := h.products.Update(r.Context(), r.PathValue("id"), patch); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{OK: true, Message: "Updated"})
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resultResponse{OK: true, Result: product})
}
