package http

import (
	"encoding/json"
	"net/http"
)

type cartItemRequest struct {
	CustomerID string `json:"customerId"`
	ProductID  string `json:"productId"`
	Quantity   int    `json:"quantity"`
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{OK: false, Message: "invalid request body"})
		return
	}

	if err := h.cartSvc.AddItem(r.Context(), req.CustomerID, req.ProductID, req.Quantity); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{OK: true, Message: "Added to cart"})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartSvc.Get(r.Context(), r.PathValue("customerId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resultResponse{OK: true, Result: cart})
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	err := h.cartSvc.RemoveItem(r.Context(), r.PathValue("customerId"), r.PathValue("productId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{OK: true, Message: "Removed from cart"})
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	err := h.cartSvc.Clear(r.Context(), r.PathValue("customerId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{OK: true, Message: "Cart cleared"})
}
