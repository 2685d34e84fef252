package http

import (
	"encoding/json"
	"net/http"

	"github.com/phamanh/retail-store-backend/internal/entity"
	"github.com/phamanh/retail-store-backend/internal/repository"
)

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repository.OrderFilter{
		CustomerID: q.Get("customer"),
		EmployeeID: q.Get("employee"),
		Status:     q.Get("status"),
		Page:       pageFrom(q),
	}

	orders, total, err := h.orders.Find(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Payload: orders, Total: total})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.FindByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resultResponse{OK: true, Result: order})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var order entity.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{OK: false, Message: "invalid request body"})
		return
	}

	if err := h.orderSvc.PlaceOrder(r.Context(), &order); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resultResponse{OK: true, Message: "Created", Result: order})
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{OK: false, Message: "invalid request body"})
		return
	}
	if err := h.orders.Update(r.Context(), r.PathValue("id"), patch); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{OK: true, Message: "Updated"})
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resultResponse{OK: true, Result: order})
}
