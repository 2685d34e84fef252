package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/phamanh/retail-store-backend/internal/entity"
	"github.com/phamanh/retail-store-backend/internal/repository"
	"github.com/phamanh/retail-store-backend/internal/service"
)

// customerRequest carries the plaintext password, which the entity itself
// never serializes.
type customerRequest struct {
	entity.Customer
	Password string `json:"password"`
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repository.CustomerFilter{
		FirstName: q.Get("firstNameCustomer"),
		LastName:  q.Get("lastNameCustomer"),
		Page:      pageFrom(q),
	}

	customers, total, err := h.customers.Find(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Payload: customers, Total: total})
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.customers.FindByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resultResponse{OK: true, Result: customer})
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{OK: false, Message: "invalid request body"})
		return
	}

	customer := req.Customer
	customer.ID = uuid.New().String()

	// Hash before store; the plaintext never reaches the repository.
	hash, err := h.auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	customer.Password = hash

	if err := h.customers.Create(r.Context(), &customer); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resultResponse{OK: true, Message: "Created", Result: customer})
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{OK: false, Message: "invalid request body"})
		return
	}
	if plain, ok := patch["password"].(string); ok {
		hash, err := h.auth.HashPassword(plain)
		if err != nil {
			writeError(w, err)
			return
		}
		patch["password"] = hash
	}
	if err := h.customers.Update(r.Context(), r.PathValue("id"), patch); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{OK: true, Message: "Updated"})
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.customers.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resultResponse{OK: true, Result: customer})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string `json:"token"`
	Payload any    `json:"payload"`
}

func (h *Handler) loginCustomer(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{OK: false, Message: "invalid request body"})
		return
	}

	token, customer, err := h.auth.LoginCustomer(r.Context(), req.Email, req.Password)
	if errors.Is(err, repository.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not found"})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token, Payload: customer})
}

func (h *Handler) customerProfile(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	if claims == nil {
		writeError(w, service.ErrUnauthorized)
		return
	}
	customer, err := h.customers.FindByID(r.Context(), claims.Subject)
	if errors.Is(err, repository.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not found"})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}
