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

type employeeRequest struct {
	entity.Employee
	Password string `json:"password"`
}

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repository.EmployeeFilter{
		FirstName: q.Get("firstNameEmployee"),
		LastName:  q.Get("lastNameEmployee"),
		Page:      pageFrom(q),
	}

	employees, total, err := h.employees.Find(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Payload: employees, Total: total})
}

func (h *Handler) getEmployee(w http.ResponseWriter, r *http.Request) {
	employee, err := h.employees.FindByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resultResponse{OK: true, Result: employee})
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{OK: false, Message: "invalid request body"})
		return
	}

	employee := req.Employee
	employee.ID = uuid.New().String()

	hash, err := h.auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	employee.Password = hash

	if err := h.employees.Create(r.Context(), &employee); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resultResponse{OK: true, Message: "Created", Result: employee})
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
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
	if err := h.employees.Update(r.Context(), r.PathValue("id"), patch); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{OK: true, Message: "Updated"})
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	employee, err := h.employees.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resultResponse{OK: true, Result: employee})
}

func (h *Handler) loginEmployee(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{OK: false, Message: "invalid request body"})
		return
	}

	token, employee, err := h.auth.LoginEmployee(r.Context(), req.Email, req.Password)
	if errors.Is(err, repository.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not found"})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token, Payload: employee})
}

func (h *Handler) employeeProfile(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	if claims == nil {
		writeError(w, service.ErrUnauthorized)
		return
	}
	employee, err := h.employees.FindByID(r.Context(), claims.Subject)
	if errors.Is(err, repository.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not found"})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}
