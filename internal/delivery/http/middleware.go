package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/phamanh/retail-store-backend/internal/service"
	"github.com/phamanh/retail-store-backend/internal/validation"
)

type contextKey string

const claimsKey contextKey = "claims"

// validated wraps a handler so the request is checked against the schema
// before business logic runs. The body is restored after decoding so the
// handler can unmarshal it into its own typed struct.
func validated(schema *validation.Schema, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body validation.Source
		if r.Body != nil && r.Method != http.MethodGet && r.Method != http.MethodDelete {
			raw, err := io.ReadAll(r.Body)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, messageResponse{OK: false, Message: "failed to read request body"})
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(raw))
			if len(raw) > 0 {
				if err := json.Unmarshal(raw, &body); err != nil {
					writeJSON(w, http.StatusBadRequest, messageResponse{OK: false, Message: "invalid request body"})
					return
				}
			}
		}

		query := validation.Source{}
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				query[key] = values[0]
			}
		}

		params := validation.Source{}
		for _, rule := range schema.Params.Rules {
			if v := r.PathValue(rule.Field); v != "" {
				params[rule.Field] = v
			}
		}

		if violations := validation.Validate(schema, body, query, params); len(violations) > 0 {
			writeValidationError(w, violations)
			return
		}
		next(w, r)
	}
}

// authenticated validates the bearer token and stashes its claims. Missing,
// malformed and expired tokens are rejected uniformly as unauthorized.
func authenticated(auth *service.AuthService, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, service.ErrUnauthorized)
			return
		}
		claims, err := auth.ParseToken(token)
		if err != nil {
			writeError(w, service.ErrUnauthorized)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	}
}

func claimsFrom(r *http.Request) *service.Claims {
	claims, _ := r.Context().Value(claimsKey).(*service.Claims)
	return claims
}

// enableCORS allows browser frontends to call the API directly.
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
