package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Middleware validates the session cookie before the handler runs.
// Missing, invalid and expired tokens all short-circuit with 401; a
// rejected request is routine traffic, not an error condition.
func (s *Service) Middleware(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString, err := TokenFromRequest(r)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
			return
		}

		claims, err := s.ValidateToken(tokenString)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next(w, r.WithContext(ctx), ps)
	}
}

// RequireAdmin validates the session cookie and additionally requires
// the admin role. Insufficient role is forbidden, not unauthorized.
func (s *Service) RequireAdmin(next httprouter.Handle) httprouter.Handle {
	return s.Middleware(func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
			return
		}

		if claims.Role != "admin" {
			writeJSON(w, http.StatusForbidden, ErrorResponse{Error: "forbidden"})
			return
		}

		next(w, r, ps)
	})
}

// ClaimsFromContext gets the verified claims attached by Middleware.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	if !ok {
		return nil
	}
	return claims
}
