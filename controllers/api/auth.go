package api

import (
	"encoding/json"
	"net/http"

	"github.com/Haven-Estates/haven-api/auth"
	"github.com/Haven-Estates/haven-api/models/account"
	"github.com/julienschmidt/httprouter"
)

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is the created account's public identity
type RegisterResponse struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

// Register creates the admin account.
// ⚠️ Bootstrap only — there is no lockout once the first admin exists;
// deployments are expected to disable the route after setup.
func Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "email and password required"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to hash password"})
		return
	}

	acc, err := accountRepo.Create(req.Email, hash, "admin")
	if err != nil {
		if err == account.ErrEmailExists {
			writeJSON(w, http.StatusConflict, ErrorResponse{Error: "user already exists"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to create account"})
		return
	}

	writeJSON(w, http.StatusCreated, RegisterResponse{ID: acc.ID, Email: acc.Email})
}

// Login authenticates and sets the session cookie. Unknown email and
// wrong password answer identically so the response never confirms
// whether an address is registered.
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "email and password required"})
		return
	}

	acc, err := accountRepo.FindByEmail(req.Email)
	if err != nil {
		if err == account.ErrAccountNotFound {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to look up account"})
		return
	}

	if !auth.CheckPassword(req.Password, acc.Password) {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		return
	}

	token, err := authService.GenerateToken(acc.ID, acc.Role)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to generate token"})
		return
	}

	// The token travels only in the cookie, never in the body.
	authService.SetSessionCookie(w, token)
	writeJSON(w, http.StatusOK, MessageResponse{Message: "logged in successfully"})
}

// Logout clears the session cookie. Safe to call with no session.
func Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	authService.ClearSessionCookie(w)
	writeJSON(w, http.StatusOK, MessageResponse{Message: "logged out successfully"})
}

// Me returns the current account without its password hash.
func Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
		return
	}

	id, err := claims.AccountID()
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
		return
	}

	acc, err := accountRepo.FindByID(id)
	if err != nil {
		if err == account.ErrAccountNotFound {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "account not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to look up account"})
		return
	}

	writeJSON(w, http.StatusOK, acc)
}
