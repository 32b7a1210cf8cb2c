package api

import (
	"encoding/json"
	"net/http"

	"github.com/Haven-Estates/haven-api/models/contact"
	"github.com/julienschmidt/httprouter"
)

// ContactRequest represents the contact upsert request. Omitted fields
// keep their stored values.
type ContactRequest struct {
	Phone        []string             `json:"phone"`
	Email        []string             `json:"email"`
	Address      []string             `json:"address"`
	SocialLinks  []contact.SocialLink `json:"socialLinks"`
	YouTube      *string              `json:"youtube"`
	MapLink      *string              `json:"mapLink"`
	AboutText    *string              `json:"aboutText"`
	WorkingHours *string              `json:"workingHours"`
}

// GetContact returns the site contact record (public, cached)
func GetContact(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	info, err := contact.CachedGet(contactRepo)
	if err != nil {
		if err == contact.ErrContactNotSet {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "contact info not set yet"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to load contact info"})
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// SetContact creates or updates the site contact record (admin).
// Fields absent from the request keep their stored values.
func SetContact(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	current, err := contactRepo.Get()
	if err != nil && err != contact.ErrContactNotSet {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to load contact info"})
		return
	}
	if current == nil {
		current = &contact.Info{}
	}

	if req.Phone != nil {
		current.Phone = req.Phone
	}
	if req.Email != nil {
		current.Email = req.Email
	}
	if req.Address != nil {
		current.Address = req.Address
	}
	if req.SocialLinks != nil {
		current.SocialLinks = req.SocialLinks
	}
	if req.YouTube != nil {
		current.YouTube = *req.YouTube
	}
	if req.MapLink != nil {
		current.MapLink = *req.MapLink
	}
	if req.AboutText != nil {
		current.AboutText = *req.AboutText
	}
	if req.WorkingHours != nil {
		current.WorkingHours = *req.WorkingHours
	}

	info, err := contactRepo.Upsert(current)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to save contact info"})
		return
	}

	contact.InvalidateCache()
	writeJSON(w, http.StatusOK, info)
}

// DeleteContact removes the site contact record (admin)
func DeleteContact(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := contactRepo.Delete(); err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to delete contact info"})
		return
	}

	contact.InvalidateCache()
	writeJSON(w, http.StatusOK, MessageResponse{Message: "contact info deleted"})
}
