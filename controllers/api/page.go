package api

import (
	"encoding/json"
	"net/http"

	"github.com/Haven-Estates/haven-api/models/page"
	"github.com/julienschmidt/httprouter"
)

// PageRequest represents a page create/update request
type PageRequest struct {
	Name        string         `json:"name"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Keywords    string         `json:"keywords"`
	Sections    []page.Section `json:"sections"`
}

// ListPages returns all pages (public; the admin list uses it too)
func ListPages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	pages, err := pageRepo.List()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to list pages"})
		return
	}
	writeJSON(w, http.StatusOK, pages)
}

// GetPage returns a page by slug (public; drives SEO meta)
func GetPage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	p, err := pageRepo.FindByName(ps.ByName("name"))
	if err != nil {
		if err == page.ErrPageNotFound {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "page not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to get page"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// CreatePage creates a page (admin)
func CreatePage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req PageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Name == "" || req.Title == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "name and title required"})
		return
	}

	created, err := pageRepo.Create(&page.Page{
		Name:        req.Name,
		Title:       req.Title,
		Description: req.Description,
		Keywords:    req.Keywords,
		Sections:    req.Sections,
	})
	if err != nil {
		if err == page.ErrNameExists {
			writeJSON(w, http.StatusConflict, ErrorResponse{Error: "page name already exists"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to create page"})
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// UpdatePage replaces a page's content and metadata by slug (admin)
func UpdatePage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req PageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	updated, err := pageRepo.Update(ps.ByName("name"), &page.Page{
		Title:       req.Title,
		Description: req.Description,
		Keywords:    req.Keywords,
		Sections:    req.Sections,
	})
	if err != nil {
		if err == page.ErrPageNotFound {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "page not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to update page"})
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeletePage deletes a page by slug; idempotent (admin)
func DeletePage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := pageRepo.Delete(ps.ByName("name")); err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to delete page"})
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "page deleted"})
}
