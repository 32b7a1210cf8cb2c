package api

import (
	"encoding/json"
	"net/http"

	"github.com/Haven-Estates/haven-api/auth"
	"github.com/Haven-Estates/haven-api/media"
	"github.com/Haven-Estates/haven-api/models/account"
	"github.com/Haven-Estates/haven-api/models/blog"
	"github.com/Haven-Estates/haven-api/models/contact"
	"github.com/Haven-Estates/haven-api/models/page"
	"github.com/Haven-Estates/haven-api/models/property"
)

var (
	accountRepo  account.Repository  = &account.Postgres{}
	propertyRepo property.Repository = &property.Postgres{}
	blogRepo     blog.Repository     = &blog.Postgres{}
	pageRepo     page.Repository     = &page.Postgres{}
	contactRepo  contact.Repository  = &contact.Postgres{}

	authService *auth.Service
	mediaStore  media.Store
)

// Setup wires the auth service and media store constructed in main.
func Setup(svc *auth.Service, store media.Store) {
	authService = svc
	mediaStore = store
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

const maxUploadMemory = 32 << 20
