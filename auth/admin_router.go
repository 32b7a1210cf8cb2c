package auth

import (
	"github.com/julienschmidt/httprouter"
)

// AdminRouter wraps httprouter with automatic RequireAdmin middleware
type AdminRouter struct {
	router  *httprouter.Router
	service *Service
}

// NewAdminRouter creates a new AdminRouter
func NewAdminRouter(router *httprouter.Router, service *Service) *AdminRouter {
	return &AdminRouter{router: router, service: service}
}

// GET registers a GET route with RequireAdmin middleware
func (ar *AdminRouter) GET(path string, handler httprouter.Handle) {
	ar.router.GET(path, ar.service.RequireAdmin(handler))
}

// POST registers a POST route with RequireAdmin middleware
func (ar *AdminRouter) POST(path string, handler httprouter.Handle) {
	ar.router.POST(path, ar.service.RequireAdmin(handler))
}

// PUT registers a PUT route with RequireAdmin middleware
func (ar *AdminRouter) PUT(path string, handler httprouter.Handle) {
	ar.router.PUT(path, ar.service.RequireAdmin(handler))
}

// DELETE registers a DELETE route with RequireAdmin middleware
func (ar *AdminRouter) DELETE(path string, handler httprouter.Handle) {
	ar.router.DELETE(path, ar.service.RequireAdmin(handler))
}

// PATCH registers a PATCH route with RequireAdmin middleware
func (ar *AdminRouter) PATCH(path string, handler httprouter.Handle) {
	ar.router.PATCH(path, ar.service.RequireAdmin(handler))
}
