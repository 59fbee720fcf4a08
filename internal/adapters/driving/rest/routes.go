package rest

import (
	"net/http"

	"github.com/custodia-labs/unitconv/internal/logger"
)

func (s *Server) setRoutes() {
	s.router.HandlerFunc(http.MethodGet, "/healthz", s.healthHandler)
	s.router.HandlerFunc(http.MethodGet, "/api/categories", s.categoriesHandler)
	s.router.HandlerFunc(http.MethodGet, "/api/categories/:category/units", s.unitsHandler)
	s.router.HandlerFunc(http.MethodGet, "/api/convert", s.convertHandler)
	s.router.HandlerFunc(http.MethodGet, "/api/circle-area", s.circleAreaHandler)

	s.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		sendError(w, http.StatusNotFound, "resource not found")
	})
	s.router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		sendError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	s.router.PanicHandler = func(w http.ResponseWriter, r *http.Request, v any) {
		logger.Error("rest: panic serving %s: %v", r.URL.Path, v)
		sendError(w, http.StatusInternalServerError, "internal server error")
	}
}
