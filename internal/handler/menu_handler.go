package handler

import (
	"net/http"

	"cafe-pos/internal/model"
	"cafe-pos/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// MenuHandler handles staff menu management requests.
type MenuHandler struct {
	service  service.MenuService
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(service service.MenuService, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		service:  service,
		validate: newValidator(),
		logger:   logger.With().Str("handler", "menu").Logger(),
	}
}

// RegisterRoutes registers menu management endpoints on the /api/terminal
// subrouter, next to the terminal's GET /menu.
func (h *MenuHandler) RegisterRoutes(r chi.Router) {
	r.Get("/menu/items", h.List)
	r.Post("/menu", h.Create)
	r.Put("/menu/{id}", h.Update)
	r.Delete("/menu/{id}", h.Delete)
	r.Post("/menu/{id}/toggle", h.Toggle)
}

// List handles GET /api/terminal/menu/items requests.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items, h.logger)
}

// Create handles POST /api/terminal/menu requests.
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.MenuItemRequest
	if !decodeAndValidate(w, r, h.validate, &req, h.logger) {
		return
	}

	item, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, item, h.logger)
}

// Update handles PUT /api/terminal/menu/{id} requests.
func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.MenuItemRequest
	if !decodeAndValidate(w, r, h.validate, &req, h.logger) {
		return
	}

	item, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item, h.logger)
}

// Delete handles DELETE /api/terminal/menu/{id} requests.
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Toggle handles POST /api/terminal/menu/{id}/toggle requests.
func (h *MenuHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.Toggle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item, h.logger)
}
