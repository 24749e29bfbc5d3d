package handler

import (
	"net/http"

	"cafe-pos/internal/model"
	"cafe-pos/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// KioskHandler handles customer kiosk HTTP requests.
type KioskHandler struct {
	service  service.KioskService
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewKioskHandler creates a new kiosk handler.
func NewKioskHandler(service service.KioskService, logger zerolog.Logger) *KioskHandler {
	return &KioskHandler{
		service:  service,
		validate: newValidator(),
		logger:   logger.With().Str("handler", "kiosk").Logger(),
	}
}

// RegisterRoutes registers kiosk endpoints. Expected to be mounted at /api/kiosk.
func (h *KioskHandler) RegisterRoutes(r chi.Router) {
	r.Get("/menu", h.Menu)
	r.Get("/categories", h.Categories)
	r.Post("/sessions", h.OpenSession)
	r.Route("/sessions/{sid}", func(r chi.Router) {
		r.Get("/", h.View)
		r.Delete("/", h.CloseSession)
		r.Post("/lines", h.AddLine)
		r.Delete("/lines", h.ClearCart)
		r.Patch("/lines/{lid}", h.AdjustLine)
		r.Delete("/lines/{lid}", h.RemoveLine)
		r.Put("/fulfilment", h.SetFulfilment)
		r.Post("/view", h.Navigate)
		r.Post("/confirm", h.Confirm)
	})
}

// Menu handles GET /api/kiosk/menu requests.
func (h *KioskHandler) Menu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.service.Menu(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, menu, h.logger)
}

// Categories handles GET /api/kiosk/categories requests.
func (h *KioskHandler) Categories(w http.ResponseWriter, r *http.Request) {
	menu, err := h.service.Menu(r.Context(), "")
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, menu.Categories, h.logger)
}

// OpenSession handles POST /api/kiosk/sessions requests.
func (h *KioskHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.OpenSession(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, view, h.logger)
}

// View handles GET /api/kiosk/sessions/{sid} requests.
func (h *KioskHandler) View(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.View(r.Context(), chi.URLParam(r, "sid"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view, h.logger)
}

// CloseSession handles DELETE /api/kiosk/sessions/{sid} requests.
func (h *KioskHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CloseSession(r.Context(), chi.URLParam(r, "sid")); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddLine handles POST /api/kiosk/sessions/{sid}/lines requests.
func (h *KioskHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	var req model.AddLineRequest
	if !decodeAndValidate(w, r, h.validate, &req, h.logger) {
		return
	}

	view, err := h.service.AddItem(r.Context(), chi.URLParam(r, "sid"), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view, h.logger)
}

// AdjustLine handles PATCH /api/kiosk/sessions/{sid}/lines/{lid} requests.
func (h *KioskHandler) AdjustLine(w http.ResponseWriter, r *http.Request) {
	var req model.AdjustLineRequest
	if !decodeAndValidate(w, r, h.validate, &req, h.logger) {
		return
	}

	view, err := h.service.AdjustLine(r.Context(), chi.URLParam(r, "sid"), chi.URLParam(r, "lid"), req.Delta)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view, h.logger)
}

// RemoveLine handles DELETE /api/kiosk/sessions/{sid}/lines/{lid} requests.
func (h *KioskHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.RemoveLine(r.Context(), chi.URLParam(r, "sid"), chi.URLParam(r, "lid"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view, h.logger)
}

// ClearCart handles DELETE /api/kiosk/sessions/{sid}/lines requests.
func (h *KioskHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.ClearCart(r.Context(), chi.URLParam(r, "sid"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view, h.logger)
}

// SetFulfilment handles PUT /api/kiosk/sessions/{sid}/fulfilment requests.
func (h *KioskHandler) SetFulfilment(w http.ResponseWriter, r *http.Request) {
	var req model.FulfilmentRequest
	if !decodeAndValidate(w, r, h.validate, &req, h.logger) {
		return
	}

	view, err := h.service.SetFulfilment(r.Context(), chi.URLParam(r, "sid"), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view, h.logger)
}

// Navigate handles POST /api/kiosk/sessions/{sid}/view requests.
func (h *KioskHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req model.NavigateRequest
	if !decodeAndValidate(w, r, h.validate, &req, h.logger) {
		return
	}

	view, err := h.service.Navigate(r.Context(), chi.URLParam(r, "sid"), req.View)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view, h.logger)
}

// Confirm handles POST /api/kiosk/sessions/{sid}/confirm requests.
func (h *KioskHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.Confirm(r.Context(), chi.URLParam(r, "sid"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order, h.logger)
}
