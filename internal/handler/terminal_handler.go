package handler

import (
	"net/http"

	"cafe-pos/internal/model"
	"cafe-pos/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TerminalHandler handles staff terminal ticket and order queue requests.
type TerminalHandler struct {
	service  service.TerminalService
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewTerminalHandler creates a new terminal handler.
func NewTerminalHandler(service service.TerminalService, logger zerolog.Logger) *TerminalHandler {
	return &TerminalHandler{
		service:  service,
		validate: newValidator(),
		logger:   logger.With().Str("handler", "terminal").Logger(),
	}
}

// RegisterRoutes registers ticket and order endpoints. Expected to be mounted at /api/terminal.
func (h *TerminalHandler) RegisterRoutes(r chi.Router) {
	r.Get("/menu", h.Menu)
	r.Get("/categories", h.Categories)

	r.Get("/ticket", h.Ticket)
	r.Delete("/ticket", h.ClearTicket)
	r.Post("/ticket/lines", h.AddLine)
	r.Put("/ticket/lines/{lid}", h.SetQuantity)
	r.Delete("/ticket/lines/{lid}", h.RemoveLine)
	r.Post("/ticket/confirm", h.Confirm)

	r.Get("/orders", h.Orders)
	r.Put("/orders/{id}/status", h.ChangeStatus)
	r.Get("/orders/{id}/receipt", h.Receipt)
	r.Post("/orders/{id}/print", h.Print)
}

// Menu handles GET /api/terminal/menu requests.
func (h *TerminalHandler) Menu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.service.Menu(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, menu, h.logger)
}

// Categories handles GET /api/terminal/categories requests.
func (h *TerminalHandler) Categories(w http.ResponseWriter, r *http.Request) {
	menu, err := h.service.Menu(r.Context(), "")
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, menu.Categories, h.logger)
}

// Ticket handles GET /api/terminal/ticket requests.
func (h *TerminalHandler) Ticket(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.service.Ticket(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, ticket, h.logger)
}

// AddLine handles POST /api/terminal/ticket/lines requests.
func (h *TerminalHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	var req model.AddLineRequest
	if !decodeAndValidate(w, r, h.validate, &req, h.logger) {
		return
	}

	ticket, err := h.service.AddItem(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, ticket, h.logger)
}

// SetQuantity handles PUT /api/terminal/ticket/lines/{lid} requests.
func (h *TerminalHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var req model.SetQuantityRequest
	if !decodeAndValidate(w, r, h.validate, &req, h.logger) {
		return
	}

	ticket, err := h.service.SetQuantity(r.Context(), chi.URLParam(r, "lid"), req.Quantity)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, ticket, h.logger)
}

// RemoveLine handles DELETE /api/terminal/ticket/lines/{lid} requests.
func (h *TerminalHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.service.RemoveLine(r.Context(), chi.URLParam(r, "lid"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, ticket, h.logger)
}

// ClearTicket handles DELETE /api/terminal/ticket requests.
func (h *TerminalHandler) ClearTicket(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.service.ClearTicket(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, ticket, h.logger)
}

// Confirm handles POST /api/terminal/ticket/confirm requests.
func (h *TerminalHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req model.ConfirmTicketRequest
	if !decodeAndValidate(w, r, h.validate, &req, h.logger) {
		return
	}

	order, err := h.service.Confirm(r.Context(), req.PaymentMethod)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order, h.logger)
}

// Orders handles GET /api/terminal/orders requests.
func (h *TerminalHandler) Orders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.Orders(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders, h.logger)
}

// ChangeStatus handles PUT /api/terminal/orders/{id}/status requests.
func (h *TerminalHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var req model.StatusRequest
	if !decodeAndValidate(w, r, h.validate, &req, h.logger) {
		return
	}

	order, err := h.service.ChangeStatus(r.Context(), id, req.Status)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order, h.logger)
}

// Receipt handles GET /api/terminal/orders/{id}/receipt requests.
// Plain text is returned when the client asks for it.
func (h *TerminalHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	rec, err := h.service.Receipt(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if r.Header.Get("Accept") == "text/plain" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(rec.Text))
		return
	}

	writeJSON(w, http.StatusOK, rec, h.logger)
}

// Print handles POST /api/terminal/orders/{id}/print requests.
func (h *TerminalHandler) Print(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	rec, err := h.service.Print(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusAccepted, rec, h.logger)
}

func (h *TerminalHandler) orderID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "invalid order ID format", h.logger)
		return uuid.Nil, false
	}
	return id, true
}
