package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/internal/validation"
)

// ContactHandler handles public contact form submissions.
type ContactHandler struct {
	contactService service.ContactService
	validator      *validation.Validator
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService, v *validation.Validator) *ContactHandler {
	return &ContactHandler{contactService: contactService, validator: v}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type submitResponse struct {
	Message          string `json:"message"`
	ConfirmationSent bool   `json:"confirmationSent"`
}

// Submit handles POST /api/contact. All three fields are required; nothing
// is dispatched when validation fails.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid JSON body"})
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	result, err := h.contactService.Submit(r.Context(), service.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		slog.Error("contact submission failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to send message. Please try again later."})
		return
	}

	_ = json.NewEncoder(w).Encode(submitResponse{
		Message:          "Message sent successfully! Check your email for confirmation.",
		ConfirmationSent: result.ConfirmationSent,
	})
}
