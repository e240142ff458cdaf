package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ProMBZ/update-car-sales-chatbot/internal/chat"
	"github.com/ProMBZ/update-car-sales-chatbot/internal/model"
)

type LeadHandler struct {
	svc      *chat.Service
	validate *validator.Validate
}

func NewLeadHandler(svc *chat.Service) *LeadHandler {
	return &LeadHandler{
		svc:      svc,
		validate: validator.New(),
	}
}

// Submit records a lead form submission. All fields are required; nothing
// is written when validation fails.
func (h *LeadHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.LeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "Request body must be valid JSON")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "Please fill out all fields.")
		return
	}

	lead := &model.Lead{
		Name:     req.Name,
		Email:    req.Email,
		WhatsApp: req.WhatsApp,
	}

	if err := h.svc.SubmitLead(r.Context(), req.SessionID, lead); err != nil {
		writeError(w, http.StatusInternalServerError, "storage_error", "Could not record your details, please try again.")
		return
	}

	writeJSON(w, http.StatusCreated, model.LeadResponse{
		Message: "Thank you! Your details have been recorded and we'll contact you shortly.",
	})
}
