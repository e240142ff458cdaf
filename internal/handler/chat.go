package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ProMBZ/update-car-sales-chatbot/internal/chat"
	"github.com/ProMBZ/update-car-sales-chatbot/internal/model"
)

type ChatHandler struct {
	svc      *chat.Service
	validate *validator.Validate
}

func NewChatHandler(svc *chat.Service) *ChatHandler {
	return &ChatHandler{
		svc:      svc,
		validate: validator.New(),
	}
}

// Message handles one user chat message and returns the assistant's reply
func (h *ChatHandler) Message(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "Request body must be valid JSON")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "Field 'message' is required")
		return
	}

	reply := h.svc.HandleMessage(r.Context(), req.SessionID, req.Message)

	writeJSON(w, http.StatusOK, model.ChatResponse{
		SessionID:    reply.SessionID,
		Reply:        reply.Text,
		Images:       reply.Images,
		ShowLeadForm: reply.ShowLeadForm,
	})
}
