package model

import "time"

// ChatRequest is a single user message sent to the assistant.
type ChatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message" validate:"required"`
}

// ChatResponse is the assistant's answer for one message.
type ChatResponse struct {
	SessionID    string   `json:"session_id"`
	Reply        string   `json:"reply"`
	Images       []string `json:"images,omitempty"`
	ShowLeadForm bool     `json:"show_lead_form"`
}

// LeadRequest is a lead form submission tied to a chat session.
type LeadRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	WhatsApp  string `json:"whatsapp" validate:"required"`
}

// LeadResponse acknowledges a recorded lead.
type LeadResponse struct {
	Message string `json:"message"`
}

// InventoryResponse lists the cars currently in stock.
type InventoryResponse struct {
	Cars    []string `json:"cars"`
	Message string   `json:"message"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string    `json:"status"`
	LeadStore string    `json:"lead_store"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
