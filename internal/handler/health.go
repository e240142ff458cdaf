package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ProMBZ/update-car-sales-chatbot/internal/model"
)

type HealthHandler struct {
	db *pgxpool.Pool // nil when leads go to CSV
}

func NewHealthHandler(db *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	response := model.HealthResponse{
		Status:    "ok",
		LeadStore: "csv",
		Timestamp: time.Now(),
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		response.LeadStore = "postgres"
		if err := h.db.Ping(ctx); err != nil {
			response.LeadStore = "postgres disconnected"
			response.Status = "degraded"
		}
	}

	writeJSON(w, http.StatusOK, response)
}
