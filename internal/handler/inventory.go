package handler

import (
	"net/http"

	"github.com/ProMBZ/update-car-sales-chatbot/internal/chat"
	"github.com/ProMBZ/update-car-sales-chatbot/internal/inventory"
	"github.com/ProMBZ/update-car-sales-chatbot/internal/matching"
	"github.com/ProMBZ/update-car-sales-chatbot/internal/model"
)

type InventoryHandler struct {
	catalog *inventory.Catalog
	svc     *chat.Service
}

func NewInventoryHandler(catalog *inventory.Catalog, svc *chat.Service) *InventoryHandler {
	return &InventoryHandler{catalog: catalog, svc: svc}
}

// List returns the cars currently in stock, in catalog order
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	keys := h.catalog.Keys()
	cars := make([]string, len(keys))
	for i, key := range keys {
		cars[i] = matching.Capitalize(key)
	}

	writeJSON(w, http.StatusOK, model.InventoryResponse{
		Cars:    cars,
		Message: h.svc.ListAvailableCars(),
	})
}
