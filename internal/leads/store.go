package leads

import (
	"context"

	"github.com/ProMBZ/update-car-sales-chatbot/internal/model"
)

// Store is the interface any lead persistence backend must satisfy.
// Leads are append-only; no uniqueness is enforced.
type Store interface {
	Save(ctx context.Context, lead *model.Lead) error
	Close() error
}
