package leads

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ProMBZ/update-car-sales-chatbot/internal/model"
)

// PostgresStore persists leads in a Postgres table. The schema is created
// by database.RunMigrations at startup.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a store over an existing connection pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Save inserts one lead row.
func (s *PostgresStore) Save(ctx context.Context, lead *model.Lead) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO leads (name, email, whatsapp) VALUES ($1, $2, $3)`,
		lead.Name, lead.Email, lead.WhatsApp,
	)
	if err != nil {
		return fmt.Errorf("postgres: insert lead: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

var _ Store = (*CSVStore)(nil)
var _ Store = (*PostgresStore)(nil)
