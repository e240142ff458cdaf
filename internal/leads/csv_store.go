package leads

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/ProMBZ/update-car-sales-chatbot/internal/model"
)

var csvHeader = []string{"name", "email", "whatsapp"}

// CSVStore appends leads to a flat CSV file. It is safe for concurrent use.
type CSVStore struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVStore opens (or creates) the CSV file at the given path in append
// mode. The header row is written only when the file did not exist.
// Intermediate directories are created automatically.
func NewCSVStore(path string) (*CSVStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("csv: create output dir: %w", err)
		}
	}

	_, statErr := os.Stat(path)
	isNew := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("csv: open file %q: %w", path, err)
	}

	w := csv.NewWriter(f)

	if isNew {
		if err := w.Write(csvHeader); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("csv: write header: %w", err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("csv: flush header: %w", err)
		}
	}

	return &CSVStore{file: f, writer: w}, nil
}

// Save appends one lead row and flushes it to disk.
func (s *CSVStore) Save(_ context.Context, lead *model.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := []string{lead.Name, lead.Email, lead.WhatsApp}
	if err := s.writer.Write(row); err != nil {
		return fmt.Errorf("csv: write row: %w", err)
	}

	s.writer.Flush()
	return s.writer.Error()
}

// Close flushes and closes the underlying file.
func (s *CSVStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writer.Flush()
	return s.file.Close()
}
