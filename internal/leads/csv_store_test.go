package leads

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/ProMBZ/update-car-sales-chatbot/internal/model"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return rows
}

func TestCSVStoreCreatesHeaderAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.csv")

	store, err := NewCSVStore(path)
	if err != nil {
		t.Fatalf("NewCSVStore: %v", err)
	}

	leads := []*model.Lead{
		{Name: "Alex", Email: "alex@example.com", WhatsApp: "+15550100"},
		{Name: "Sam", Email: "sam@example.com", WhatsApp: "+15550101"},
	}
	for _, l := range leads {
		if err := store.Save(context.Background(), l); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	rows := readRows(t, path)
	if len(rows) != 3 {
		t.Fatalf("got %d rows; want header + 2 leads", len(rows))
	}
	if rows[0][0] != "name" || rows[0][1] != "email" || rows[0][2] != "whatsapp" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "Alex" || rows[2][2] != "+15550101" {
		t.Errorf("unexpected lead rows: %v", rows[1:])
	}
}

func TestCSVStoreReopenDoesNotDuplicateHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "leads.csv")

	store, err := NewCSVStore(path)
	if err != nil {
		t.Fatalf("NewCSVStore: %v", err)
	}
	if err := store.Save(context.Background(), &model.Lead{Name: "Alex", Email: "a@example.com", WhatsApp: "1"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	store.Close()

	// Second process run appends, no second header.
	store, err = NewCSVStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if err := store.Save(context.Background(), &model.Lead{Name: "Sam", Email: "s@example.com", WhatsApp: "2"}); err != nil {
		t.Fatalf("Save after reopen: %v", err)
	}
	store.Close()

	rows := readRows(t, path)
	if len(rows) != 3 {
		t.Fatalf("got %d rows; want header + 2 leads", len(rows))
	}
	for _, row := range rows[1:] {
		if row[0] == "name" {
			t.Error("duplicate header row found")
		}
	}
}
