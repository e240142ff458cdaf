package inventory

import (
	"github.com/ProMBZ/update-car-sales-chatbot/internal/model"
)

// Catalog is the in-memory used car stock: a read-only mapping from
// normalized (lowercase) model name to listing. Keys keep their insertion
// order so enumeration and tie-breaking are deterministic.
type Catalog struct {
	keys     []string
	listings map[string]*model.Listing
}

type entry struct {
	key     string
	listing model.Listing
}

func newCatalog(entries []entry) *Catalog {
	c := &Catalog{
		keys:     make([]string, 0, len(entries)),
		listings: make(map[string]*model.Listing, len(entries)),
	}
	for i := range entries {
		e := &entries[i]
		if _, dup := c.listings[e.key]; dup {
			continue
		}
		c.keys = append(c.keys, e.key)
		c.listings[e.key] = &e.listing
	}
	return c
}

// Get returns the listing for a catalog key. The returned pointer is shared;
// callers must not mutate it.
func (c *Catalog) Get(key string) (*model.Listing, bool) {
	l, ok := c.listings[key]
	return l, ok
}

// Keys returns the catalog keys in insertion order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Len returns the number of listings in stock.
func (c *Catalog) Len() int {
	return len(c.keys)
}
