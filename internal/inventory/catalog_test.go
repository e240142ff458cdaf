package inventory

import (
	"strings"
	"testing"
)

func TestCatalogSize(t *testing.T) {
	c := Load()
	if c.Len() != 20 {
		t.Fatalf("catalog has %d listings; want 20", c.Len())
	}
}

func TestCatalogKeysAreNormalized(t *testing.T) {
	c := Load()
	seen := make(map[string]struct{})

	for _, key := range c.Keys() {
		if key == "" {
			t.Error("empty catalog key")
		}
		if key != strings.ToLower(key) {
			t.Errorf("catalog key %q is not lowercase", key)
		}
		if _, dup := seen[key]; dup {
			t.Errorf("duplicate catalog key %q", key)
		}
		seen[key] = struct{}{}
	}
}

func TestCatalogIterationOrderIsStable(t *testing.T) {
	c := Load()

	first := c.Keys()
	if first[0] != "toyota corolla" || first[len(first)-1] != "volvo xc90" {
		t.Errorf("unexpected key order: first=%q last=%q", first[0], first[len(first)-1])
	}

	for i := 0; i < 10; i++ {
		again := c.Keys()
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("key order changed at %d: %q vs %q", j, again[j], first[j])
			}
		}
	}
}

func TestCatalogGetReturnsSharedListing(t *testing.T) {
	c := Load()

	a, ok := c.Get("toyota corolla")
	if !ok {
		t.Fatal("toyota corolla not found")
	}
	if a.Price != 18000 || a.Mileage != 60000 {
		t.Errorf("unexpected listing values: %+v", a)
	}

	b, _ := c.Get("toyota corolla")
	if a != b {
		t.Error("Get returned different pointers for the same key")
	}

	if _, ok := c.Get("yugo gv"); ok {
		t.Error("unexpected hit for unknown key")
	}
}
