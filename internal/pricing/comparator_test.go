package pricing

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ProMBZ/update-car-sales-chatbot/internal/client"
	"github.com/ProMBZ/update-car-sales-chatbot/internal/inventory"
	"github.com/ProMBZ/update-car-sales-chatbot/internal/matching"
)

type fakeSearcher struct {
	resp *client.SearchResponse
	err  error
}

func (f *fakeSearcher) Search(_ context.Context, _ string, _ bool) (*client.SearchResponse, error) {
	return f.resp, f.err
}

func searchResponse(content, url string) *client.SearchResponse {
	return &client.SearchResponse{
		Results: []client.SearchResult{{Title: "result", URL: url, Content: content}},
	}
}

func newTestComparator(t *testing.T, searcher Searcher) *Comparator {
	t.Helper()
	catalog := inventory.Load()
	resolver := matching.NewResolver(catalog.Keys())
	return NewComparator(catalog, resolver, searcher, newTestLogger())
}

func TestDiscountedPrice(t *testing.T) {
	tests := []struct {
		price int
		want  int
	}{
		{18000, 16200},
		{22500, 20250},
		{110000, 99000},
		{35001, 31500}, // floor, not round
	}

	for _, tt := range tests {
		if got := DiscountedPrice(tt.price); got != tt.want {
			t.Errorf("DiscountedPrice(%d) = %d; want %d", tt.price, got, tt.want)
		}
	}
}

func TestCompareOurPriceLower(t *testing.T) {
	// toyota corolla listed at 18000, our price 16200; online average 18000.
	c := newTestComparator(t, &fakeSearcher{
		resp: searchResponse("Corollas go for $18,000 around here", "https://example.com/prices"),
	})

	msg := c.Compare(context.Background(), "Toyota Corolla")

	for _, want := range []string{
		"$16,200",
		"$1,800 less than the average online price",
		"Leather seats, well-maintained",
		"https://example.com/prices",
		"[mention dealership benefits here]",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("Compare message missing %q:\n%s", want, msg)
		}
	}
}

func TestCompareOnlineAverageLower(t *testing.T) {
	c := newTestComparator(t, &fakeSearcher{
		resp: searchResponse("You can find one for $15,000", "https://example.com"),
	})

	msg := c.Compare(context.Background(), "toyota corolla")

	if !strings.Contains(msg, "online prices average $15,000") {
		t.Errorf("expected value-justification clause referencing $15,000:\n%s", msg)
	}
	if !strings.Contains(msg, "added value") {
		t.Errorf("expected added-value wording:\n%s", msg)
	}
}

func TestComparePriceParity(t *testing.T) {
	c := newTestComparator(t, &fakeSearcher{
		resp: searchResponse("Typical asking price is $16,200", "https://example.com"),
	})

	msg := c.Compare(context.Background(), "toyota corolla")

	if !strings.Contains(msg, "matching the average online price") {
		t.Errorf("expected parity message:\n%s", msg)
	}
}

func TestCompareFuzzyModelName(t *testing.T) {
	// One letter dropped still resolves to the catalog listing.
	c := newTestComparator(t, &fakeSearcher{
		resp: searchResponse("around $18,000", "https://example.com"),
	})

	msg := c.Compare(context.Background(), "toyota corola")

	if !strings.Contains(msg, "$16,200") {
		t.Errorf("fuzzy name did not resolve to catalog listing:\n%s", msg)
	}
}

func TestCompareUnknownModelPassthrough(t *testing.T) {
	content := "Yugo GVs are listed between $1,200 and $2,500 depending on condition"
	c := newTestComparator(t, &fakeSearcher{
		resp: searchResponse(content, "https://example.com/yugo"),
	})

	msg := c.Compare(context.Background(), "Yugo GV")

	if !strings.Contains(msg, content) {
		t.Errorf("expected competitor content passed through verbatim:\n%s", msg)
	}
	if !strings.Contains(msg, "https://example.com/yugo") {
		t.Errorf("expected search URL in passthrough message:\n%s", msg)
	}
	if strings.Contains(msg, "Our Yugo gv is priced") {
		t.Errorf("unexpected discount computation for unknown model:\n%s", msg)
	}
}

func TestCompareNoParseablePrices(t *testing.T) {
	c := newTestComparator(t, &fakeSearcher{
		resp: searchResponse("Great deals on used Corollas, call for pricing", "https://example.com"),
	})

	msg := c.Compare(context.Background(), "toyota corolla")

	if !strings.Contains(msg, "$16,200") {
		t.Errorf("our price must still be reported:\n%s", msg)
	}
	if !strings.Contains(msg, "couldn't find comparable online prices") {
		t.Errorf("expected no-comparable-prices degradation:\n%s", msg)
	}
}

func TestCompareSearchFailure(t *testing.T) {
	c := newTestComparator(t, &fakeSearcher{err: errors.New("connection refused")})

	msg := c.Compare(context.Background(), "toyota corolla")

	if !strings.Contains(msg, "connection refused") {
		t.Errorf("expected failure reason embedded in message:\n%s", msg)
	}
}

func TestCompareNoResults(t *testing.T) {
	c := newTestComparator(t, &fakeSearcher{resp: &client.SearchResponse{}})

	msg := c.Compare(context.Background(), "toyota corolla")

	if msg != "Could not retrieve competitor price information at this time." {
		t.Errorf("unexpected no-results message: %q", msg)
	}
}
