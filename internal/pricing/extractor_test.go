package pricing

import (
	"io"
	"log/slog"
	"reflect"
	"testing"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExtractPrices(t *testing.T) {
	e := NewExtractor(newTestLogger())

	tests := []struct {
		text string
		want []int
	}{
		{"Prices range from $18,500 to $21,000", []int{18500, 21000}},
		{"no prices here", []int{}},
		{"", []int{}},
		{"sold for 18000$ last week", []int{18000}},
		{"$500", []int{500}},
		{"listed at $24,000, now $22,500 or 21000$", []int{24000, 22500, 21000}},
		{"model year 2020 with 45000 miles", []int{}}, // digits without a dollar sign
	}

	for _, tt := range tests {
		got := e.ExtractPrices(tt.text)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ExtractPrices(%q) = %v; want %v", tt.text, got, tt.want)
		}
	}
}

func TestFindPriceTokens(t *testing.T) {
	e := NewExtractor(newTestLogger())

	got := e.FindPriceTokens("from $18,500 to 21000$")
	want := []string{"$18,500", "21000$"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindPriceTokens = %v; want %v", got, want)
	}
}

func TestParsePricesDropsUnparseableTokens(t *testing.T) {
	e := NewExtractor(newTestLogger())

	// Overflows int64: must be dropped, not raised.
	got := e.ParsePrices([]string{"$99999999999999999999999", "$1,200"})
	want := []int{1200}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParsePrices = %v; want %v", got, want)
	}
}
