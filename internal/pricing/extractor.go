package pricing

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

var (
	// priceTokenRegex matches currency-like tokens: a dollar sign adjacent
	// to digits, optionally grouped with commas ($18,000 or 18000$)
	priceTokenRegex = regexp.MustCompile(`\$\d+(?:,\d+)*|\d+(?:,\d+)*\$`)

	// digitsRegex pulls the numeric part out of a matched token
	digitsRegex = regexp.MustCompile(`\d+(?:,\d+)*`)
)

// Extractor pulls integer price values out of unstructured search text.
// Extraction is best-effort: tokens that fail to parse are logged and
// dropped, never returned as errors.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor creates an Extractor with the given logger.
func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// FindPriceTokens returns the raw currency-like tokens found in text.
func (e *Extractor) FindPriceTokens(text string) []string {
	return priceTokenRegex.FindAllString(text, -1)
}

// ParsePrices converts tokens into integers, dropping any that fail.
func (e *Extractor) ParsePrices(tokens []string) []int {
	prices := make([]int, 0, len(tokens))
	for _, token := range tokens {
		digits := strings.ReplaceAll(digitsRegex.FindString(token), ",", "")
		value, err := strconv.Atoi(digits)
		if err != nil {
			e.logger.Warn("failed to parse price token", "token", token, "error", err)
			continue
		}
		prices = append(prices, value)
	}
	return prices
}

// ExtractPrices runs both stages over text. It returns an empty slice when
// no tokens match or none parse.
func (e *Extractor) ExtractPrices(text string) []int {
	return e.ParsePrices(e.FindPriceTokens(text))
}
