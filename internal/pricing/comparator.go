package pricing

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/ProMBZ/update-car-sales-chatbot/internal/client"
	"github.com/ProMBZ/update-car-sales-chatbot/internal/inventory"
	"github.com/ProMBZ/update-car-sales-chatbot/internal/matching"
)

// DiscountFactor is the fixed dealership discount applied to every listed
// price in comparisons. Fixed policy, not configurable.
const DiscountFactor = 0.90

const benefitsClause = "[mention dealership benefits here]"

// Searcher is the external web search collaborator supplying competitor
// price data and illustrative images.
type Searcher interface {
	Search(ctx context.Context, query string, includeImages bool) (*client.SearchResponse, error)
}

// Comparator builds competitor price comparison messages by combining the
// catalog, the fuzzy resolver, the price extractor and external search.
type Comparator struct {
	catalog   *inventory.Catalog
	resolver  *matching.Resolver
	extractor *Extractor
	searcher  Searcher
	logger    *slog.Logger
}

// NewComparator creates a Comparator.
func NewComparator(catalog *inventory.Catalog, resolver *matching.Resolver, searcher Searcher, logger *slog.Logger) *Comparator {
	return &Comparator{
		catalog:   catalog,
		resolver:  resolver,
		extractor: NewExtractor(logger),
		searcher:  searcher,
		logger:    logger,
	}
}

// DiscountedPrice applies the fixed discount to a listing price, rounding
// down. Integer arithmetic keeps the floor exact.
func DiscountedPrice(price int) int {
	return price * 9 / 10
}

// Compare produces the competitor price comparison message for a car name.
// Every outcome is a user-facing string; failures degrade, they do not
// propagate.
func (c *Comparator) Compare(ctx context.Context, carName string) string {
	query := fmt.Sprintf("%s used car price comparison", carName)

	resp, err := c.searcher.Search(ctx, query, true)
	if err != nil {
		c.logger.Error("competitor price search failed", "query", query, "error", err)
		return fmt.Sprintf("Error during competitor price search: %v", err)
	}
	if resp == nil || len(resp.Results) == 0 || strings.TrimSpace(resp.Results[0].Content) == "" {
		return "Could not retrieve competitor price information at this time."
	}

	content := resp.Results[0].Content
	searchURL := resp.Results[0].URL
	if searchURL == "" {
		searchURL = "No search URL found."
	}

	key := strings.ToLower(carName)
	if match, ok := c.resolver.Resolve(carName); ok {
		key = match
	}

	listing, ok := c.catalog.Get(key)
	if !ok {
		// No comparable listing: pass the competitor data through verbatim.
		return fmt.Sprintf(
			"Other dealers are selling the %s at these prices: %s Check it out here: [%s](%s).",
			matching.Capitalize(carName), content, searchURL, searchURL,
		)
	}

	ourPrice := DiscountedPrice(listing.Price)
	displayName := matching.Capitalize(carName)

	tokens := c.extractor.FindPriceTokens(content)
	if len(tokens) == 0 {
		return fmt.Sprintf(
			"Our %s is priced at %s and features %s. We couldn't find comparable online prices, but we offer %s.",
			displayName, FormatMoney(ourPrice), listing.Interior, benefitsClause,
		)
	}

	prices := c.extractor.ParsePrices(tokens)
	if len(prices) == 0 {
		return fmt.Sprintf(
			"Our %s is priced at %s and features %s. We found some price data, but could not parse it. We offer %s.",
			displayName, FormatMoney(ourPrice), listing.Interior, benefitsClause,
		)
	}

	average := mean(prices)
	difference := float64(ourPrice) - average

	var comparison string
	switch {
	case difference < 0:
		comparison = fmt.Sprintf(
			"Our %s is priced at %s, which is %s less than the average online price. ",
			displayName, FormatMoney(ourPrice), FormatMoney(int(math.Round(-difference))),
		)
	case difference > 0:
		comparison = fmt.Sprintf(
			"Our %s is priced at %s. While online prices average %s, we offer added value through our dealership's benefits. ",
			displayName, FormatMoney(ourPrice), FormatMoney(int(math.Round(average))),
		)
	default:
		comparison = fmt.Sprintf(
			"Our %s is competitively priced at %s, matching the average online price. ",
			displayName, FormatMoney(ourPrice),
		)
	}

	return fmt.Sprintf(
		"%sIt features %s. Check online prices here: [%s](%s). We also offer %s.",
		comparison, listing.Interior, searchURL, searchURL, benefitsClause,
	)
}

func mean(values []int) float64 {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
