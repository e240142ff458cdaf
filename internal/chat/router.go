package chat

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"github.com/ProMBZ/update-car-sales-chatbot/internal/client"
	"github.com/ProMBZ/update-car-sales-chatbot/internal/matching"
)

// Router turns a raw user message into a Command. Deterministic keyword
// rules run first; the LLM classifier is consulted only when the rules are
// inconclusive and a classifier is configured.
type Router struct {
	resolver   *matching.Resolver
	classifier client.IntentClassifier // optional, may be nil
	logger     *slog.Logger
}

// NewRouter creates a router. classifier may be nil for rules-only routing.
func NewRouter(resolver *matching.Resolver, classifier client.IntentClassifier, logger *slog.Logger) *Router {
	return &Router{
		resolver:   resolver,
		classifier: classifier,
		logger:     logger,
	}
}

var (
	listPhrases    = []string{"list", "in stock", "inventory", "what cars", "which cars", "available"}
	comparePhrases = []string{"price", "cost", "how much", "cheaper", "compare", "deal"}
	detailPhrases  = []string{"detail", "tell me about", "mileage", "interior", "feature", "image", "picture", "show me"}
)

// Route classifies the message into a Command.
func (r *Router) Route(ctx context.Context, message string) Command {
	m := strings.ToLower(message)
	car := r.findCarName(m)

	switch {
	case strings.Contains(m, "why"):
		return r.withCar(OpWhyBuyFromUs, car, m)
	case containsAny(m, listPhrases):
		return Command{Op: OpListAvailableCars}
	case containsAny(m, comparePhrases):
		return r.withCar(OpComparePrices, car, m)
	case containsAny(m, detailPhrases):
		return r.withCar(OpGetCarDetails, car, m)
	}

	// Rules were inconclusive: escalate to the LLM when available.
	if r.classifier != nil {
		intent, err := r.classifier.ClassifyIntent(ctx, message, toolNames)
		if err != nil {
			r.logger.Warn("intent classification failed, using fallback", "error", err)
		} else {
			if intent.CarName != "" {
				car = intent.CarName
			}
			for op, name := range toolNames {
				if name == intent.Tool {
					return r.withCar(Op(op), car, m)
				}
			}
		}
	}

	if car != "" {
		return Command{Op: OpGetCarDetails, CarName: car}
	}
	return Command{Op: OpListAvailableCars}
}

// withCar fills in the car argument for ops that need one, falling back to
// the stopword-stripped message, then to listing the stock.
func (r *Router) withCar(op Op, car, lowerMessage string) Command {
	if op == OpListAvailableCars {
		return Command{Op: op}
	}
	if car == "" {
		car = stripStopwords(lowerMessage)
	}
	if car == "" {
		return Command{Op: OpListAvailableCars}
	}
	return Command{Op: op, CarName: car}
}

// findCarName scans word n-grams of the message for the best catalog match
// and returns the matched catalog key, or "" when nothing clears the
// similarity threshold.
func (r *Router) findCarName(lowerMessage string) string {
	words := splitWords(lowerMessage)

	best := ""
	bestScore := 0.0
	for n := 1; n <= 3; n++ {
		for i := 0; i+n <= len(words); i++ {
			window := strings.Join(words[i:i+n], " ")
			key, score := r.resolver.BestMatch(window)
			if score > bestScore {
				best = key
				bestScore = score
			}
		}
	}

	if bestScore < matching.MatchThreshold {
		return ""
	}
	return best
}

// stopwords are question and intent words removed when falling back to the
// remainder of the message as a car name.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "an": {}, "and": {}, "any": {}, "are": {}, "buy": {},
	"can": {}, "car": {}, "cars": {}, "cheaper": {}, "compare": {}, "cost": {},
	"deal": {}, "detail": {}, "details": {}, "do": {}, "for": {}, "from": {},
	"have": {}, "how": {}, "i": {}, "in": {}, "is": {}, "it": {}, "me": {},
	"much": {}, "my": {}, "of": {}, "on": {}, "price": {}, "prices": {},
	"should": {}, "show": {}, "tell": {}, "the": {}, "to": {}, "us": {},
	"used": {}, "what": {}, "whats": {}, "why": {}, "would": {}, "you": {},
	"your": {},
}

func stripStopwords(lowerMessage string) string {
	var kept []string
	for _, w := range splitWords(lowerMessage) {
		if _, skip := stopwords[w]; skip {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// splitWords breaks a message into words, keeping hyphens so names like
// "mercedes-benz c-class" survive intact.
func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
