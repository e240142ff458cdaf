package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ProMBZ/update-car-sales-chatbot/internal/inventory"
	"github.com/ProMBZ/update-car-sales-chatbot/internal/leads"
	"github.com/ProMBZ/update-car-sales-chatbot/internal/matching"
	"github.com/ProMBZ/update-car-sales-chatbot/internal/model"
	"github.com/ProMBZ/update-car-sales-chatbot/internal/pricing"
)

const whyBuyPitch = "At our dealership, every vehicle undergoes a rigorous inspection process, " +
	"ensuring quality and a verified service history, plus exclusive perks that you won't find elsewhere. " +
	"We not only offer competitive pricing but also provide a personalized buying experience."

// Service orchestrates the assistant tools for each chat message.
type Service struct {
	catalog    *inventory.Catalog
	resolver   *matching.Resolver
	comparator *pricing.Comparator
	searcher   pricing.Searcher
	router     *Router
	sessions   *SessionStore
	leadStore  leads.Store
	logger     *slog.Logger
}

// Reply is the assistant's answer for one user message.
type Reply struct {
	SessionID    string
	Text         string
	Images       []string
	ShowLeadForm bool
}

// NewService wires the assistant together.
func NewService(
	catalog *inventory.Catalog,
	resolver *matching.Resolver,
	comparator *pricing.Comparator,
	searcher pricing.Searcher,
	router *Router,
	sessions *SessionStore,
	leadStore leads.Store,
	logger *slog.Logger,
) *Service {
	return &Service{
		catalog:    catalog,
		resolver:   resolver,
		comparator: comparator,
		searcher:   searcher,
		router:     router,
		sessions:   sessions,
		leadStore:  leadStore,
		logger:     logger,
	}
}

// HandleMessage runs the full pipeline for one user message: route,
// dispatch, record history, and evaluate the lead form trigger.
func (s *Service) HandleMessage(ctx context.Context, sessionID, message string) Reply {
	session := s.sessions.Get(sessionID)
	session.History = append(session.History, Message{Role: "user", Content: message})

	text, images := s.dispatch(ctx, message)

	session.History = append(session.History, Message{Role: "assistant", Content: text})

	if WantsContact(message) && !session.LeadSubmitted {
		session.LeadFormShown = true
	}

	return Reply{
		SessionID:    session.ID,
		Text:         text,
		Images:       images,
		ShowLeadForm: session.LeadFormShown && !session.LeadSubmitted,
	}
}

// dispatch routes and executes one command. Panics from tool execution are
// converted into an in-transcript error message so the session survives.
func (s *Service) dispatch(ctx context.Context, message string) (text string, images []string) {
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("tool dispatch panicked", "panic", rec)
			text = fmt.Sprintf("An error occurred: %v", rec)
			images = nil
		}
	}()

	cmd := s.router.Route(ctx, message)
	s.logger.Info("dispatching command", "op", cmd.Op.String(), "car", cmd.CarName)

	switch cmd.Op {
	case OpComparePrices:
		return s.comparator.Compare(ctx, cmd.CarName), nil
	case OpGetCarDetails:
		return s.GetCarDetails(ctx, cmd.CarName)
	case OpListAvailableCars:
		return s.ListAvailableCars(), nil
	case OpWhyBuyFromUs:
		return s.WhyBuyFromUs(ctx, cmd.CarName), nil
	default:
		return s.ListAvailableCars(), nil
	}
}

// GetCarDetails formats the listing for a car and fetches illustrative
// images. The image search is best-effort; an empty list is returned on
// failure.
func (s *Service) GetCarDetails(ctx context.Context, carName string) (string, []string) {
	key := strings.ToLower(carName)
	if match, ok := s.resolver.Resolve(carName); ok {
		key = match
	}

	listing, ok := s.catalog.Get(key)
	if !ok {
		return fmt.Sprintf("Sorry, the %s is not currently in our stock.", matching.Capitalize(carName)), nil
	}

	var images []string
	resp, err := s.searcher.Search(ctx, fmt.Sprintf("%s used car", carName), true)
	if err != nil {
		s.logger.Warn("image search failed", "car", carName, "error", err)
	} else if resp != nil {
		images = resp.Images
	}

	details := fmt.Sprintf(
		"**Absolutely! We have a %s available.** \n\n"+
			"**Mileage:** %s miles  \n"+
			"**Interior:** %s  \n"+
			"**Details:** %s  \n"+
			"**Price:** %s  \n"+
			"**Benefits:** %s",
		matching.Capitalize(carName),
		pricing.FormatCount(listing.Mileage),
		listing.Interior,
		listing.Details,
		pricing.FormatMoney(listing.Price),
		listing.Benefits,
	)

	return details, images
}

// ListAvailableCars enumerates the stock in catalog order.
func (s *Service) ListAvailableCars() string {
	keys := s.catalog.Keys()
	if len(keys) == 0 {
		return "Our stock is currently empty."
	}

	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = matching.Capitalize(key)
	}
	return fmt.Sprintf("We currently have the following used cars in stock: %s.", strings.Join(names, ", "))
}

// WhyBuyFromUs appends the dealership pitch to the price comparison.
func (s *Service) WhyBuyFromUs(ctx context.Context, carName string) string {
	return s.comparator.Compare(ctx, carName) + " " + whyBuyPitch
}

// SubmitLead persists a lead and hides the form for the session. The form
// is never shown again after a successful submission.
func (s *Service) SubmitLead(ctx context.Context, sessionID string, lead *model.Lead) error {
	if err := s.leadStore.Save(ctx, lead); err != nil {
		return err
	}

	session := s.sessions.Get(sessionID)
	session.LeadSubmitted = true
	session.LeadFormShown = false

	s.logger.Info("lead recorded", "session_id", session.ID)
	return nil
}
