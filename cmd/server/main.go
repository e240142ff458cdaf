package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ProMBZ/update-car-sales-chatbot/internal/chat"
	"github.com/ProMBZ/update-car-sales-chatbot/internal/client"
	"github.com/ProMBZ/update-car-sales-chatbot/internal/config"
	"github.com/ProMBZ/update-car-sales-chatbot/internal/database"
	"github.com/ProMBZ/update-car-sales-chatbot/internal/handler"
	"github.com/ProMBZ/update-car-sales-chatbot/internal/inventory"
	"github.com/ProMBZ/update-car-sales-chatbot/internal/leads"
	"github.com/ProMBZ/update-car-sales-chatbot/internal/matching"
	"github.com/ProMBZ/update-car-sales-chatbot/internal/pricing"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg := config.Load()

	// Structured logger
	level := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	slog.Info("starting car sales chatbot")

	if cfg.TavilyAPIKey == "" {
		slog.Error("TAVILY_API_KEY is required")
		os.Exit(1)
	}

	// External search collaborator
	searcher := client.NewTavilyClient(cfg.TavilyAPIKey, cfg.SearchRateLimit, logger)
	defer searcher.Close()

	// Optional LLM intent classifier
	var classifier client.IntentClassifier
	switch cfg.IntentBackend {
	case "groq":
		if cfg.GroqAPIKey == "" {
			slog.Error("GROQ_API_KEY is required when INTENT_BACKEND=groq")
			os.Exit(1)
		}
		groq := client.NewGroqClient(cfg.GroqAPIKey, cfg.GroqRPM, logger)
		defer groq.Close()
		classifier = groq
	case "ollama":
		classifier = client.NewOllamaClient(cfg.OllamaBaseURL, cfg.OllamaModel, logger)
	case "":
		slog.Info("no intent backend configured, using keyword rules only")
	default:
		slog.Error("unknown intent backend", "backend", cfg.IntentBackend)
		os.Exit(1)
	}

	// Lead store
	var leadStore leads.Store
	var leadDB *pgxpool.Pool
	switch cfg.LeadBackend {
	case "postgres":
		slog.Info("connecting to lead database", "host", cfg.Database.Host, "database", cfg.Database.Name)
		pool, err := database.Connect(context.Background(), database.ConnectionConfig{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			Database: cfg.Database.Name,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			SSLMode:  cfg.Database.SSLMode,
			MaxConns: cfg.Database.MaxConns,
			MinConns: cfg.Database.MinConns,
		})
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		if err := database.RunMigrations(context.Background(), pool); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		leadDB = pool
		leadStore = leads.NewPostgresStore(pool)
	case "csv":
		store, err := leads.NewCSVStore(cfg.LeadCSVPath)
		if err != nil {
			slog.Error("failed to open lead CSV store", "path", cfg.LeadCSVPath, "error", err)
			os.Exit(1)
		}
		leadStore = store
	default:
		slog.Error("unknown lead backend", "backend", cfg.LeadBackend)
		os.Exit(1)
	}
	defer leadStore.Close()

	// Core assembly
	catalog := inventory.Load()
	resolver := matching.NewResolver(catalog.Keys())
	comparator := pricing.NewComparator(catalog, resolver, searcher, logger)
	router := chat.NewRouter(resolver, classifier, logger)
	sessions := chat.NewSessionStore()
	chatSvc := chat.NewService(catalog, resolver, comparator, searcher, router, sessions, leadStore, logger)

	// Handlers
	healthHandler := handler.NewHealthHandler(leadDB)
	chatHandler := handler.NewChatHandler(chatSvc)
	leadHandler := handler.NewLeadHandler(chatSvc)
	inventoryHandler := handler.NewInventoryHandler(catalog, chatSvc)

	// Router
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS middleware
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	// Routes
	r.Get("/health", healthHandler.Check)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/chat", chatHandler.Message)
		r.Post("/leads", leadHandler.Submit)
		r.Get("/inventory", inventoryHandler.List)
	})

	// Server
	srv := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		slog.Info("server started", "port", cfg.APIPort, "stock_size", catalog.Len())
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("server stopped")
}
