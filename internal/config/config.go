package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort  string
	LogLevel string

	// External collaborators
	TavilyAPIKey    string
	SearchRateLimit float64 // requests per second

	// Intent routing backend: "groq", "ollama" or "" for rules-only
	IntentBackend string
	GroqAPIKey    string
	GroqRPM       float64
	OllamaBaseURL string
	OllamaModel   string

	// Lead persistence backend: "csv" (default) or "postgres"
	LeadBackend string
	LeadCSVPath string
	Database    DatabaseConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int
	MinConns int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		APIPort:  getEnv("API_PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		TavilyAPIKey:    getEnv("TAVILY_API_KEY", ""),
		SearchRateLimit: getEnvFloat("SEARCH_RATE_LIMIT", 1.0),

		IntentBackend: getEnv("INTENT_BACKEND", ""),
		GroqAPIKey:    getEnv("GROQ_API_KEY", ""),
		GroqRPM:       getEnvFloat("GROQ_RPM", 30),
		OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:   getEnv("OLLAMA_MODEL", ""),

		LeadBackend: getEnv("LEAD_BACKEND", "csv"),
		LeadCSVPath: getEnv("LEAD_CSV_PATH", "leads.csv"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			Name:     getEnv("DB_NAME", "dealership"),
			User:     getEnv("DB_USER", "dealership"),
			Password: getEnv("DB_PASSWORD", ""),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 10),
			MinConns: getEnvInt("DB_MIN_CONNS", 2),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
