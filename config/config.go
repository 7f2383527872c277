package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	MongoURI    string
	MongoDB     string
	JWTSecret   string
	JWTExpiry   int // hours
	FrontendURL string
	// AI categorization (OpenAI)
	OpenAIAPIKey     string
	OpenAIModel      string
	AITimeoutSeconds int
}

func LoadConfig() (*Config, error) {
	// .env is for local development; ignored in production when absent
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		MongoURI:         getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:          getEnv("MONGODB_DB", "shario"),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTExpiry:        getEnvInt("JWT_EXPIRY_HOURS", 168), // 7 days
		FrontendURL:      getEnv("FRONTEND_URL", "http://localhost:5173"),
		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		AITimeoutSeconds: getEnvInt("AI_TIMEOUT_SECONDS", 10),
	}

	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Using an insecure default; do not run this in production.")
		cfg.JWTSecret = "default_secret"
	}
	if cfg.OpenAIAPIKey == "" {
		log.Println("WARNING: OPENAI_API_KEY not configured. Resource categorization will fall back to defaults.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
