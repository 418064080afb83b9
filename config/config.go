package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Host        string
	Domain      string
	Environment string
	// Firebase Realtime Database
	FirebaseCredentials     string // base64-encoded service account JSON
	FirebaseCredentialsFile string // fallback when no inline credentials are set
	FirebaseDatabaseURL     string
	// SMTP Configuration (Gmail)
	SMTPHost     string
	SMTPPort     string
	EmailUser    string
	EmailPass    string
	QuoteEmailTo string // operator address notified about new quotes
	// Gemini
	GeminiAPIKey string
	// Static site
	StaticDir string
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:                    getEnv("PORT", "8080"),
		Host:                    getEnv("HOST", "0.0.0.0"),
		Domain:                  getEnv("DOMAIN", "sparkshieldenterprises.xyz"),
		Environment:             getEnv("APP_ENV", "production"),
		FirebaseCredentials:     getEnv("FIREBASE_CREDENTIALS", ""),
		FirebaseCredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", "./serviceAccountKey.json"),
		FirebaseDatabaseURL:     getEnv("FIREBASE_DATABASE_URL", "https://sparkshield-c499d-default-rtdb.firebaseio.com"),
		SMTPHost:                getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:                getEnv("SMTP_PORT", "587"),
		EmailUser:               getEnv("EMAIL_USER", ""),
		EmailPass:               getEnv("EMAIL_PASS", ""),
		GeminiAPIKey:            getEnv("GEMINI_API_KEY", ""),
		StaticDir:               getEnv("STATIC_DIR", "./public"),
	}

	// Quote notifications go back to the operator mailbox unless overridden
	cfg.QuoteEmailTo = getEnv("QUOTE_EMAIL_TO", cfg.EmailUser)

	if cfg.GeminiAPIKey == "" {
		log.Println("WARNING: GEMINI_API_KEY is missing. Chat endpoint will be unavailable.")
	}

	return cfg, nil
}

// IsDevelopment reports whether the process runs with relaxed error-detail
// exposure and dev CORS origins.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
