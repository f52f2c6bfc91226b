package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/portfolio/backend/internal/logging"
)

// Config is the process configuration, read once at startup.
type Config struct {
	Port               string
	DatabaseURL        string
	JWTSecret          string
	SMTPHost           string
	SMTPPort           int
	SMTPUser           string
	SMTPPass           string
	ContactTo          string // owner notification recipient, defaults to SMTPUser
	OwnerName          string
	CORSAllowedOrigins []string
	RegistrationOpen   bool
}

// Load reads configuration from the environment (and .env when present).
// Missing required values terminate the process: the server must not come
// up half-configured.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		SMTPHost:           getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:           getEnvInt("SMTP_PORT", 465),
		SMTPUser:           getEnv("EMAIL_USER", ""),
		SMTPPass:           getEnv("EMAIL_PASS", ""),
		OwnerName:          getEnv("OWNER_NAME", "the site owner"),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		RegistrationOpen:   getEnv("REGISTRATION_OPEN", "") == "true",
	}
	cfg.ContactTo = getEnv("CONTACT_TO", cfg.SMTPUser)

	if cfg.DatabaseURL == "" {
		logging.Fatal("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		logging.Fatal("JWT_SECRET is required")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		logging.Fatal("invalid integer value", "key", key, "value", value)
	}
	return n
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
