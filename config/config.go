package config

import (
	"log"
	"os"

	"github.com/skyyuga/tyremart-api/authz"
)

// Config is the env-derived runtime configuration. Handlers receive it
// by injection instead of reading the environment at call time, so
// tests can run against fake identities and keys.
type Config struct {
	Port        string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	JWTSecret   string
	AdminAPIKey string
	AdminEmails authz.AllowList

	// StrictStatusFlow enforces the order fulfilment transition table.
	// Off by default: the stock behavior is an unconditional overwrite.
	StrictStatusFlow bool

	UploadDir     string
	PublicBaseURL string
}

func Load() *Config {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      os.Getenv("DB_HOST"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),

		JWTSecret:   os.Getenv("JWT_SECRET"),
		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),
		AdminEmails: authz.Parse(os.Getenv("ADMIN_EMAILS")),

		StrictStatusFlow: getEnv("STRICT_STATUS_FLOW", "false") == "true",

		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		PublicBaseURL: os.Getenv("PUBLIC_BASE_URL"),
	}

	if cfg.JWTSecret == "" {
		log.Println("⚠️ JWT_SECRET is not set; issued tokens will not verify")
	}
	if len(cfg.AdminEmails) == 0 {
		log.Println("⚠️ ADMIN_EMAILS is not set; admin reads and status updates will be refused")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
