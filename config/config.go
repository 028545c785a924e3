package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds every environment-driven setting. The sweep interval, the
// overdue threshold, the reservation TTL and the reminder limit are
// independent values: deployments shorten them for testing while the
// user-facing copy promises a 24-hour return window and three reminders.
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string

	StripeSecretKey     string
	StripeWebhookSecret string
	PublicDomain        string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	SweepInterval    time.Duration
	OverdueThreshold time.Duration
	ReservationTTL   time.Duration
	MaxReminders     int

	Development bool
	LogLevel    string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "4242"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: getEnv("MONGO_DATABASE", "powerbank"),

		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		PublicDomain:        getEnv("PUBLIC_DOMAIN", "http://localhost:4242"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),

		SweepInterval:    getEnvDuration("SWEEP_INTERVAL", time.Minute),
		OverdueThreshold: getEnvDuration("OVERDUE_THRESHOLD", 24*time.Hour),
		ReservationTTL:   getEnvDuration("RESERVATION_TTL", 15*time.Minute),
		MaxReminders:     getEnvInt("MAX_REMINDERS", 3),

		Development: getEnv("APP_ENV", "production") != "production",
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
