package config

import (
	"os"
	"time"
)

type Config struct {
	// Database. An empty DatabaseURL leaves the service in a degraded
	// no-store mode instead of refusing to start.
	DatabaseURL string

	// Session
	JWTSecret  string
	SessionTTL time.Duration
	OwnerEmail string

	// Outbound mail (owner notifications)
	SMTPHost         string
	SMTPPort         string
	SMTPUser         string
	SMTPPassword     string
	MailFrom         string
	MailFromName     string
	OwnerNotifyEmail string

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),

		JWTSecret:  getEnv("JWT_SECRET", ""),
		SessionTTL: parseDuration(getEnv("SESSION_TTL", "8760h")),
		OwnerEmail: getEnv("OWNER_EMAIL", ""),

		SMTPHost:         getEnv("SMTP_HOST", ""),
		SMTPPort:         getEnv("SMTP_PORT", "587"),
		SMTPUser:         getEnv("SMTP_USER", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		MailFrom:         getEnv("MAIL_FROM", ""),
		MailFromName:     getEnv("MAIL_FROM_NAME", "CloudShift360"),
		OwnerNotifyEmail: getEnv("OWNER_NOTIFY_EMAIL", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		// One year, matching the default session lifetime.
		return 8760 * time.Hour
	}
	return d
}
