package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// Firm identity (appears in notification copy)
	FirmName  string
	FirmEmail string
	FirmPhone string
	// Email gateway (HTTP API, bearer auth)
	EmailAPIURL string
	EmailAPIKey string
	EmailFrom   string
	// SMS gateway (OAuth JWT-bearer grant, then send)
	SMSAPIURL       string
	SMSClientID     string
	SMSClientSecret string
	SMSJWTAssertion string
	SMSFromNumber   string
	// Asset cache
	AssetOriginURL string
	CacheVersion   string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitFormThreshold   int
	RateLimitGlobalThreshold int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		FirmName:    getEnv("FIRM_NAME", "Meridian Legal Group"),
		FirmEmail:   getEnv("FIRM_EMAIL", "consultations@meridianlegal.com"),
		FirmPhone:   getEnv("FIRM_PHONE", "+15551230000"),
		// Email gateway
		EmailAPIURL: strings.TrimRight(getEnv("EMAIL_API_URL", "https://api.resend.com"), "/"),
		EmailAPIKey: getEnv("EMAIL_API_KEY", ""),
		EmailFrom:   getEnv("EMAIL_FROM", "Meridian Legal <no-reply@meridianlegal.com>"),
		// SMS gateway
		SMSAPIURL:       strings.TrimRight(getEnv("SMS_API_URL", "https://platform.ringcentral.com"), "/"),
		SMSClientID:     getEnv("SMS_CLIENT_ID", ""),
		SMSClientSecret: getEnv("SMS_CLIENT_SECRET", ""),
		SMSJWTAssertion: getEnv("SMS_JWT_ASSERTION", ""),
		SMSFromNumber:   getEnv("SMS_FROM_NUMBER", ""),
		// Asset cache
		AssetOriginURL: strings.TrimRight(getEnv("ASSET_ORIGIN_URL", ""), "/"),
		CacheVersion:   getEnv("CACHE_VERSION", "v3"),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),    // 1 minute window
		RateLimitFormThreshold:   getEnvInt("RATE_LIMIT_FORM_THRESHOLD", 10),    // 10 form submits per window
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100), // 100 requests per window
	}

	// Missing gateway credentials must not stop the process: the matching
	// channel fails closed at dispatch time instead.
	if cfg.EmailAPIKey == "" {
		log.Println("WARNING: EMAIL_API_KEY not configured. Email notifications will be reported as failed.")
	}
	if cfg.SMSClientID == "" || cfg.SMSClientSecret == "" || cfg.SMSJWTAssertion == "" {
		log.Println("WARNING: SMS credentials incomplete. SMS notifications will be reported as failed.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
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
