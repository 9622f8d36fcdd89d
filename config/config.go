package config

import (
	"os"
	"strconv"
)

// Config holds all application settings, loaded once from the environment
// in main and passed by value to whoever needs it.
type Config struct {
	AppName     string
	Port        string
	DatabaseDSN string

	// Shared secret for HR-only endpoints (X-HR-API-Key header).
	// Empty means HR endpoints fail closed with a server error.
	HRAPIKey string

	CORSOrigins string

	LogLevel  string
	LogFormat string

	// Rate limits for the public endpoints.
	CreateLimitPerHour  int
	TrackLimitPerMinute int

	// SMTP settings for outgoing notifications. When SMTPHost is empty the
	// notification service only logs, it never dials out.
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
}

func Load() Config {
	return Config{
		AppName:     GetEnv("APP_NAME", "UAE HR Portal API"),
		Port:        GetEnv("PORT", "3000"),
		DatabaseDSN: GetEnv("DATABASE_DSN", "root:@tcp(127.0.0.1:3306)/hr_portal?charset=utf8mb4&parseTime=True&loc=Local"),

		HRAPIKey: GetEnv("HR_API_KEY", ""),

		CORSOrigins: GetEnv("CORS_ORIGINS", "http://localhost:3000"),

		LogLevel:  GetEnv("LOG_LEVEL", "info"),
		LogFormat: GetEnv("LOG_FORMAT", "json"),

		CreateLimitPerHour:  GetEnvAsInt("CREATE_LIMIT_PER_HOUR", 10),
		TrackLimitPerMinute: GetEnvAsInt("TRACK_LIMIT_PER_MINUTE", 30),

		SMTPHost:     GetEnv("SMTP_HOST", ""),
		SMTPPort:     GetEnvAsInt("SMTP_PORT", 587),
		SMTPUser:     GetEnv("SMTP_USER", ""),
		SMTPPassword: GetEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     GetEnv("SMTP_FROM_EMAIL", "no-reply@hr-portal.ae"),
	}
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
