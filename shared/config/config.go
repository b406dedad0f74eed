package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret            string
	JWTExpireHours       string
	JWTRefreshExpireDays string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       string

	// Email Configuration
	EmailFrom     string
	EmailFromName string
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPUseTLS    bool

	// Blocked consumer email providers (comma separated domains)
	BlockedEmailProviders []string

	// Rate Limiting
	RateLimitMaxRequests          string
	RateLimitTimeWindowSeconds    string
	RateLimitBlockDurationMinutes string

	// Login Rate Limiting
	LoginRateLimitMaxAttempts   string
	LoginRateLimitWindowSeconds string
	LoginRateLimitBlockMinutes  string

	// Register Rate Limiting
	RegisterRateLimitMaxAttempts string
	RegisterRateLimitWindowHours string
	RegisterRateLimitBlockHours  string

	// Frontend URL
	FrontendURL string

	// Service URLs (Dynamic based on environment)
	ReviewServiceURL       string
	NotificationServiceURL string

	// MinIO Configuration
	MinIOServerURL    string
	MinIORootUser     string
	MinIORootPassword string
	MinIOUseSSL       bool
	MinIOBucketName   string

	// Supplier logo upload
	LogoMaxFileSizeMB string
	LogoAllowedTypes  string
}

var cfg *Config

// defaultBlockedProviders is the consumer webmail denylist used when
// BLOCKED_EMAIL_PROVIDERS is not set.
const defaultBlockedProviders = "gmail.com,googlemail.com,yahoo.com,yahoo.co.uk,hotmail.com,hotmail.co.uk,outlook.com,live.com,msn.com,aol.com,icloud.com,me.com,mail.com,gmx.com,gmx.de,yandex.com,yandex.ru,protonmail.com,proton.me,zoho.com,mail.ru"

// LoadConfig loads configuration from environment variables
func LoadConfig() {
	envPaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	envLoaded := false
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Printf("✅ Environment loaded from: %s", path)
			envLoaded = true
			break
		}
	}

	if !envLoaded {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg = &Config{
		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "vendorcheck"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// JWT
		JWTSecret:            getEnv("JWT_SECRET", "your-secret-key-change-this"),
		JWTExpireHours:       getEnv("JWT_EXPIRE_HOURS", "3"),
		JWTRefreshExpireDays: getEnv("JWT_REFRESH_EXPIRE_DAYS", "1"),

		// Redis
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnv("REDIS_DB", "0"),

		// Email Configuration
		EmailFrom:     getEnv("EMAIL_FROM", "noreply@vendorcheck.io"),
		EmailFromName: getEnv("EMAIL_FROM_NAME", "VendorCheck"),
		SMTPHost:      getEnv("SMTP_HOST", "smtp.example.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPUseTLS:    getEnvAsBool("SMTP_USE_TLS", false),

		// Blocked email providers
		BlockedEmailProviders: splitCSV(getEnv("BLOCKED_EMAIL_PROVIDERS", defaultBlockedProviders)),

		// Rate Limiting - General
		RateLimitMaxRequests:          getEnv("RATE_LIMIT_MAX_REQUESTS", "100"),
		RateLimitTimeWindowSeconds:    getEnv("RATE_LIMIT_TIME_WINDOW_SECONDS", "60"),
		RateLimitBlockDurationMinutes: getEnv("RATE_LIMIT_BLOCK_DURATION_MINUTES", "15"),

		// Login Rate Limiting
		LoginRateLimitMaxAttempts:   getEnv("LOGIN_RATE_LIMIT_MAX_ATTEMPTS", "5"),
		LoginRateLimitWindowSeconds: getEnv("LOGIN_RATE_LIMIT_WINDOW_SECONDS", "300"),
		LoginRateLimitBlockMinutes:  getEnv("LOGIN_RATE_LIMIT_BLOCK_MINUTES", "30"),

		// Register Rate Limiting
		RegisterRateLimitMaxAttempts: getEnv("REGISTER_RATE_LIMIT_MAX_ATTEMPTS", "3"),
		RegisterRateLimitWindowHours: getEnv("REGISTER_RATE_LIMIT_WINDOW_HOURS", "24"),
		RegisterRateLimitBlockHours:  getEnv("REGISTER_RATE_LIMIT_BLOCK_HOURS", "48"),

		// Frontend URL
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		// Service URLs - Environment-based configuration
		ReviewServiceURL:       getEnv("REVIEW_SERVICE_URL", "http://localhost:8001"),
		NotificationServiceURL: getEnv("NOTIFICATION_SERVICE_URL", "http://localhost:8004"),

		// MinIO Configuration
		MinIOServerURL:    getEnv("MINIO_SERVER_URL", "http://localhost:9000"),
		MinIORootUser:     getEnv("MINIO_ROOT_USER", "minioadmin"),
		MinIORootPassword: getEnv("MINIO_ROOT_PASSWORD", "minioadmin"),
		MinIOUseSSL:       getEnvAsBool("MINIO_USE_SSL", false),
		MinIOBucketName:   getEnv("MINIO_BUCKET_NAME", "vendorcheck-logos"),

		// Supplier logo upload
		LogoMaxFileSizeMB: getEnv("LOGO_MAX_FILE_SIZE_MB", "5"),
		LogoAllowedTypes:  getEnv("LOGO_ALLOWED_TYPES", ".jpg,.jpeg,.png,.svg,.webp"),
	}

	log.Println("✅ Configuration loaded successfully")
}

// GetConfig returns the current configuration
func GetConfig() *Config {
	if cfg == nil {
		LoadConfig()
	}
	return cfg
}

// GetField returns a configuration field by name
func (c *Config) GetField(key string) string {
	switch key {
	// Database
	case "DBHost":
		return c.DBHost
	case "DBPort":
		return c.DBPort
	case "DBUser":
		return c.DBUser
	case "DBPassword":
		return c.DBPassword
	case "DBName":
		return c.DBName
	case "DBSSLMode":
		return c.DBSSLMode

	// JWT
	case "JWTSecret":
		return c.JWTSecret
	case "JWTExpireHours":
		return c.JWTExpireHours
	case "JWTRefreshExpireDays":
		return c.JWTRefreshExpireDays

	// Redis
	case "RedisHost":
		return c.RedisHost
	case "RedisPort":
		return c.RedisPort
	case "RedisDB":
		return c.RedisDB

	// Rate Limiting
	case "RateLimitMaxRequests":
		return c.RateLimitMaxRequests
	case "RateLimitTimeWindowSeconds":
		return c.RateLimitTimeWindowSeconds
	case "RateLimitBlockDurationMinutes":
		return c.RateLimitBlockDurationMinutes
	case "LoginRateLimitMaxAttempts":
		return c.LoginRateLimitMaxAttempts
	case "LoginRateLimitWindowSeconds":
		return c.LoginRateLimitWindowSeconds
	case "LoginRateLimitBlockMinutes":
		return c.LoginRateLimitBlockMinutes
	case "RegisterRateLimitMaxAttempts":
		return c.RegisterRateLimitMaxAttempts
	case "RegisterRateLimitWindowHours":
		return c.RegisterRateLimitWindowHours
	case "RegisterRateLimitBlockHours":
		return c.RegisterRateLimitBlockHours

	// Service URLs
	case "ReviewServiceURL":
		return c.ReviewServiceURL
	case "NotificationServiceURL":
		return c.NotificationServiceURL

	// MinIO
	case "MinIOServerURL":
		return c.MinIOServerURL
	case "MinIOBucketName":
		return c.MinIOBucketName

	// Logo upload
	case "LogoMaxFileSizeMB":
		return c.LogoMaxFileSizeMB
	case "LogoAllowedTypes":
		return c.LogoAllowedTypes

	default:
		return ""
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// splitCSV splits a comma separated env value into trimmed lowercase entries
func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	entries := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			entries = append(entries, part)
		}
	}
	return entries
}
