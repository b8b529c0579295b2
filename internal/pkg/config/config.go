package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/troski/troski/internal/pkg/models"
)

// InitConfig loads the env file for local and development runs, then reads the environment
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "development")
	if env == "local" || env == "development" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "troski")
	configs.App.Environment = GetEnv("APP_ENV", "development")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 10)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "troski")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 2)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NSQ config
	configs.NSQ.NSQDAddress = GetEnv("NSQD_ADDRESS", "")
	configs.NSQ.LookupdAddress = GetEnv("NSQ_LOOKUPD_ADDRESS", "")
	configs.NSQ.NotificationsCh = GetEnv("NSQ_NOTIFICATIONS_CHANNEL", "notifications")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "troski")

	// Upstream API config
	configs.API.BaseURL = GetEnv("NEXT_PUBLIC_API_URL", "http://localhost:8000/api")
	configs.API.Timeout = GetEnvAsDuration("API_TIMEOUT", 30*time.Second)
	configs.API.RefreshPath = GetEnv("API_REFRESH_PATH", "/auth/refresh-token")
	configs.API.SignInPath = GetEnv("SIGNIN_PATH", "/signin")

	configs.Convex.URL = GetEnv("NEXT_PUBLIC_CONVEX_URL", "")

	// Mapbox config
	configs.Mapbox.AccessToken = GetEnv("NEXT_PUBLIC_MAPBOX_ACCESS_TOKEN", "")
	configs.Mapbox.BaseURL = GetEnv("MAPBOX_BASE_URL", "https://api.mapbox.com")

	// Mail config
	configs.Mail.Domain = GetEnv("MAILGUN_DOMAIN", "")
	configs.Mail.APIKey = GetEnv("MAILGUN_API_KEY", "")
	configs.Mail.From = GetEnv("EMAIL_FROM", "Troski <no-reply@troski.app>")
	configs.Mail.SMTPHost = GetEnv("MAILGUN_SMTP_HOST", "smtp.mailgun.org")
	configs.Mail.SMTPPort = GetEnvAsInt("MAILGUN_SMTP_PORT", 587)

	// Booking simulator config
	configs.Booking.EstimateDelay = GetEnvAsDuration("BOOKING_ESTIMATE_DELAY", 1500*time.Millisecond)
	configs.Booking.BookDelay = GetEnvAsDuration("BOOKING_BOOK_DELAY", 2000*time.Millisecond)
	configs.Booking.CancelDelay = GetEnvAsDuration("BOOKING_CANCEL_DELAY", 1000*time.Millisecond)
	configs.Booking.RateDelay = GetEnvAsDuration("BOOKING_RATE_DELAY", 1000*time.Millisecond)
	configs.Booking.EstimateThreshold = GetEnvAsFloat("BOOKING_ESTIMATE_THRESHOLD", 0.2)
	configs.Booking.BookThreshold = GetEnvAsFloat("BOOKING_BOOK_THRESHOLD", 0.15)
	configs.Booking.CancelThreshold = GetEnvAsFloat("BOOKING_CANCEL_THRESHOLD", 0.1)
	configs.Booking.RateThreshold = GetEnvAsFloat("BOOKING_RATE_THRESHOLD", 0.05)
	configs.Booking.Currency = GetEnv("BOOKING_CURRENCY", "GHS")
	configs.Booking.BookingTTL = GetEnvAsDuration("BOOKING_TTL", 24*time.Hour)
	configs.Booking.ToastDuration = GetEnvAsDuration("TOAST_DURATION", 5000*time.Millisecond)
	configs.Booking.ToastExitAnimation = GetEnvAsDuration("TOAST_EXIT_ANIMATION", 300*time.Millisecond)

	// Session config
	configs.Session.TTL = GetEnvAsDuration("SESSION_TTL", 7*24*time.Hour)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")
	configs.Logger.Type = GetEnv("LOG_TYPE", "console")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsDuration accepts Go duration strings ("1500ms") or a bare number of milliseconds
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	if ms, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(ms) * time.Millisecond
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
