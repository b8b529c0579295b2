package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	API      APIConfig
	Convex   ConvexConfig
	Mapbox   MapboxConfig
	Mail     MailConfig
	Booking  BookingConfig
	Session  SessionConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// MockMode reports whether services should fabricate data instead of calling the upstream API
func (a AppConfig) MockMode() bool {
	return a.Environment == "development"
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// Enabled reports whether a database host was configured
func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// Enabled reports whether a Redis host was configured
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

// NSQConfig contains NSQ daemon addresses
type NSQConfig struct {
	NSQDAddress     string
	LookupdAddress  string
	NotificationsCh string
}

// JWTConfig contains JWT configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// APIConfig points at the upstream REST API used outside mock mode
type APIConfig struct {
	BaseURL     string
	Timeout     time.Duration
	RefreshPath string
	SignInPath  string
}

// ConvexConfig holds the hosted database URL. The Convex backend is not called by this service.
type ConvexConfig struct {
	URL string
}

// MapboxConfig contains Mapbox geocoding configuration
type MapboxConfig struct {
	AccessToken string
	BaseURL     string
}

// MailConfig contains Mailgun SMTP configuration
type MailConfig struct {
	Domain   string
	APIKey   string
	From     string
	SMTPHost string
	SMTPPort int
}

// Enabled reports whether verification mails can be delivered
func (m MailConfig) Enabled() bool {
	return m.Domain != "" && m.APIKey != ""
}

// BookingConfig tunes the booking simulator
type BookingConfig struct {
	EstimateDelay      time.Duration
	BookDelay          time.Duration
	CancelDelay        time.Duration
	RateDelay          time.Duration
	EstimateThreshold  float64 // success when a uniform draw exceeds the threshold
	BookThreshold      float64
	CancelThreshold    float64
	RateThreshold      float64
	Currency           string
	BookingTTL         time.Duration
	ToastDuration      time.Duration
	ToastExitAnimation time.Duration
}

// SessionConfig contains session storage configuration
type SessionConfig struct {
	TTL time.Duration
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
