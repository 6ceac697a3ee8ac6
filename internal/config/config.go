package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Firebase  FirebaseConfig
	Cache     CacheConfig
	Pricing   PricingConfig
	Storage   StorageConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	BodyLimit        string
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// FirebaseConfig holds Admin SDK credentials and the collections read by the
// reconciler. Credentials are tried in order: inline JSON, file path, then the
// project/email/key triple.
type FirebaseConfig struct {
	ServiceAccountJSON string
	ServiceAccountPath string
	ProjectID          string
	ClientEmail        string
	PrivateKey         string
	UsersCollection    string
	OrdersCollection   string
	StaffCollection    string
	// RunRetention bounds the sync run history kept in sync_runs; zero keeps everything.
	RunRetention time.Duration
}

type CacheConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPoolSize int
	KeyPrefix     string
	CityTTL       time.Duration
	CatalogTTL    time.Duration
}

type PricingConfig struct {
	ScheduleFile string
	StartQty     int
	StepQty      int
	StepPct      float64
	MaxPct       float64
}

type StorageConfig struct {
	UploadsDir     string
	PublicPrefix   string
	GCSBucket      string
	MaxUploadBytes int64
}

type RateLimitConfig struct {
	RequestsPerSecond int
	Burst             int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "5000"),
			Host:         getEnv("SERVER_HOST", ""),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 2*time.Minute),
			BodyLimit:    getEnv("SERVER_BODY_LIMIT", "25M"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "crm_user"),
			Password:        getEnv("DB_PASSWORD", "crm_password"),
			Name:            getEnv("DB_NAME", "crm_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Firebase: FirebaseConfig{
			ServiceAccountJSON: getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),
			ServiceAccountPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", ""),
			ProjectID:          getEnv("FIREBASE_PROJECT_ID", ""),
			ClientEmail:        getEnv("FIREBASE_CLIENT_EMAIL", ""),
			PrivateKey:         unescapeNewlines(getEnv("FIREBASE_PRIVATE_KEY", "")),
			UsersCollection:    getEnv("FIREBASE_USERS_COLLECTION", "users_prod"),
			OrdersCollection:   getEnv("FIREBASE_ORDERS_COLLECTION", "orders_prod"),
			StaffCollection:    getEnv("FIREBASE_STAFF_COLLECTION", "staff"),
			RunRetention:       getDurationEnv("SYNC_RUN_RETENTION", 30*24*time.Hour),
		},
		Cache: CacheConfig{
			RedisAddr:     getEnv("REDIS_ADDR", ""),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getIntEnv("REDIS_DB", 0),
			RedisPoolSize: getIntEnv("REDIS_POOL_SIZE", 10),
			KeyPrefix:     getEnv("CACHE_KEY_PREFIX", "crm:"),
			CityTTL:       getDurationEnv("CITY_CACHE_TTL", 10*time.Minute),
			CatalogTTL:    getDurationEnv("CATALOG_CACHE_TTL", 5*time.Minute),
		},
		Pricing: PricingConfig{
			ScheduleFile: getEnv("PRICING_SCHEDULE_FILE", ""),
			StartQty:     getIntEnv("PRICING_START_QTY", 0),
			StepQty:      getIntEnv("PRICING_STEP_QTY", 0),
			StepPct:      getFloatEnv("PRICING_STEP_PCT", 0),
			MaxPct:       getFloatEnv("PRICING_MAX_PCT", 0),
		},
		Storage: StorageConfig{
			UploadsDir:     getEnv("UPLOADS_DIR", "uploads"),
			PublicPrefix:   getEnv("UPLOADS_PUBLIC_PREFIX", "/uploads"),
			GCSBucket:      getEnv("GCS_BUCKET", ""),
			MaxUploadBytes: int64(getIntEnv("MAX_UPLOAD_BYTES", 15*1024*1024)),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			Burst:             getIntEnv("RATE_LIMIT_BURST", 40),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Address is the listen address for the HTTP server.
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// HasCredentials reports whether any Admin SDK credential source is set.
func (c *FirebaseConfig) HasCredentials() bool {
	if c.ServiceAccountJSON != "" || c.ServiceAccountPath != "" {
		return true
	}
	return c.ProjectID != "" && c.ClientEmail != "" && c.PrivateKey != ""
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// unescapeNewlines turns literal "\n" sequences into newlines, the usual shape
// of a PEM key pasted into a single-line env var.
func unescapeNewlines(value string) string {
	if strings.Contains(value, `\n`) {
		return strings.ReplaceAll(value, `\n`, "\n")
	}
	return value
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}
