package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Table name overrides
	RegistrationsTable string
	AdminUsersTable    string

	// JWT (admin sessions)
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// Object storage (Google Cloud Storage)
	GCSProjectID   string
	GCSCredentials string
	PhotosBucket   string

	// Photo URL expiry bounds (seconds)
	PhotoURLDefaultExpiry int
	PhotoURLMinExpiry     int
	PhotoURLMaxExpiry     int

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "registrations_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RegistrationsTable: getEnv("REGISTRATIONS_TABLE", "registrations"),
		AdminUsersTable:    getEnv("ADMIN_USERS_TABLE", "admin_users"),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  parseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m"), 15*time.Minute),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h"), 168*time.Hour),

		GCSProjectID:   getEnv("GCS_PROJECT_ID", ""),
		GCSCredentials: getEnv("GCS_KEY", ""),
		PhotosBucket:   getEnv("GCS_PHOTOS_BUCKET", "registration-photos"),

		PhotoURLDefaultExpiry: parseInt(getEnv("PHOTO_URL_DEFAULT_EXPIRY", "600"), 600),
		PhotoURLMinExpiry:     parseInt(getEnv("PHOTO_URL_MIN_EXPIRY", "60"), 60),
		PhotoURLMaxExpiry:     parseInt(getEnv("PHOTO_URL_MAX_EXPIRY", "3600"), 3600),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
