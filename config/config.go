package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type JWTConfig struct {
	Secret     []byte
	Expiration time.Duration
}

type PaymentConfig struct {
	SecretKey string
	BaseURL   string
}

type UploadConfig struct {
	Preset       string
	MaxSizeMB    int64
	AllowedTypes []string
}

type Config struct {
	Port          string
	Env           string
	DatabaseURL   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	PublicSiteURL string
	JWT           JWTConfig
	Payment       PaymentConfig
	Upload        UploadConfig
}

// Diagnostic reports whether internal error detail may be surfaced to callers.
func (c *Config) Diagnostic() bool {
	return c.Env != "production"
}

func Load() *Config {
	maxSize, err := strconv.ParseInt(getEnv("MAX_UPLOAD_SIZE_MB", "10"), 10, 64)
	if err != nil || maxSize <= 0 {
		maxSize = 10
	}

	allowedTypes := []string{}
	for _, t := range strings.Split(getEnv("ALLOWED_FILE_TYPES", "image/jpeg,image/png,image/webp"), ",") {
		if t = strings.TrimSpace(t); t != "" {
			allowedTypes = append(allowedTypes, t)
		}
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("APP_ENV", "development"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getEnv("DB_NAME", "campus_news"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		PublicSiteURL: getEnv("PUBLIC_SITE_URL", "http://localhost:3000"),
		JWT: JWTConfig{
			Secret:     []byte(getEnv("JWT_SECRET", "your-secret-key-change-this-in-production")),
			Expiration: 24 * time.Hour,
		},
		Payment: PaymentConfig{
			SecretKey: os.Getenv("PAYSTACK_SECRET_KEY"),
			BaseURL:   getEnv("PAYSTACK_BASE_URL", "https://api.paystack.co"),
		},
		Upload: UploadConfig{
			Preset:       getEnv("UPLOAD_PRESET", "campus_news_uploads"),
			MaxSizeMB:    maxSize,
			AllowedTypes: allowedTypes,
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
