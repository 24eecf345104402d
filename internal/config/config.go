package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Mongo  MongoConfig
	MinIO  MinIOConfig
	OCR    OCRConfig
	Notify NotifyConfig
}

type AppConfig struct {
	Port        string
	CORSOrigins []string
}

type MongoConfig struct {
	URI    string
	DBName string
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string // base URL for serving uploaded objects; derived from endpoint when empty
}

type OCRConfig struct {
	BaseURL string
	Timeout time.Duration
}

type NotifyConfig struct {
	ResendAPIKey string
	FromEmail    string
	ToEmail      string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	ocrTimeout, err := time.ParseDuration(getEnv("OCR_TIMEOUT", "30s"))
	if err != nil {
		ocrTimeout = 30 * time.Second
	}

	cfg := &Config{
		App: AppConfig{
			Port:        getEnv("PORT", "5000"),
			CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
		},
		Mongo: MongoConfig{
			URI:    getEnv("MONGODB_URI", ""),
			DBName: getEnv("DB_NAME", "classpulse"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "feedback-images"),
			UseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",
			PublicURL: getEnv("MINIO_PUBLIC_URL", ""),
		},
		OCR: OCRConfig{
			BaseURL: getEnv("OCR_BASE_URL", "http://localhost:8000"),
			Timeout: ocrTimeout,
		},
		Notify: NotifyConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			FromEmail:    getEnv("NOTIFY_FROM_EMAIL", "feedback@classpulse.app"),
			ToEmail:      getEnv("NOTIFY_TO_EMAIL", ""),
		},
	}

	if cfg.Mongo.URI == "" {
		return nil, errors.New("MONGODB_URI is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
