package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, []string{"*"}, cfg.App.CORSOrigins)
	assert.Equal(t, "classpulse", cfg.Mongo.DBName)
	assert.Equal(t, "feedback-images", cfg.MinIO.Bucket)
	assert.False(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "http://localhost:8000", cfg.OCR.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.OCR.Timeout)
}

func TestLoadRequiresMongoURI(t *testing.T) {
	t.Setenv("MONGODB_URI", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("OCR_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.App.CORSOrigins)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, 5*time.Second, cfg.OCR.Timeout)
}
