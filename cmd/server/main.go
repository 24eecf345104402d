package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"classpulse-backend/internal/config"
	"classpulse-backend/internal/database"
	"classpulse-backend/internal/handlers"
	"classpulse-backend/internal/notify"
	"classpulse-backend/internal/ocr"
	"classpulse-backend/internal/repository"
	"classpulse-backend/internal/service"
	"classpulse-backend/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	// Connect to MongoDB
	if err := database.Connect(cfg.Mongo.URI, cfg.Mongo.DBName); err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}

	// Blob store
	blobs, err := storage.NewMinIOStore(cfg.MinIO)
	if err != nil {
		log.Fatalf("❌ Failed to initialize blob storage: %v", err)
	}

	// Repository + indexes
	feedbackRepo := repository.NewFeedbackRepo()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := feedbackRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create feedback indexes: %v", err)
	}

	// Notifier: real email when a Resend key is configured, mock otherwise
	var notifier notify.Notifier
	if cfg.Notify.ResendAPIKey != "" && cfg.Notify.ToEmail != "" {
		notifier = notify.NewResendNotifier(cfg.Notify.ResendAPIKey, cfg.Notify.FromEmail, cfg.Notify.ToEmail)
	} else {
		notifier = notify.NewMockNotifier()
	}

	// Service + handlers
	feedbackService := service.New(feedbackRepo, blobs, notifier)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	ocrHandler := handlers.NewOCRHandler(ocr.NewClient(cfg.OCR.BaseURL, cfg.OCR.Timeout))

	// Setup chi router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"classpulse-backend"}`))
	})
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Backend is running! 🚀"))
	})

	// Feedback lifecycle
	r.Post("/feedback", feedbackHandler.SubmitFeedback)
	r.Get("/feedback", feedbackHandler.ListFeedback)
	r.Delete("/feedback/{id}", feedbackHandler.DeleteFeedback)

	// OCR proxy
	r.Post("/ocr/", ocrHandler.ExtractText)

	// Start server
	log.Printf("🚀 ClassPulse backend starting on port %s", cfg.App.Port)
	if err := http.ListenAndServe(":"+cfg.App.Port, r); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
