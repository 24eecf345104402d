package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"classpulse-backend/internal/apperrors"
	"classpulse-backend/internal/service"

	"github.com/go-chi/chi/v5"
)

// Whole multipart body cap; individual images are comfortably below this.
const maxUploadBytes = 10 << 20

type FeedbackHandler struct {
	svc *service.FeedbackService
}

func NewFeedbackHandler(svc *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{svc: svc}
}

// --- POST /feedback ---

func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}

	in := service.CreateInput{
		Name: r.FormValue("name"),
		Text: r.FormValue("feedback"),
	}

	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		data, readErr := io.ReadAll(file)
		if readErr != nil {
			log.Printf("Error reading uploaded image: %v", readErr)
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "could not read uploaded image"})
			return
		}
		in.Image = data
		in.ImageName = header.Filename
		in.ImageMime = header.Header.Get("Content-Type")
	case errors.Is(err, http.ErrMissingFile):
		// text-only submission
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid image field"})
		return
	}

	if _, err := h.svc.Create(r.Context(), in); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "All fields are required"})
		case errors.Is(err, apperrors.ErrUpload):
			log.Printf("Error uploading feedback image: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to upload image"})
		default:
			log.Printf("Error creating feedback: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to submit feedback"})
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Feedback submitted successfully!"})
}

// --- GET /feedback ---

func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		log.Printf("Error listing feedback: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch feedback"})
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// --- DELETE /feedback/{id} ---

func (h *FeedbackHandler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "feedback not found"})
			return
		}
		log.Printf("Error deleting feedback %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete feedback"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Feedback deleted successfully"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
