package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"classpulse-backend/internal/apperrors"
	"classpulse-backend/internal/ocr"
)

// OCRHandler proxies image uploads to the external OCR service so the
// browser client talks to a single origin. OCR being down never blocks
// text-only feedback submission; it only fails this endpoint.
type OCRHandler struct {
	extractor ocr.Extractor
}

func NewOCRHandler(extractor ocr.Extractor) *OCRHandler {
	return &OCRHandler{extractor: extractor}
}

// --- POST /ocr/ ---

func (h *OCRHandler) ExtractText(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "could not read uploaded file"})
		return
	}

	text, err := h.extractor.ExtractText(r.Context(), header.Filename, data, r.FormValue("feedback"))
	if err != nil {
		if errors.Is(err, apperrors.ErrOCRUnavailable) {
			log.Printf("OCR unavailable: %v", err)
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": "text extraction is currently unavailable"})
			return
		}
		log.Printf("Error extracting text: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to extract text"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"extracted_text": text})
}
