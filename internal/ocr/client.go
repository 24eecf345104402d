// Package ocr talks to the external OCR microservice. The service is a
// black box: any transport failure, non-2xx status, or empty result is
// reported as apperrors.ErrOCRUnavailable so that callers can keep
// accepting text-only feedback while OCR is down.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"classpulse-backend/internal/apperrors"
)

// Extractor extracts text from image bytes.
type Extractor interface {
	ExtractText(ctx context.Context, filename string, image []byte, feedback string) (string, error)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// ExtractText posts the image to the OCR service's POST /ocr/ endpoint and
// returns the extracted text, sanitized to plain text with newlines.
func (c *Client) ExtractText(ctx context.Context, filename string, image []byte, feedback string) (string, error) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(image); err != nil {
		return "", err
	}
	if feedback != "" {
		if err := mw.WriteField("feedback", feedback); err != nil {
			return "", err
		}
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ocr/", body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrOCRUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", apperrors.ErrOCRUnavailable, resp.StatusCode)
	}

	var payload struct {
		ExtractedText string `json:"extracted_text"`
		Error         string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrOCRUnavailable, err)
	}
	if payload.Error != "" {
		return "", fmt.Errorf("%w: %s", apperrors.ErrOCRUnavailable, payload.Error)
	}

	text := Sanitize(payload.ExtractedText)
	if text == "" {
		return "", fmt.Errorf("%w: no readable text found", apperrors.ErrOCRUnavailable)
	}
	return text, nil
}
