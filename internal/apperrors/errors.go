// Package apperrors defines the error taxonomy shared by the service layer
// and the HTTP handlers. Lower layers wrap one of these sentinels so that
// handlers can map failures to status codes with errors.Is.
package apperrors

import "errors"

var (
	// ErrValidation — a required field is missing or empty.
	ErrValidation = errors.New("validation failed")

	// ErrUpload — the blob store write failed; no record was created.
	ErrUpload = errors.New("image upload failed")

	// ErrPersistence — the document store read or write failed.
	ErrPersistence = errors.New("document store failure")

	// ErrNotFound — the referenced feedback record does not exist.
	ErrNotFound = errors.New("feedback not found")

	// ErrOCRUnavailable — the OCR service failed or returned no text.
	ErrOCRUnavailable = errors.New("ocr service unavailable")
)
