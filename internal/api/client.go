package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultHTTPTimeout = 30 * time.Second

// Client is a simple HTTP client for the feedback API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultHTTPTimeout},
	}
}

// Ping checks whether the API server is reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return checkStatus(resp)
}

func (c *Client) List(ctx context.Context) ([]FeedbackResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/feedback", nil)
	if err != nil {
		return nil, err
	}
	var out []FeedbackResponse
	if err := c.doJSON(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Submit posts a new feedback record. image may be nil for a text-only
// submission; imageName is the original filename reported to the server.
func (c *Client) Submit(ctx context.Context, name, feedback string, imageName string, image []byte) (MessageResponse, error) {
	var resp MessageResponse

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if name != "" {
		if err := mw.WriteField("name", name); err != nil {
			return resp, err
		}
	}
	if err := mw.WriteField("feedback", feedback); err != nil {
		return resp, err
	}
	if len(image) > 0 {
		part, err := mw.CreateFormFile("image", imageName)
		if err != nil {
			return resp, err
		}
		if _, err := part.Write(image); err != nil {
			return resp, err
		}
	}
	if err := mw.Close(); err != nil {
		return resp, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/feedback", body)
	if err != nil {
		return resp, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	err = c.doJSON(req, &resp)
	return resp, err
}

func (c *Client) Delete(ctx context.Context, id string) (MessageResponse, error) {
	var resp MessageResponse
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/feedback/"+url.PathEscape(id), nil)
	if err != nil {
		return resp, err
	}
	err = c.doJSON(req, &resp)
	return resp, err
}

// ExtractText runs an image through the OCR endpoint.
func (c *Client) ExtractText(ctx context.Context, filename string, image []byte, feedback string) (OCRResponse, error) {
	var resp OCRResponse

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return resp, err
	}
	if _, err := part.Write(image); err != nil {
		return resp, err
	}
	if feedback != "" {
		if err := mw.WriteField("feedback", feedback); err != nil {
			return resp, err
		}
	}
	if err := mw.Close(); err != nil {
		return resp, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ocr/", body)
	if err != nil {
		return resp, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	err = c.doJSON(req, &resp)
	return resp, err
}

func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	apiErr := &APIError{Status: resp.StatusCode}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		apiErr.Message = payload.Error
	}
	return apiErr
}
