package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"

	"shortlaunch/types"
)

const genericUploadError = "upload failed, please try again"

// Client talks to the shortlaunch upload API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new upload API client. The HTTP client carries no
// timeout: a large upload is bounded only by the transport and the server's
// execution budget.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// Upload posts the media file and metadata fields as one multipart request
// to POST /api/upload. On a non-201 response the body's "error" field
// becomes the returned error message, with a generic fallback when the body
// is not parseable.
func (c *Client) Upload(ctx context.Context, filePath string, fields map[string]string) (*types.UploadResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open video file: %w", err)
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("failed to write field %s: %w", key, err)
		}
	}

	part, err := writer.CreateFormFile("video", filepath.Base(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to create video part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to copy video: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach upload API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated {
		msg := gjson.GetBytes(respBody, "error").String()
		if msg == "" {
			msg = genericUploadError
		}
		return nil, errors.New(msg)
	}

	return &types.UploadResult{
		VideoID: gjson.GetBytes(respBody, "videoId").String(),
		URL:     gjson.GetBytes(respBody, "url").String(),
	}, nil
}
