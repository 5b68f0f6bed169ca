package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mediagrab/mediagrab/internal/model"
)

// Backend endpoints
const (
	pathExtractInfo = "/api/extract-info"
	pathDownload    = "/api/download"
	pathDownloads   = "/api/downloads"
)

// Options configures the backend client.
type Options struct {
	// Timeout for metadata and history requests.
	// Default: 60s
	Timeout time.Duration

	// HTTPClient overrides the underlying client, mainly for tests.
	HTTPClient *http.Client
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Timeout: 60 * time.Second,
	}
}

// StatusError is a completed backend call that reported failure. Detail is
// the backend's human-readable message when the response body carried one.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// BackendDetail returns the backend-provided failure message of err, if any.
func BackendDetail(err error) (string, bool) {
	var se *StatusError
	if errors.As(err, &se) && se.Detail != "" {
		return se.Detail, true
	}
	return "", false
}

// IsStatusError reports whether err is a completed-but-failed backend call,
// as opposed to a transport failure.
func IsStatusError(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}

// DownloadResult is a started binary download. Body streams the payload and
// must be closed by the caller; the payload is opaque and never parsed.
type DownloadResult struct {
	Filename string
	Size     int64
	Body     io.ReadCloser
}

// Client talks to the media-extraction backend.
type Client struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// NewClient creates a backend client rooted at baseURL.
func NewClient(baseURL string, opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultOptions().Timeout
	}
	client := opts.HTTPClient
	if client == nil {
		// No timeout on the client itself; download bodies are streamed and
		// can outlive any fixed limit. Metadata and history requests get a
		// per-request timeout via context.
		client = &http.Client{}
	}
	return &Client{
		baseURL: baseURL,
		client:  client,
		timeout: opts.Timeout,
	}
}

// extractRequest is the body of POST /api/extract-info.
type extractRequest struct {
	URL string `json:"url"`
}

// downloadRequest is the body of POST /api/download. FormatID is omitted when
// empty, which tells the backend to pick its default quality.
type downloadRequest struct {
	URL      string `json:"url"`
	FormatID string `json:"format_id,omitempty"`
}

type errorBody struct {
	Detail string `json:"detail"`
}

// ExtractInfo requests metadata for url without downloading anything.
func (c *Client) ExtractInfo(ctx context.Context, url string) (*model.VideoInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.postJSON(ctx, pathExtractInfo, extractRequest{URL: url})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var info model.VideoInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode extract-info response: %w", err)
	}
	return &info, nil
}

// StartDownload requests the binary payload for url. formatID may be empty,
// in which case the field is left out of the request entirely. The returned
// body is live; callers own closing it.
func (c *Client) StartDownload(ctx context.Context, url, formatID string) (*DownloadResult, error) {
	resp, err := c.postJSON(ctx, pathDownload, downloadRequest{URL: url, FormatID: formatID})
	if err != nil {
		return nil, err
	}

	if err := checkStatus(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}

	return &DownloadResult{
		Filename: FilenameFromDisposition(resp.Header.Get("Content-Disposition")),
		Size:     resp.ContentLength,
		Body:     resp.Body,
	}, nil
}

// RecentDownloads fetches the backend's download history in backend order.
func (c *Client) RecentDownloads(ctx context.Context) ([]model.DownloadRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathDownloads, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch downloads: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var records []model.DownloadRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode downloads response: %w", err)
	}
	return records, nil
}

// postJSON issues a POST with a JSON body and returns the raw response.
func (c *Client) postJSON(ctx context.Context, path string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", path, err)
	}
	return resp, nil
}

// checkStatus converts a non-2xx response into a *StatusError, pulling the
// backend's detail message out of the JSON body when one is present. The
// body is only consumed on failure.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	se := &StatusError{StatusCode: resp.StatusCode}

	var eb errorBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&eb); err == nil {
		se.Detail = eb.Detail
	}
	return se
}
