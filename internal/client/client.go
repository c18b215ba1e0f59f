// Package client is the request helper every client-side component goes through.
// It never returns a Go error: every failure becomes a Result with Success=false.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
)

// Client issues JSON requests against the configured API base URL
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger failures are reported to
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for baseURL. Endpoints are appended verbatim.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API base URL requests are sent to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request sends body (JSON encoded, omitted when nil) to endpoint and decodes a JSON reply.
// An empty method means GET.
func (c *Client) Request(ctx context.Context, endpoint, method string, body any) Result {
	if method == "" {
		method = http.MethodGet
	}

	data, err := c.do(ctx, endpoint, method, body)
	if err != nil {
		c.logger.Error("API request failed",
			slog.String("method", method),
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()),
		)
		return Failure(err)
	}
	return Result{Success: true, Data: data}
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, endpoint string) Result {
	return c.Request(ctx, endpoint, http.MethodGet, nil)
}

// Post performs a POST request
func (c *Client) Post(ctx context.Context, endpoint string, body any) Result {
	return c.Request(ctx, endpoint, http.MethodPost, body)
}

// File is one file of a multipart upload
type File struct {
	Field string
	Name  string
	Data  []byte
}

// Upload POSTs files and form fields to endpoint as multipart/form-data and decodes a JSON reply
func (c *Client) Upload(ctx context.Context, endpoint string, files []File, fields map[string]string) Result {
	body, contentType, err := multipartBody(files, fields)
	if err == nil {
		var data json.RawMessage
		data, err = c.send(ctx, endpoint, http.MethodPost, body, contentType)
		if err == nil {
			return Result{Success: true, Data: data}
		}
	}

	c.logger.Error("API upload failed",
		slog.String("endpoint", endpoint),
		slog.Int("files", len(files)),
		slog.String("error", err.Error()),
	)
	return Failure(err)
}

func multipartBody(files []File, fields map[string]string) (io.Reader, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range files {
		w, err := mw.CreateFormFile(f.Field, f.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := w.Write(f.Data); err != nil {
			return nil, "", err
		}
	}
	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			return nil, "", err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &buf, mw.FormDataContentType(), nil
}

func (c *Client) do(ctx context.Context, endpoint, method string, body any) (json.RawMessage, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}
	return c.send(ctx, endpoint, method, bodyReader, "application/json")
}

func (c *Client) send(ctx context.Context, endpoint, method string, body io.Reader, contentType string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var raw json.RawMessage
	if err := json.Unmarshal(respBody, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// StatusError reports a non-2xx response
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API Error: %d", e.StatusCode)
}

// Result is the uniform outcome of a request.
// On success Data holds the raw JSON reply; on failure Error holds the message.
type Result struct {
	Success bool
	Error   string
	Data    json.RawMessage
}

// Failure builds a failed Result from err
func Failure(err error) Result {
	return Result{Success: false, Error: err.Error()}
}

// Err returns the failure as an error, or nil on success
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	return errors.New(r.Error)
}

// Decode unmarshals the reply into v. A failed Result returns its error.
func (r Result) Decode(v any) error {
	if !r.Success {
		return r.Err()
	}
	if len(r.Data) == 0 {
		return nil
	}
	return json.Unmarshal(r.Data, v)
}

// failureBody is the wire shape of a failed Result
type failureBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MarshalJSON emits the reply unchanged on success and {"success":false,"error":...} on failure
func (r Result) MarshalJSON() ([]byte, error) {
	if !r.Success {
		return json.Marshal(failureBody{Success: false, Error: r.Error})
	}
	if len(r.Data) == 0 {
		return []byte("null"), nil
	}
	return r.Data, nil
}
