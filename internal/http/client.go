// Package http wraps the standard HTTP client with the InvoiceIQ request
// conventions: base URL joining, authentication headers, JSON encoding, and
// error classification.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AstrowareConception/invoiceiq-sdk-go/internal/constants"
	"github.com/AstrowareConception/invoiceiq-sdk-go/pkg/invoiceiq"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client is the low-level HTTP client for the InvoiceIQ API. It is safe for
// concurrent use; the wrapped *http.Client may be shared across clients.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	apiKey      string
	bearerToken string
	userAgent   string
	logger      Logger
	debug       bool
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey attaches the X-API-KEY header to every request.
func WithAPIKey(apiKey string) Option {
	return func(c *Client) {
		c.apiKey = apiKey
	}
}

// WithBearerToken attaches an Authorization: Bearer header to every request.
func WithBearerToken(token string) Option {
	return func(c *Client) {
		c.bearerToken = token
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the timeout on the SDK-owned *http.Client. It has no
// effect after WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying *http.Client entirely, e.g. with a
// retrying or instrumented transport prepared by the caller.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets the logger used for debug logging.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables HTTP request/response logging through the logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// NewClient creates a new HTTP client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	client := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: constants.DefaultHTTPTimeout,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Request represents an API request.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	// Body is JSON-marshaled with Content-Type application/json.
	Body interface{}
	// RawBody is sent verbatim with ContentType; used for multipart
	// submissions. It takes precedence over Body.
	RawBody     []byte
	ContentType string
	Headers     map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// IsJSON reports whether the response declared a JSON content type.
func (r *Response) IsJSON() bool {
	return strings.Contains(r.Headers.Get("Content-Type"), "application/json")
}

// Do executes a request. Responses with status >= 400 are returned alongside
// an *invoiceiq.APIError carrying the extracted message and the raw body.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	bodyReader, contentType, err := c.encodeBody(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	c.setHeaders(httpReq, contentType, req.Headers)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"size":   len(body),
		})
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		return resp, parseAPIError(resp)
	}

	return resp, nil
}

// encodeBody prepares the request body reader and its content type.
func (c *Client) encodeBody(req *Request) (io.Reader, string, error) {
	switch {
	case req.RawBody != nil:
		return bytes.NewReader(req.RawBody), req.ContentType, nil
	case req.Body != nil:
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, "", fmt.Errorf("marshaling request body: %w", err)
		}

		return bytes.NewReader(data), "application/json", nil
	default:
		return nil, "", nil
	}
}

// setHeaders attaches standard, auth, and per-request headers.
func (c *Client) setHeaders(httpReq *http.Request, contentType string, extra map[string]string) {
	httpReq.Header.Set("Accept", "application/json")

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if c.apiKey != "" {
		httpReq.Header.Set(constants.HeaderAPIKey, c.apiKey)
	}

	if c.bearerToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.bearerToken)
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	for key, value := range extra {
		httpReq.Header.Set(key, value)
	}
}

// parseAPIError builds the error for a status >= 400 response. The message
// comes from the JSON body's "message" field, then "error", then the raw
// body text.
func parseAPIError(resp *Response) error {
	apiErr := &invoiceiq.APIError{
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(resp.Body)),
		RawBody:    resp.Body,
	}

	var payload struct {
		Message   string `json:"message"`
		ErrorText string `json:"error"`
	}

	err := json.Unmarshal(resp.Body, &payload)
	if err == nil {
		switch {
		case payload.Message != "":
			apiErr.Message = payload.Message
		case payload.ErrorText != "":
			apiErr.Message = payload.ErrorText
		}
	}

	return apiErr
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// PostRaw performs a POST request with a prepared body, e.g. a multipart
// form. Extra headers carry submission options like Idempotency-Key.
func (c *Client) PostRaw(ctx context.Context, path string, body []byte, contentType string, headers map[string]string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:      http.MethodPost,
		Path:        path,
		RawBody:     body,
		ContentType: contentType,
		Headers:     headers,
	})
}
