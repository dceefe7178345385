// Package client contains the concrete implementation of the invoiceiq.Client
// interface: one sub-client per resource family plus the shared job poller.
package client

import (
	"errors"

	internalhttp "github.com/AstrowareConception/invoiceiq-sdk-go/internal/http"
	"github.com/AstrowareConception/invoiceiq-sdk-go/pkg/invoiceiq"
)

// Static errors for err113 compliance.
var (
	ErrBaseURLRequired = errors.New("base URL is required")
)

// Client implements the invoiceiq.Client interface.
type Client struct {
	httpClient   *internalhttp.Client
	baseURL      string
	logger       invoiceiq.Logger
	pollDefaults *invoiceiq.PollConfig

	// Resource clients
	validations     invoiceiq.ValidationsClient
	transformations invoiceiq.TransformationsClient
	generations     invoiceiq.GenerationsClient
}

// New creates a new InvoiceIQ API client from a resolved config. The facade
// in pkg/iqclient normalizes the base URL before calling this.
func New(config *invoiceiq.Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}

	httpClient := internalhttp.NewClient(config.BaseURL, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		baseURL:      config.BaseURL,
		logger:       config.Logger,
		pollDefaults: config.Poll,
	}

	client.initializeResourceClients()

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *invoiceiq.Config) []internalhttp.Option {
	var httpOpts []internalhttp.Option

	if config.APIKey != "" {
		httpOpts = append(httpOpts, internalhttp.WithAPIKey(config.APIKey))
	}

	if config.BearerToken != "" {
		httpOpts = append(httpOpts, internalhttp.WithBearerToken(config.BearerToken))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, internalhttp.WithHTTPClient(config.HTTPClient))
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, internalhttp.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, internalhttp.WithUserAgent(config.UserAgent))
	}

	return httpOpts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.validations = NewValidationsClient(c.httpClient)
	c.transformations = NewTransformationsClient(c.httpClient, c)
	c.generations = NewGenerationsClient(c.httpClient, c)
}

// Resource client accessors

// Validations implements invoiceiq.Client.Validations.
func (c *Client) Validations() invoiceiq.ValidationsClient {
	return c.validations
}

// Transformations implements invoiceiq.Client.Transformations.
func (c *Client) Transformations() invoiceiq.TransformationsClient {
	return c.transformations
}

// Generations implements invoiceiq.Client.Generations.
func (c *Client) Generations() invoiceiq.GenerationsClient {
	return c.generations
}

// loggerAdapter adapts invoiceiq.Logger to http.Logger.
type loggerAdapter struct {
	logger invoiceiq.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
