// Package iqclient provides the main entry point for creating InvoiceIQ API clients
package iqclient

import (
	"fmt"
	"strings"

	"github.com/AstrowareConception/invoiceiq-sdk-go/internal/client"
	"github.com/AstrowareConception/invoiceiq-sdk-go/internal/constants"
	"github.com/AstrowareConception/invoiceiq-sdk-go/pkg/invoiceiq"
)

// New creates a new InvoiceIQ API client from the given configuration.
// An empty BaseURL falls back to the hosted production endpoint.
func New(config *invoiceiq.Config) (invoiceiq.Client, error) {
	if config == nil {
		return nil, invoiceiq.ErrConfigRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	// Normalize the base URL
	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	config.BaseURL = baseURL

	// Use the internal client implementation
	client, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithAPIKey creates a new client authenticating with an X-API-KEY header.
func NewWithAPIKey(endpoint, apiKey string) (invoiceiq.Client, error) {
	return New(&invoiceiq.Config{
		BaseURL: endpoint,
		APIKey:  apiKey,
	})
}

// NewWithBearerToken creates a new client authenticating with a bearer token.
func NewWithBearerToken(endpoint, token string) (invoiceiq.Client, error) {
	return New(&invoiceiq.Config{
		BaseURL:     endpoint,
		BearerToken: token,
	})
}

// NewAnonymous creates a new client that sends no credentials. Useful for
// endpoints exposed without authentication, such as local development servers.
func NewAnonymous(endpoint string) (invoiceiq.Client, error) {
	return New(&invoiceiq.Config{
		BaseURL: endpoint,
	})
}
