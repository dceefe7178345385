package client

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	internalhttp "github.com/AstrowareConception/invoiceiq-sdk-go/internal/http"
)

// Test static errors.
var (
	ErrTestFetchFailed = errors.New("fetch failed")
)

// NewTestClient creates a client wired to the given base URL without
// authentication, for use against httptest servers.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// decodeMultipartRequest parses a multipart submission received by a test
// server and returns its form for inspection.
func decodeMultipartRequest(request *http.Request) (*multipart.Form, error) {
	err := request.ParseMultipartForm(32 << 20)
	if err != nil {
		return nil, fmt.Errorf("parsing multipart form: %w", err)
	}

	return request.MultipartForm, nil
}
