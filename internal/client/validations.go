package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/AstrowareConception/invoiceiq-sdk-go/internal/constants"
	internalhttp "github.com/AstrowareConception/invoiceiq-sdk-go/internal/http"
	"github.com/AstrowareConception/invoiceiq-sdk-go/pkg/invoiceiq"
)

// ValidationsClient implements the invoiceiq.ValidationsClient interface.
type ValidationsClient struct {
	httpClient *internalhttp.Client
}

// NewValidationsClient creates a new ValidationsClient.
func NewValidationsClient(httpClient *internalhttp.Client) *ValidationsClient {
	return &ValidationsClient{
		httpClient: httpClient,
	}
}

// Submit uploads a document for validation.
func (c *ValidationsClient) Submit(ctx context.Context, request *invoiceiq.ValidationSubmitRequest) (*invoiceiq.Validation, error) {
	if request == nil || request.File == nil {
		return nil, invoiceiq.ErrFileRequired
	}

	fields := make(map[string]string)

	if request.CallbackURL != "" {
		fields[constants.FormFieldCallbackURL] = request.CallbackURL
	}

	if request.ReferenceID != "" {
		fields[constants.FormFieldReferenceID] = request.ReferenceID
	}

	body, contentType, err := buildFileForm(request.File, request.Filename, fields)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.PostRaw(ctx, constants.APIPathValidations, body, contentType, idempotencyHeaders(request.IdempotencyKey))
	if err != nil {
		return nil, fmt.Errorf("submitting validation: %w", err)
	}

	if !resp.IsJSON() {
		return nil, unexpectedBinaryError("validation receipt")
	}

	var validation invoiceiq.Validation

	err = json.Unmarshal(resp.Body, &validation)
	if err != nil {
		return nil, fmt.Errorf("parsing validation response: %w", err)
	}

	return &validation, nil
}

// GetReport fetches the report of a finished validation.
func (c *ValidationsClient) GetReport(ctx context.Context, validationID string) (*invoiceiq.ValidationReport, error) {
	path := constants.APIPathValidations + "/" + validationID + "/report"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting validation report: %w", err)
	}

	if !resp.IsJSON() {
		return nil, unexpectedBinaryError("validation report")
	}

	var report invoiceiq.ValidationReport

	err = json.Unmarshal(resp.Body, &report)
	if err != nil {
		return nil, fmt.Errorf("parsing validation report: %w", err)
	}

	return &report, nil
}

// List forwards query parameters to the validations index and returns the
// body untouched. Callers decode the shape they expect.
func (c *ValidationsClient) List(ctx context.Context, params *invoiceiq.QueryParams) (json.RawMessage, error) {
	var queryParams url.Values
	if params != nil {
		queryParams = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, constants.APIPathValidations, queryParams)
	if err != nil {
		return nil, fmt.Errorf("listing validations: %w", err)
	}

	return json.RawMessage(resp.Body), nil
}

// unexpectedBinaryError reports a binary body on an endpoint that must
// answer JSON. The API does this when a gateway misroutes a download; it is
// a protocol violation, not a decodable response.
func unexpectedBinaryError(expected string) error {
	return &invoiceiq.APIError{
		StatusCode: http.StatusInternalServerError,
		Message:    fmt.Sprintf("unexpected binary response for a JSON %s", expected),
	}
}
