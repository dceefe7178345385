package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AstrowareConception/invoiceiq-sdk-go/internal/constants"
	internalhttp "github.com/AstrowareConception/invoiceiq-sdk-go/internal/http"
	"github.com/AstrowareConception/invoiceiq-sdk-go/pkg/invoiceiq"
)

// TransformationsClient implements the invoiceiq.TransformationsClient
// interface.
type TransformationsClient struct {
	httpClient *internalhttp.Client
	poller     invoiceiq.JobPoller
}

// NewTransformationsClient creates a new TransformationsClient.
func NewTransformationsClient(httpClient *internalhttp.Client, poller invoiceiq.JobPoller) *TransformationsClient {
	return &TransformationsClient{
		httpClient: httpClient,
		poller:     poller,
	}
}

// Submit uploads a document and its metadata for transformation. The
// metadata travels as one JSON string form field next to the file part, so
// it is validated and serialized here rather than spread over the form.
func (c *TransformationsClient) Submit(ctx context.Context, request *invoiceiq.TransformationSubmitRequest) (*invoiceiq.Job, error) {
	if request == nil || request.File == nil {
		return nil, invoiceiq.ErrFileRequired
	}

	if request.Metadata == nil {
		return nil, invoiceiq.ErrMetadataRequired
	}

	err := request.Metadata.Validate()
	if err != nil {
		return nil, err
	}

	metadataJSON, err := json.Marshal(request.Metadata)
	if err != nil {
		return nil, fmt.Errorf("marshaling metadata: %w", err)
	}

	fields := map[string]string{
		constants.FormFieldMetadata: string(metadataJSON),
	}

	body, contentType, err := buildFileForm(request.File, request.Filename, fields)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.PostRaw(ctx, constants.APIPathTransformations, body, contentType, idempotencyHeaders(request.IdempotencyKey))
	if err != nil {
		return nil, fmt.Errorf("submitting transformation: %w", err)
	}

	if !resp.IsJSON() {
		return nil, unexpectedBinaryError("job")
	}

	var job invoiceiq.Job

	err = json.Unmarshal(resp.Body, &job)
	if err != nil {
		return nil, fmt.Errorf("parsing transformation response: %w", err)
	}

	return &job, nil
}

// Get fetches the state of a transformation job.
func (c *TransformationsClient) Get(ctx context.Context, jobID string) (*invoiceiq.Job, error) {
	path := constants.APIPathTransformations + "/" + jobID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting transformation: %w", err)
	}

	if !resp.IsJSON() {
		return nil, unexpectedBinaryError("job")
	}

	var job invoiceiq.Job

	err = json.Unmarshal(resp.Body, &job)
	if err != nil {
		return nil, fmt.Errorf("parsing transformation job: %w", err)
	}

	return &job, nil
}

// Wait blocks until the transformation job reaches a terminal status.
func (c *TransformationsClient) Wait(ctx context.Context, jobID string, config *invoiceiq.PollConfig) (*invoiceiq.Job, error) {
	return c.poller.WaitForJob(ctx, c.Get, jobID, config)
}
