package invoiceiq

import (
	"context"
	"encoding/json"
)

// JobFetcher retrieves the current state of an asynchronous job. Both
// TransformationsClient.Get and GenerationsClient.Get satisfy it, so either
// can drive JobPoller.WaitForJob.
type JobFetcher func(ctx context.Context, jobID string) (*Job, error)

// ValidationsClient provides access to document validations.
type ValidationsClient interface {
	// Submit uploads a document for validation as a multipart request.
	Submit(ctx context.Context, request *ValidationSubmitRequest) (*Validation, error)
	// GetReport fetches the validation report once processing is done.
	GetReport(ctx context.Context, validationID string) (*ValidationReport, error)
	// List forwards arbitrary query parameters and returns the raw JSON
	// response body without interpreting its shape.
	List(ctx context.Context, params *QueryParams) (json.RawMessage, error)
}

// TransformationsClient provides access to PDF-to-structured transformations.
type TransformationsClient interface {
	// Submit uploads a document plus its metadata record. The metadata is
	// validated locally, serialized to JSON, and sent as a single form
	// field alongside the binary file part.
	Submit(ctx context.Context, request *TransformationSubmitRequest) (*Job, error)
	// Get fetches the transformation job state.
	Get(ctx context.Context, jobID string) (*Job, error)
	// Wait blocks until the transformation job reaches a terminal status.
	Wait(ctx context.Context, jobID string, config *PollConfig) (*Job, error)
}

// GenerationsClient provides access to invoice document generation.
type GenerationsClient interface {
	// Submit posts the generation payload as a JSON body. The payload is
	// validated locally before anything goes on the wire.
	Submit(ctx context.Context, payload *GenerationPayload) (*Job, error)
	// Get fetches the generation job state.
	Get(ctx context.Context, jobID string) (*Job, error)
	// Wait blocks until the generation job reaches a terminal status.
	Wait(ctx context.Context, jobID string, config *PollConfig) (*Job, error)
}
