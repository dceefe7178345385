package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AstrowareConception/invoiceiq-sdk-go/internal/constants"
	internalhttp "github.com/AstrowareConception/invoiceiq-sdk-go/internal/http"
	"github.com/AstrowareConception/invoiceiq-sdk-go/pkg/invoiceiq"
)

// GenerationsClient implements the invoiceiq.GenerationsClient interface.
type GenerationsClient struct {
	httpClient *internalhttp.Client
	poller     invoiceiq.JobPoller
}

// NewGenerationsClient creates a new GenerationsClient.
func NewGenerationsClient(httpClient *internalhttp.Client, poller invoiceiq.JobPoller) *GenerationsClient {
	return &GenerationsClient{
		httpClient: httpClient,
		poller:     poller,
	}
}

// Submit posts a generation payload as a JSON body.
func (c *GenerationsClient) Submit(ctx context.Context, payload *invoiceiq.GenerationPayload) (*invoiceiq.Job, error) {
	if payload == nil {
		return nil, invoiceiq.ErrPayloadRequired
	}

	err := payload.Validate()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathGenerations, payload)
	if err != nil {
		return nil, fmt.Errorf("submitting generation: %w", err)
	}

	if !resp.IsJSON() {
		return nil, unexpectedBinaryError("job")
	}

	var job invoiceiq.Job

	err = json.Unmarshal(resp.Body, &job)
	if err != nil {
		return nil, fmt.Errorf("parsing generation response: %w", err)
	}

	return &job, nil
}

// Get fetches the state of a generation job.
func (c *GenerationsClient) Get(ctx context.Context, jobID string) (*invoiceiq.Job, error) {
	path := constants.APIPathGenerations + "/" + jobID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting generation: %w", err)
	}

	if !resp.IsJSON() {
		return nil, unexpectedBinaryError("job")
	}

	var job invoiceiq.Job

	err = json.Unmarshal(resp.Body, &job)
	if err != nil {
		return nil, fmt.Errorf("parsing generation job: %w", err)
	}

	return &job, nil
}

// Wait blocks until the generation job reaches a terminal status.
func (c *GenerationsClient) Wait(ctx context.Context, jobID string, config *invoiceiq.PollConfig) (*invoiceiq.Job, error) {
	return c.poller.WaitForJob(ctx, c.Get, jobID, config)
}
