package invoiceiq

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// APIError represents an error response from the InvoiceIQ API. It is
// returned for any response with status >= 400 and for protocol violations
// such as a binary body on a JSON endpoint.
type APIError struct {
	StatusCode int    `json:"statusCode" yaml:"statusCode"`
	Message    string `json:"message"    yaml:"message"`
	RawBody    []byte `json:"-"          yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// JobFailedError reports a job that reached a terminal failure status while
// being polled.
type JobFailedError struct {
	JobID  string `json:"jobId"  yaml:"jobId"`
	Status string `json:"status" yaml:"status"`
}

// Error implements the error interface.
func (e *JobFailedError) Error() string {
	return fmt.Sprintf("job %s failed with status %s", e.JobID, e.Status)
}

// PollTimeoutError reports that a poll loop exhausted its deadline before the
// job reached a terminal status.
type PollTimeoutError struct {
	JobID   string        `json:"jobId"   yaml:"jobId"`
	MaxWait time.Duration `json:"maxWait" yaml:"maxWait"`
}

// Error implements the error interface.
func (e *PollTimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s waiting for job %s", e.MaxWait, e.JobID)
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired              = errors.New("config is required")
	ErrFileRequired                = errors.New("file is required")
	ErrMetadataRequired            = errors.New("metadata is required")
	ErrPayloadRequired             = errors.New("payload is required")
	ErrInvalidPollConfig           = errors.New("invalid poll config")
	ErrDeprecatedClientConstructor = errors.New("use github.com/AstrowareConception/invoiceiq-sdk-go/pkg/iqclient.New to create a client")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusForbidden
	}

	return false
}

// IsJobFailed checks if the error reports a terminally failed job.
func IsJobFailed(err error) bool {
	jobErr := &JobFailedError{}

	return errors.As(err, &jobErr)
}

// IsPollTimeout checks if the error reports an exhausted poll deadline.
func IsPollTimeout(err error) bool {
	timeoutErr := &PollTimeoutError{}

	return errors.As(err, &timeoutErr)
}
