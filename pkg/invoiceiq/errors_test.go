package invoiceiq

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errTestPlain = errors.New("plain error")

func TestAPIError_Error(t *testing.T) {
	err := &APIError{
		StatusCode: http.StatusNotFound,
		Message:    "Validation not found",
	}

	assert.Equal(t, "HTTP 404: Validation not found", err.Error())
}

func TestJobFailedError_Error(t *testing.T) {
	err := &JobFailedError{
		JobID:  "job-guid",
		Status: "CANCELED",
	}

	assert.Equal(t, "job job-guid failed with status CANCELED", err.Error())
}

func TestPollTimeoutError_Error(t *testing.T) {
	err := &PollTimeoutError{
		JobID:   "job-guid",
		MaxWait: time.Minute,
	}

	assert.Equal(t, "timed out after 1m0s waiting for job job-guid", err.Error())
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "APIError not found",
			err:      &APIError{StatusCode: http.StatusNotFound},
			expected: true,
		},
		{
			name:     "APIError other status",
			err:      &APIError{StatusCode: http.StatusBadRequest},
			expected: false,
		},
		{
			name:     "wrapped APIError",
			err:      fmt.Errorf("getting validation report: %w", &APIError{StatusCode: http.StatusNotFound}),
			expected: true,
		},
		{
			name:     "other error type",
			err:      errTestPlain,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, IsNotFound(testCase.err))
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&APIError{StatusCode: http.StatusUnauthorized}))
	assert.False(t, IsUnauthorized(&APIError{StatusCode: http.StatusForbidden}))
	assert.False(t, IsUnauthorized(errTestPlain))
}

func TestIsForbidden(t *testing.T) {
	assert.True(t, IsForbidden(&APIError{StatusCode: http.StatusForbidden}))
	assert.False(t, IsForbidden(&APIError{StatusCode: http.StatusUnauthorized}))
	assert.False(t, IsForbidden(errTestPlain))
}

func TestIsJobFailed(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "JobFailedError",
			err:      &JobFailedError{JobID: "job-guid", Status: "FAILED"},
			expected: true,
		},
		{
			name:     "wrapped JobFailedError",
			err:      fmt.Errorf("waiting: %w", &JobFailedError{JobID: "job-guid", Status: "FAILED"}),
			expected: true,
		},
		{
			name:     "APIError",
			err:      &APIError{StatusCode: http.StatusInternalServerError},
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, IsJobFailed(testCase.err))
		})
	}
}

func TestIsPollTimeout(t *testing.T) {
	assert.True(t, IsPollTimeout(&PollTimeoutError{JobID: "job-guid", MaxWait: time.Minute}))
	assert.True(t, IsPollTimeout(fmt.Errorf("waiting: %w", &PollTimeoutError{JobID: "job-guid"})))
	assert.False(t, IsPollTimeout(&JobFailedError{JobID: "job-guid"}))
	assert.False(t, IsPollTimeout(nil))
}
