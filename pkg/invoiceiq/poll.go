package invoiceiq

import (
	"time"

	"github.com/AstrowareConception/invoiceiq-sdk-go/internal/constants"
)

// PollConfig controls the backoff loop of JobPoller.WaitForJob. Zero-valued
// fields fall back to the defaults; a nil FailedStatuses slice means the
// default failed set, while an explicitly empty one means no status is
// treated as failed.
type PollConfig struct {
	// Interval is the delay before the second fetch. Each later delay is
	// the previous one multiplied by BackoffFactor.
	Interval time.Duration `json:"interval" yaml:"interval"`
	// MaxWait bounds the whole wait. The deadline is fixed when the poll
	// starts; a delay that would overshoot it fails the poll before
	// sleeping.
	MaxWait time.Duration `json:"maxWait" yaml:"maxWait"`
	// BackoffFactor must be at least 1. 1 polls at a fixed interval.
	BackoffFactor float64 `json:"backoffFactor" yaml:"backoffFactor"`
	// CompletedStatus is the terminal success status, compared
	// case-insensitively. A job matching both the completed status and a
	// failed status counts as completed.
	CompletedStatus string `json:"completedStatus" yaml:"completedStatus"`
	// FailedStatuses are the terminal failure statuses, compared
	// case-insensitively.
	FailedStatuses []string `json:"failedStatuses" yaml:"failedStatuses"`
}

// DefaultPollConfig returns the polling defaults: 1s initial interval, 60s
// max wait, 1.5 backoff factor, COMPLETED as success, FAILED and CANCELED as
// failures.
func DefaultPollConfig() *PollConfig {
	return &PollConfig{
		Interval:        constants.DefaultPollInterval,
		MaxWait:         constants.DefaultPollMaxWait,
		BackoffFactor:   constants.DefaultPollBackoffFactor,
		CompletedStatus: constants.JobStatusCompleted,
		FailedStatuses:  []string{constants.JobStatusFailed, constants.JobStatusCanceled},
	}
}
