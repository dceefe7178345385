package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AstrowareConception/invoiceiq-sdk-go/pkg/invoiceiq"
)

// pollSettings is a resolved, validated PollConfig. The failed set is
// uppercased once here so the loop never re-normalizes it.
type pollSettings struct {
	interval  time.Duration
	maxWait   time.Duration
	backoff   float64
	completed string
	failed    map[string]struct{}
}

// WaitForJob implements invoiceiq.JobPoller. It polls the job through fetch
// until a terminal status or the deadline. The deadline is fixed on entry;
// before each sleep the upcoming delay is checked against it, so the loop
// never starts a sleep it cannot afford. Each call owns its delay and
// deadline state, so concurrent waits do not interact.
func (c *Client) WaitForJob(ctx context.Context, fetch invoiceiq.JobFetcher, jobID string, config *invoiceiq.PollConfig) (*invoiceiq.Job, error) {
	settings, err := resolvePollConfig(config, c.pollDefaults)
	if err != nil {
		return nil, err
	}

	deadline := time.Now().Add(settings.maxWait)
	delay := settings.interval

	for {
		job, err := fetch(ctx, jobID)
		if err != nil {
			return nil, fmt.Errorf("fetching job %s: %w", jobID, err)
		}

		status := strings.ToUpper(job.Status)

		// Completed wins when a status is in both terminal classes.
		if status == settings.completed {
			return job, nil
		}

		if _, failed := settings.failed[status]; failed {
			return job, &invoiceiq.JobFailedError{JobID: jobID, Status: job.Status}
		}

		if time.Now().Add(delay).After(deadline) {
			return job, &invoiceiq.PollTimeoutError{JobID: jobID, MaxWait: settings.maxWait}
		}

		err = sleepContext(ctx, delay)
		if err != nil {
			return job, fmt.Errorf("waiting for job %s: %w", jobID, err)
		}

		delay = time.Duration(float64(delay) * settings.backoff)
	}
}

// sleepContext sleeps for the delay unless the context ends first.
func sleepContext(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// resolvePollConfig merges the per-call config over the client defaults over
// the package defaults, validates the result, and normalizes the failed set.
func resolvePollConfig(config, clientDefaults *invoiceiq.PollConfig) (*pollSettings, error) {
	base := invoiceiq.DefaultPollConfig()

	merged := mergePollConfig(clientDefaults, base)
	merged = mergePollConfig(config, merged)

	if merged.Interval <= 0 {
		return nil, fmt.Errorf("%w: interval must be greater than zero", invoiceiq.ErrInvalidPollConfig)
	}

	if merged.BackoffFactor < 1 {
		return nil, fmt.Errorf("%w: backoff factor must be at least 1", invoiceiq.ErrInvalidPollConfig)
	}

	if merged.MaxWait <= 0 {
		return nil, fmt.Errorf("%w: max wait must be greater than zero", invoiceiq.ErrInvalidPollConfig)
	}

	failed := make(map[string]struct{}, len(merged.FailedStatuses))
	for _, status := range merged.FailedStatuses {
		failed[strings.ToUpper(status)] = struct{}{}
	}

	return &pollSettings{
		interval:  merged.Interval,
		maxWait:   merged.MaxWait,
		backoff:   merged.BackoffFactor,
		completed: strings.ToUpper(merged.CompletedStatus),
		failed:    failed,
	}, nil
}

// mergePollConfig overlays the non-zero fields of config on top of base. A
// nil FailedStatuses inherits; an empty non-nil one is kept as explicitly
// empty.
func mergePollConfig(config, base *invoiceiq.PollConfig) *invoiceiq.PollConfig {
	merged := *base

	if config == nil {
		return &merged
	}

	if config.Interval != 0 {
		merged.Interval = config.Interval
	}

	if config.MaxWait != 0 {
		merged.MaxWait = config.MaxWait
	}

	if config.BackoffFactor != 0 {
		merged.BackoffFactor = config.BackoffFactor
	}

	if config.CompletedStatus != "" {
		merged.CompletedStatus = config.CompletedStatus
	}

	if config.FailedStatuses != nil {
		merged.FailedStatuses = config.FailedStatuses
	}

	return &merged
}
