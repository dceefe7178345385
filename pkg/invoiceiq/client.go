package invoiceiq

import (
	"context"
	"net/http"
	"time"
)

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	Validations() ValidationsClient
	Transformations() TransformationsClient
	Generations() GenerationsClient
}

// JobPoller blocks until an asynchronous job reaches a terminal status.
type JobPoller interface {
	// WaitForJob polls the job through fetch until its status matches the
	// configured completed status (success), matches a failed status
	// (JobFailedError), or no further delay fits before the deadline
	// (PollTimeoutError). Status comparison is case-insensitive. A nil
	// config uses Config.Poll when set, else the package defaults.
	WaitForJob(ctx context.Context, fetch JobFetcher, jobID string, config *PollConfig) (*Job, error)
}

type Client interface {
	ResourceClients
	JobPoller
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an invoiceiq.Client.
//
// # Authentication
//
// APIKey is sent as the X-API-KEY header and BearerToken as
// "Authorization: Bearer <token>". Both may be set at once; both headers are
// then attached to every request. Neither being set is also valid: requests
// go out without authentication headers, which the API accepts on its public
// endpoints. There is no token refresh; credentials are static for the
// lifetime of the client.
//
// # Timeouts and transport
//
// HTTPTimeout bounds each request when the SDK constructs its own transport.
// HTTPClient overrides the transport entirely: the SDK never retries, so
// callers who want retry, tracing, or proxy behavior supply a prepared
// *http.Client here. Per-call deadlines should be controlled via the context
// passed to client methods.
type Config struct {
	// BaseURL: base URL for the InvoiceIQ API. iqclient.New normalizes this
	// value by trimming a trailing slash and adding "https://" if no scheme
	// is present; empty means the production endpoint.
	BaseURL string

	// Authentication options (both optional)
	// APIKey: account API key, sent as X-API-KEY.
	APIKey string
	// BearerToken: OAuth-style bearer token, sent as Authorization: Bearer.
	BearerToken string

	// Optional configurations
	// HTTPTimeout: timeout applied to the SDK-owned *http.Client. Ignored
	// when HTTPClient is set.
	HTTPTimeout time.Duration
	// HTTPClient: caller-supplied transport. The SDK uses it as-is.
	HTTPClient *http.Client
	// Poll: default polling behavior for Wait calls made with a nil
	// PollConfig. Field-wise zero values fall back to package defaults.
	Poll *PollConfig
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}

// NewClient creates a new InvoiceIQ API client
// Deprecated: Use github.com/AstrowareConception/invoiceiq-sdk-go/pkg/iqclient.New instead.
func NewClient(config *Config) (Client, error) {
	return nil, ErrDeprecatedClientConstructor
}
