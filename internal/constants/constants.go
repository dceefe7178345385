package constants

import "time"

// API endpoint defaults.
const (
	// DefaultBaseURL is the production InvoiceIQ API endpoint.
	DefaultBaseURL = "https://api.invoiceiq.fr"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Job polling defaults.
const (
	// DefaultPollInterval is the initial delay between job polls.
	DefaultPollInterval = 1 * time.Second

	// DefaultPollMaxWait bounds the total time spent polling a job.
	DefaultPollMaxWait = 60 * time.Second

	// DefaultPollBackoffFactor multiplies the delay after each poll.
	DefaultPollBackoffFactor = 1.5
)

// Job status constants.
const (
	// JobStatusCompleted indicates a successfully finished job.
	JobStatusCompleted = "COMPLETED"

	// JobStatusFailed indicates a failed job.
	JobStatusFailed = "FAILED"

	// JobStatusCanceled indicates a canceled job.
	JobStatusCanceled = "CANCELED"

	// JobStatusPending indicates a job not yet picked up.
	JobStatusPending = "PENDING"

	// JobStatusProcessing indicates a job in progress.
	JobStatusProcessing = "PROCESSING"
)

// API path constants.
const (
	// APIPathValidations for the validations endpoint.
	APIPathValidations = "/v1/validations"

	// APIPathTransformations for the transformations endpoint.
	APIPathTransformations = "/api/v1/transformations"

	// APIPathGenerations for the generations endpoint.
	APIPathGenerations = "/api/v1/generations"
)

// HTTP header names.
const (
	// HeaderAPIKey carries the account API key.
	HeaderAPIKey = "X-API-KEY"

	// HeaderIdempotencyKey deduplicates submission calls server-side.
	HeaderIdempotencyKey = "Idempotency-Key"
)

// Multipart form field names.
const (
	// FormFieldFile is the binary document part of a submission.
	FormFieldFile = "file"

	// FormFieldMetadata carries the JSON-serialized metadata string.
	FormFieldMetadata = "metadata"

	// FormFieldCallbackURL is the optional webhook field on validations.
	FormFieldCallbackURL = "callbackUrl"

	// FormFieldReferenceID is the optional caller reference on validations.
	FormFieldReferenceID = "referenceId"
)

// File name defaults.
const (
	// DefaultUploadFilename is used when a submission does not name its file.
	DefaultUploadFilename = "document.pdf"
)

// Document defaults applied to metadata records.
const (
	// DefaultCurrency is the currency assumed when none is given.
	DefaultCurrency = "EUR"

	// DefaultInvoiceTypeCode is the UNTDID 1001 code for a commercial invoice.
	DefaultInvoiceTypeCode = "380"

	// DefaultUnitCode is the UN/ECE rec 20 code for "unit".
	DefaultUnitCode = "C62"

	// DefaultTaxCategoryCode is the UNTDID 5305 standard-rate category.
	DefaultTaxCategoryCode = "S"
)

// Money arithmetic constants.
const (
	// CurrencyScale is the number of decimal places kept on monetary amounts.
	CurrencyScale = 2

	// PercentDivisor converts a tax rate percentage to a multiplier.
	PercentDivisor = 100
)
