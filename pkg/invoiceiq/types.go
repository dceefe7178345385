package invoiceiq

import (
	"io"
)

// Job represents an asynchronous transformation or generation job.
type Job struct {
	ID                string  `json:"id"                          yaml:"id"`
	Status            string  `json:"status"                      yaml:"status"`
	DownloadURL       *string `json:"downloadUrl,omitempty"       yaml:"downloadUrl,omitempty"`
	ReportDownloadURL *string `json:"reportDownloadUrl,omitempty" yaml:"reportDownloadUrl,omitempty"`
}

// Validation is the submission receipt returned when a document is accepted
// for validation.
type Validation struct {
	ID          string `json:"id"                    yaml:"id"`
	Status      string `json:"status,omitempty"      yaml:"status,omitempty"`
	ReferenceID string `json:"referenceId,omitempty" yaml:"referenceId,omitempty"`
}

// ValidationReport represents the outcome of a document validation.
type ValidationReport struct {
	Transformation *string           `json:"transformation,omitempty" yaml:"transformation,omitempty"`
	FinalScore     *float64          `json:"finalScore,omitempty"     yaml:"finalScore,omitempty"`
	Profile        *string           `json:"profile,omitempty"        yaml:"profile,omitempty"`
	Issues         []ValidationIssue `json:"issues,omitempty"         yaml:"issues,omitempty"`
}

// ValidationIssue is a single finding inside a validation report.
type ValidationIssue struct {
	Severity string `json:"severity,omitempty" yaml:"severity,omitempty"`
	Code     string `json:"code,omitempty"     yaml:"code,omitempty"`
	Message  string `json:"message,omitempty"  yaml:"message,omitempty"`
	Path     string `json:"path,omitempty"     yaml:"path,omitempty"`
}

// ValidationSubmitRequest describes a document validation submission. File is
// required; the SDK reads the stream once and does no file I/O of its own.
type ValidationSubmitRequest struct {
	File           io.Reader
	Filename       string
	CallbackURL    string
	ReferenceID    string
	IdempotencyKey string
}

// TransformationSubmitRequest describes a transformation submission. File and
// Metadata are required.
type TransformationSubmitRequest struct {
	File           io.Reader
	Filename       string
	Metadata       *TransformationMetadata
	IdempotencyKey string
}
