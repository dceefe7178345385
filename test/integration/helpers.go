//go:build integration
// +build integration

package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/AstrowareConception/invoiceiq-sdk-go/pkg/invoiceiq"
	"github.com/AstrowareConception/invoiceiq-sdk-go/pkg/iqclient"
)

const testAPIKey = "integration-test-key"

// jobState tracks one submitted asynchronous job. The job reports PROCESSING
// until it has been fetched pollsRemaining times, then settles on its
// terminal status.
type jobState struct {
	id                string
	pollsRemaining    int
	terminalStatus    string
	downloadURL       string
	reportDownloadURL string
	fetches           int
}

// fakeAPI simulates the hosted InvoiceIQ API closely enough for complete
// workflow tests: submissions return receipts, jobs advance toward a
// terminal status as they are polled, and validation reports are served
// once a document has been accepted.
type fakeAPI struct {
	mu          sync.Mutex
	jobs        map[string]*jobState
	validations map[string]invoiceiq.Validation
	nextID      int
	serverURL   string

	// PollsUntilDone is how many fetches a job spends in PROCESSING before
	// reaching its terminal status. TerminalStatus defaults to COMPLETED.
	PollsUntilDone int
	TerminalStatus string
}

// NewFakeAPI starts an in-process InvoiceIQ API and returns it together with
// a client pointed at it. The server is shut down when the test finishes.
func NewFakeAPI(t *testing.T) (*fakeAPI, invoiceiq.Client) {
	t.Helper()

	api := &fakeAPI{
		jobs:           make(map[string]*jobState),
		validations:    make(map[string]invoiceiq.Validation),
		PollsUntilDone: 2,
		TerminalStatus: "COMPLETED",
	}

	server := httptest.NewServer(api.handler())
	t.Cleanup(server.Close)

	client, err := iqclient.NewWithAPIKey(server.URL, testAPIKey)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	api.serverURL = server.URL

	return api, client
}

// ServerURL returns the base URL of the fake API, so tests can build
// misconfigured clients against the same server.
func (api *fakeAPI) ServerURL() string {
	return api.serverURL
}

func (api *fakeAPI) handler() http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Header.Get("X-API-KEY") != testAPIKey {
			writeAPIError(writer, http.StatusUnauthorized, "Invalid API key")

			return
		}

		path := request.URL.Path

		switch {
		case path == "/v1/validations" && request.Method == http.MethodPost:
			api.handleValidationSubmit(writer, request)
		case path == "/v1/validations" && request.Method == http.MethodGet:
			api.handleValidationList(writer)
		case strings.HasPrefix(path, "/v1/validations/") && strings.HasSuffix(path, "/report"):
			api.handleValidationReport(writer, request)
		case path == "/api/v1/transformations" && request.Method == http.MethodPost:
			api.handleTransformationSubmit(writer, request)
		case strings.HasPrefix(path, "/api/v1/transformations/"):
			api.handleJobGet(writer, request, "/api/v1/transformations/")
		case path == "/api/v1/generations" && request.Method == http.MethodPost:
			api.handleGenerationSubmit(writer, request)
		case strings.HasPrefix(path, "/api/v1/generations/"):
			api.handleJobGet(writer, request, "/api/v1/generations/")
		default:
			writeAPIError(writer, http.StatusNotFound, "Not found")
		}
	})
}

func (api *fakeAPI) handleValidationSubmit(writer http.ResponseWriter, request *http.Request) {
	if err := request.ParseMultipartForm(32 << 20); err != nil {
		writeAPIError(writer, http.StatusBadRequest, "invalid multipart body")

		return
	}

	file, _, err := request.FormFile("file")
	if err != nil {
		writeAPIError(writer, http.StatusBadRequest, "file part is required")

		return
	}
	defer file.Close()

	api.mu.Lock()
	defer api.mu.Unlock()

	api.nextID++
	validation := invoiceiq.Validation{
		ID:          fmt.Sprintf("val-%04d", api.nextID),
		Status:      "PENDING",
		ReferenceID: request.FormValue("referenceId"),
	}
	api.validations[validation.ID] = validation

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(writer).Encode(validation)
}

func (api *fakeAPI) handleValidationList(writer http.ResponseWriter) {
	api.mu.Lock()
	defer api.mu.Unlock()

	items := make([]invoiceiq.Validation, 0, len(api.validations))
	for _, validation := range api.validations {
		items = append(items, validation)
	}

	writer.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(writer).Encode(map[string]interface{}{
		"data": items,
		"meta": map[string]int{"total": len(items)},
	})
}

func (api *fakeAPI) handleValidationReport(writer http.ResponseWriter, request *http.Request) {
	validationID := strings.TrimSuffix(strings.TrimPrefix(request.URL.Path, "/v1/validations/"), "/report")

	api.mu.Lock()
	_, known := api.validations[validationID]
	api.mu.Unlock()

	if !known {
		writeAPIError(writer, http.StatusNotFound, "No validation with this id")

		return
	}

	transformation := "trans-" + validationID
	finalScore := 92.5
	profile := "EN16931"

	writer.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(writer).Encode(invoiceiq.ValidationReport{
		Transformation: &transformation,
		FinalScore:     &finalScore,
		Profile:        &profile,
		Issues: []invoiceiq.ValidationIssue{
			{Severity: "warning", Code: "BR-16", Message: "Invoice line is missing a buyer reference", Path: "/lines/0"},
		},
	})
}

func (api *fakeAPI) handleTransformationSubmit(writer http.ResponseWriter, request *http.Request) {
	if err := request.ParseMultipartForm(32 << 20); err != nil {
		writeAPIError(writer, http.StatusBadRequest, "invalid multipart body")

		return
	}

	file, _, err := request.FormFile("file")
	if err != nil {
		writeAPIError(writer, http.StatusBadRequest, "file part is required")

		return
	}
	defer file.Close()

	var metadata map[string]interface{}
	if err := json.Unmarshal([]byte(request.FormValue("metadata")), &metadata); err != nil {
		writeAPIError(writer, http.StatusUnprocessableEntity, "metadata is not valid JSON")

		return
	}

	if metadata["invoiceNumber"] == "" || metadata["invoiceNumber"] == nil {
		writeAPIError(writer, http.StatusUnprocessableEntity, "invoiceNumber is required")

		return
	}

	api.acceptJob(writer, "trans", ".xml", true)
}

func (api *fakeAPI) handleGenerationSubmit(writer http.ResponseWriter, request *http.Request) {
	var payload map[string]interface{}
	if err := json.NewDecoder(request.Body).Decode(&payload); err != nil {
		writeAPIError(writer, http.StatusBadRequest, "invalid JSON body")

		return
	}

	if payload["invoiceNumber"] == "" || payload["invoiceNumber"] == nil {
		writeAPIError(writer, http.StatusUnprocessableEntity, "invoiceNumber is required")

		return
	}

	api.acceptJob(writer, "gen", ".pdf", false)
}

func (api *fakeAPI) acceptJob(writer http.ResponseWriter, prefix, extension string, withReport bool) {
	api.mu.Lock()
	defer api.mu.Unlock()

	api.nextID++
	state := &jobState{
		id:             fmt.Sprintf("%s-%04d", prefix, api.nextID),
		pollsRemaining: api.PollsUntilDone,
		terminalStatus: api.TerminalStatus,
	}
	state.downloadURL = "https://cdn.invoiceiq.test/documents/" + state.id + extension

	if withReport {
		state.reportDownloadURL = "https://cdn.invoiceiq.test/reports/" + state.id + ".json"
	}

	api.jobs[state.id] = state

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(writer).Encode(invoiceiq.Job{ID: state.id, Status: "PENDING"})
}

func (api *fakeAPI) handleJobGet(writer http.ResponseWriter, request *http.Request, prefix string) {
	jobID := strings.TrimPrefix(request.URL.Path, prefix)

	api.mu.Lock()
	defer api.mu.Unlock()

	state, known := api.jobs[jobID]
	if !known {
		writeAPIError(writer, http.StatusNotFound, "Job not found")

		return
	}

	state.fetches++

	job := invoiceiq.Job{ID: state.id, Status: "PROCESSING"}

	if state.pollsRemaining > 0 {
		state.pollsRemaining--
	} else {
		job.Status = state.terminalStatus
		if job.Status == "COMPLETED" {
			job.DownloadURL = &state.downloadURL
			if state.reportDownloadURL != "" {
				job.ReportDownloadURL = &state.reportDownloadURL
			}
		}
	}

	writer.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(writer).Encode(job)
}

// JobFetches reports how many times a job has been polled.
func (api *fakeAPI) JobFetches(jobID string) int {
	api.mu.Lock()
	defer api.mu.Unlock()

	if state, known := api.jobs[jobID]; known {
		return state.fetches
	}

	return 0
}

func writeAPIError(writer http.ResponseWriter, status int, message string) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(map[string]string{"message": message})
}
