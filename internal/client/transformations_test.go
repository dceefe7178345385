package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AstrowareConception/invoiceiq-sdk-go/pkg/invoiceiq"
)

func testTransformationMetadata() *invoiceiq.TransformationMetadata {
	return &invoiceiq.TransformationMetadata{
		InvoiceNumber:           "FA-2026-0042",
		IssueDate:               "2026-08-22",
		Seller:                  invoiceiq.Party{Name: "Astroware SAS"},
		Buyer:                   invoiceiq.Party{Name: "Exemple SARL"},
		Lines:                   []invoiceiq.InvoiceLine{{Name: "Consulting", Quantity: 1, TotalAmount: 100}},
		TotalTaxExclusiveAmount: 100,
		TaxTotalAmount:          20,
		TotalTaxInclusiveAmount: 120,
	}
}

func TestTransformationsClientSubmit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/transformations", request.URL.Path)
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "key-456", request.Header.Get("Idempotency-Key"))

		form, err := decodeMultipartRequest(request)
		require.NoError(t, err)

		require.Len(t, form.File["file"], 1)
		assert.Equal(t, "facture.pdf", form.File["file"][0].Filename)

		// The metadata travels as one JSON string form field
		require.Len(t, form.Value["metadata"], 1)

		var decoded map[string]interface{}

		err = json.Unmarshal([]byte(form.Value["metadata"][0]), &decoded)
		require.NoError(t, err)
		assert.Equal(t, "FA-2026-0042", decoded["invoiceNumber"])
		assert.Equal(t, "EUR", decoded["currency"])
		assert.Equal(t, "380", decoded["typeCode"])

		lines, ok := decoded["lines"].([]interface{})
		require.True(t, ok)
		require.Len(t, lines, 1)

		line, ok := lines[0].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "C62", line["unitCode"])
		assert.Equal(t, "S", line["taxCategoryCode"])

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(invoiceiq.Job{ID: "job-guid", Status: "PENDING"})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	job, err := client.Transformations().Submit(context.Background(), &invoiceiq.TransformationSubmitRequest{
		File:           strings.NewReader("%PDF-1.7 fake invoice"),
		Filename:       "facture.pdf",
		Metadata:       testTransformationMetadata(),
		IdempotencyKey: "key-456",
	})
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, "job-guid", job.ID)
	assert.Equal(t, "PENDING", job.Status)
}

func TestTransformationsClientSubmitInvalidMetadata(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		requests++

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(invoiceiq.Job{ID: "job-guid"})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	metadata := testTransformationMetadata()
	metadata.InvoiceNumber = ""

	job, err := client.Transformations().Submit(context.Background(), &invoiceiq.TransformationSubmitRequest{
		File:     strings.NewReader("%PDF-1.7"),
		Metadata: metadata,
	})
	require.Error(t, err)
	assert.Nil(t, job)
	assert.Contains(t, err.Error(), "metadata does not match document schema")

	// Nothing reaches the server when the metadata is rejected locally
	assert.Equal(t, 0, requests)
}

func TestTransformationsClientSubmitMissingInputs(t *testing.T) {
	client := NewTestClient("http://127.0.0.1:1")

	job, err := client.Transformations().Submit(context.Background(), nil)
	require.ErrorIs(t, err, invoiceiq.ErrFileRequired)
	assert.Nil(t, job)

	job, err = client.Transformations().Submit(context.Background(), &invoiceiq.TransformationSubmitRequest{
		Metadata: testTransformationMetadata(),
	})
	require.ErrorIs(t, err, invoiceiq.ErrFileRequired)
	assert.Nil(t, job)

	job, err = client.Transformations().Submit(context.Background(), &invoiceiq.TransformationSubmitRequest{
		File: strings.NewReader("%PDF-1.7"),
	})
	require.ErrorIs(t, err, invoiceiq.ErrMetadataRequired)
	assert.Nil(t, job)
}

func TestTransformationsClientGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/transformations/job-guid", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		downloadURL := "https://api.invoiceiq.fr/downloads/job-guid.pdf"
		reportURL := "https://api.invoiceiq.fr/downloads/job-guid-report.json"

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(invoiceiq.Job{
			ID:                "job-guid",
			Status:            "COMPLETED",
			DownloadURL:       &downloadURL,
			ReportDownloadURL: &reportURL,
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	job, err := client.Transformations().Get(context.Background(), "job-guid")
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, "COMPLETED", job.Status)
	require.NotNil(t, job.DownloadURL)
	assert.Equal(t, "https://api.invoiceiq.fr/downloads/job-guid.pdf", *job.DownloadURL)
	require.NotNil(t, job.ReportDownloadURL)
}

func TestTransformationsClientGetBinaryBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "application/octet-stream")
		_, _ = writer.Write([]byte{0x25, 0x50, 0x44, 0x46})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	job, err := client.Transformations().Get(context.Background(), "job-guid")
	require.Error(t, err)
	assert.Nil(t, job)

	var apiErr *invoiceiq.APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}
