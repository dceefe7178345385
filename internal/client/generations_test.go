package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AstrowareConception/invoiceiq-sdk-go/pkg/invoiceiq"
)

func TestGenerationsClientSubmit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/generations", request.URL.Path)
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

		var payload map[string]interface{}

		err := json.NewDecoder(request.Body).Decode(&payload)
		require.NoError(t, err)
		assert.Equal(t, "FA-2026-0042", payload["invoiceNumber"])
		assert.Equal(t, "EUR", payload["currency"])
		assert.Equal(t, "380", payload["typeCode"])

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(writer).Encode(invoiceiq.Job{ID: "gen-guid", Status: "PENDING"})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	job, err := client.Generations().Submit(context.Background(), testTransformationMetadata())
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, "gen-guid", job.ID)
	assert.Equal(t, "PENDING", job.Status)
}

func TestGenerationsClientSubmitNilPayload(t *testing.T) {
	client := NewTestClient("http://127.0.0.1:1")

	job, err := client.Generations().Submit(context.Background(), nil)
	require.ErrorIs(t, err, invoiceiq.ErrPayloadRequired)
	assert.Nil(t, job)
}

func TestGenerationsClientSubmitInvalidPayload(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		requests++

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(invoiceiq.Job{ID: "gen-guid"})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	payload := testTransformationMetadata()
	payload.IssueDate = "22/08/2026"

	job, err := client.Generations().Submit(context.Background(), payload)
	require.Error(t, err)
	assert.Nil(t, job)
	assert.Contains(t, err.Error(), "metadata does not match document schema")
	assert.Equal(t, 0, requests)
}

func TestGenerationsClientSubmitAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(writer).Encode(map[string]string{"message": "Buyer VAT id is malformed"})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	job, err := client.Generations().Submit(context.Background(), testTransformationMetadata())
	require.Error(t, err)
	assert.Nil(t, job)

	var apiErr *invoiceiq.APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "Buyer VAT id is malformed", apiErr.Message)
}

func TestGenerationsClientGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/generations/gen-guid", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		downloadURL := "https://api.invoiceiq.fr/downloads/gen-guid.pdf"

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(invoiceiq.Job{
			ID:          "gen-guid",
			Status:      "COMPLETED",
			DownloadURL: &downloadURL,
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	job, err := client.Generations().Get(context.Background(), "gen-guid")
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, "COMPLETED", job.Status)
	require.NotNil(t, job.DownloadURL)
}
