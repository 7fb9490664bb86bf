package server

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadRequest(t *testing.T, csv string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "data.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/dataset", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestDatasetHandler(t *testing.T) {
	srv, _ := createTestServer(t, testServerConfig(), &stubCompleter{})
	handler := srv.Routes()

	resp, envelope := retrieveEnvelope(t, handler, httptest.NewRequest(http.MethodGet, "/api/dataset", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "synthetic", data["source"])

	dates, ok := data["dates"].([]interface{})
	require.True(t, ok)
	assert.Len(t, dates, 20)

	columns, ok := data["columns"].([]interface{})
	require.True(t, ok)
	assert.Len(t, columns, 6)
}

func TestUploadHandlerReplacesDataset(t *testing.T) {
	srv, _ := createTestServer(t, testServerConfig(), &stubCompleter{})
	handler := srv.Routes()

	csv := strings.Join([]string{
		"Date,GDP,Inflation",
		"2024-01-01,2.0,3.0",
		"2024-01-02,2.1,",
		"2024-01-03,2.2,3.2",
	}, "\n")

	resp, envelope := retrieveEnvelope(t, handler, uploadRequest(t, csv))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "upload", data["source"])
	assert.Equal(t, float64(3), data["rows"])
	assert.Equal(t, float64(2), data["columns"])

	missing, ok := data["missing"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), missing["Inflation"])
	assert.Equal(t, float64(0), missing["GDP"])

	// The dataset was replaced wholesale: stats now describe the upload.
	_, statsEnvelope := retrieveEnvelope(t, handler, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	statsData, ok := statsEnvelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "upload", statsData["source"])
	assert.Equal(t, float64(3), statsData["rows"])
}

func TestUploadHandlerValidation(t *testing.T) {
	srv, _ := createTestServer(t, testServerConfig(), &stubCompleter{})
	handler := srv.Routes()

	// Too few rows for the configured minimum of 3.
	resp, envelope := retrieveEnvelope(t, handler, uploadRequest(t, "Date,GDP,Inflation\n2024-01-01,2.0,3.0\n"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, envelope.Text, "rows")

	// Too few numeric columns.
	csv := "Date,GDP\n2024-01-01,2.0\n2024-01-02,2.1\n2024-01-03,2.2\n"
	resp, envelope = retrieveEnvelope(t, handler, uploadRequest(t, csv))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, envelope.Text, "columns")

	// Missing file field.
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/dataset", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, envelope = retrieveEnvelope(t, handler, req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "missing file field", envelope.Text)

	// Failed uploads must not touch the current dataset.
	assert.Equal(t, "synthetic", srv.Dataset().Source)
}
