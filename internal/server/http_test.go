package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Alias1177/econagent/internal/chat"
	"github.com/Alias1177/econagent/internal/dataset"
	"github.com/Alias1177/econagent/models"
)

type stubCompleter struct {
	answer      string
	err         error
	gotQuestion string
	gotSummary  string
}

func (s *stubCompleter) Answer(ctx context.Context, question, summary string) (string, error) {
	s.gotQuestion = question
	s.gotSummary = summary
	return s.answer, s.err
}

func testServerConfig() *models.Config {
	return &models.Config{
		Port:           4000,
		Env:            "test",
		DatasetDays:    20,
		DatasetStart:   "2023-01-01",
		DatasetSeed:    42,
		MinUploadRows:  3,
		MinUploadCols:  2,
		RequestTimeout: 5,
		SessionTTL:     30,
		RateLimit:      0, // disabled for handler tests
	}
}

func createTestServer(t *testing.T, cfg *models.Config, completer models.Completer) (*Server, *chat.Store) {
	t.Helper()

	ds, err := dataset.GenerateSynthetic(cfg, nil)
	require.NoError(t, err)

	sessions := chat.NewStore(time.Duration(cfg.SessionTTL) * time.Minute)
	t.Cleanup(sessions.Close)

	return New(cfg, ds, completer, sessions), sessions
}

// retrieveEnvelope performs the request against the full middleware stack
// and decodes the response envelope.
func retrieveEnvelope(t *testing.T, handler http.Handler, req *http.Request) (*http.Response, models.ResponseModel) {
	t.Helper()

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	resp := recorder.Result()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var envelope models.ResponseModel
	require.NoError(t, json.Unmarshal(body, &envelope))
	return resp, envelope
}
