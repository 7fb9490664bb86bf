package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatRequestBody(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestChatHandler(t *testing.T) {
	completer := &stubCompleter{answer: "GDP growth is seasonal with a mean near 2%."}
	srv, _ := createTestServer(t, testServerConfig(), completer)
	handler := srv.Routes()

	resp, envelope := retrieveEnvelope(t, handler, chatRequestBody(`{"question":"Describe the GDP trend."}`))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, completer.answer, data["answer"])

	sessionID, ok := data["sessionId"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, sessionID)

	transcript, ok := data["transcript"].([]interface{})
	require.True(t, ok)
	require.Len(t, transcript, 2)

	userMsg, ok := transcript[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "user", userMsg["role"])
	assert.Equal(t, "Describe the GDP trend.", userMsg["content"])

	// The EDA summary travels with the question.
	assert.Equal(t, "Describe the GDP trend.", completer.gotQuestion)
	assert.Contains(t, completer.gotSummary, "EDA summary:")
	assert.Contains(t, completer.gotSummary, "GDP_Growth")

	// A follow-up with the same session ID extends the transcript.
	resp, envelope = retrieveEnvelope(t, handler, chatRequestBody(`{"sessionId":"`+sessionID+`","question":"And inflation?"}`))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok = envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, sessionID, data["sessionId"])

	transcript, ok = data["transcript"].([]interface{})
	require.True(t, ok)
	assert.Len(t, transcript, 4)
}

func TestChatHandlerValidation(t *testing.T) {
	srv, _ := createTestServer(t, testServerConfig(), &stubCompleter{})
	handler := srv.Routes()

	resp, envelope := retrieveEnvelope(t, handler, chatRequestBody(`{"question":"   "}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "question must not be empty", envelope.Text)

	resp, envelope = retrieveEnvelope(t, handler, chatRequestBody(`not json`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid JSON body", envelope.Text)
}

func TestChatHandlerModelFailure(t *testing.T) {
	completer := &stubCompleter{err: errors.New("api unreachable")}
	srv, sessions := createTestServer(t, testServerConfig(), completer)
	handler := srv.Routes()

	resp, envelope := retrieveEnvelope(t, handler, chatRequestBody(`{"question":"Anything?"}`))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "internal server error", envelope.Text)

	// Failed exchanges leave no partial transcript behind.
	session := sessions.Get("")
	assert.Empty(t, sessions.Transcript(session.ID))
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := testServerConfig()
	cfg.RateLimit = 1
	srv, _ := createTestServer(t, cfg, &stubCompleter{})
	handler := srv.Routes()

	first := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	first.RemoteAddr = "10.1.2.3:5555"
	resp, _ := retrieveEnvelope(t, handler, first)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	second := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	second.RemoteAddr = "10.1.2.3:5556"
	resp, envelope := retrieveEnvelope(t, handler, second)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "rate limit exceeded", envelope.Text)

	// A different client has its own limiter.
	other := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	other.RemoteAddr = "10.9.9.9:5555"
	resp, _ = retrieveEnvelope(t, handler, other)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
