package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Alias1177/econagent/internal/agent"
	"github.com/Alias1177/econagent/models"
)

type chatRequest struct {
	SessionID string `json:"sessionId"`
	Question  string `json:"question"`
}

type chatResponse struct {
	SessionID  string               `json:"sessionId"`
	Answer     string               `json:"answer"`
	Transcript []models.ChatMessage `json:"transcript"`
}

// chatHandler answers a question about the current dataset. The EDA summary
// is rebuilt on every exchange so that answers reflect an uploaded dataset
// immediately.
func (s *Server) chatHandler(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		s.badRequestResponse(w, r, "invalid JSON body")
		return
	}
	req.Question = strings.TrimSpace(req.Question)
	if req.Question == "" {
		s.badRequestResponse(w, r, "question must not be empty")
		return
	}

	session := s.sessions.Get(req.SessionID)
	summary := agent.DatasetSummary(s.Dataset())

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(s.cfg.RequestTimeout)*time.Second)
	defer cancel()

	answer, err := s.agent.Answer(ctx, req.Question, summary)
	if err != nil {
		s.serverErrorResponse(w, r, err)
		return
	}

	s.sessions.Append(session.ID, "user", req.Question)
	s.sessions.Append(session.ID, "assistant", answer)

	s.sendResponse(w, r, chatResponse{
		SessionID:  session.ID,
		Answer:     answer,
		Transcript: s.sessions.Transcript(session.ID),
	})
}
