package server

import (
	"net/http"
	"sync"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/econagent/internal/chat"
	"github.com/Alias1177/econagent/models"
)

// Server holds the dependencies for the HTTP handlers: the configuration,
// the in-memory dataset, the chat session store and the agent that answers
// questions. The dataset is replaced wholesale on upload, so reads take the
// lock briefly and work on the swapped pointer.
type Server struct {
	cfg      *models.Config
	logger   zerolog.Logger
	agent    models.Completer
	sessions *chat.Store

	mu sync.RWMutex
	ds *models.Dataset
}

// New creates a Server around an initial dataset.
func New(cfg *models.Config, ds *models.Dataset, completer models.Completer, sessions *chat.Store) *Server {
	return &Server{
		cfg:      cfg,
		logger:   log.With().Str("component", "http_server").Logger(),
		agent:    completer,
		sessions: sessions,
		ds:       ds,
	}
}

// Dataset returns the current dataset.
func (s *Server) Dataset() *models.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds
}

// ReplaceDataset swaps in an uploaded dataset.
func (s *Server) ReplaceDataset(ds *models.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ds = ds
}

// Routes wires the endpoints and middleware.
func (s *Server) Routes() http.Handler {
	router := httprouter.New()
	router.HandlerFunc(http.MethodGet, "/", s.indexHandler)
	router.HandlerFunc(http.MethodGet, "/api/dataset", s.datasetHandler)
	router.HandlerFunc(http.MethodPost, "/api/dataset", s.uploadHandler)
	router.HandlerFunc(http.MethodGet, "/api/stats", s.statsHandler)
	router.HandlerFunc(http.MethodGet, "/api/correlation", s.correlationHandler)
	router.HandlerFunc(http.MethodGet, "/api/timeseries", s.timeseriesHandler)
	router.HandlerFunc(http.MethodPost, "/api/chat", s.chatHandler)

	rateLimited := NewRateLimitMiddleware(s.cfg.RateLimit)(router)
	return NewRequestLoggingMiddleware(s.logger)(rateLimited)
}
