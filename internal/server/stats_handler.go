package server

import (
	"net/http"

	"github.com/Alias1177/econagent/internal/stats"
	"github.com/Alias1177/econagent/models"
)

func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	ds := s.Dataset()
	described := stats.Describe(ds)

	s.sendResponse(w, r, struct {
		Source   string               `json:"source"`
		Rows     int                  `json:"rows"`
		Stats    []models.ColumnStats `json:"stats"`
		Missing  map[string]int       `json:"missing"`
		Markdown string               `json:"markdown"`
	}{
		Source:   ds.Source,
		Rows:     ds.Rows(),
		Stats:    described,
		Missing:  stats.MissingCounts(ds),
		Markdown: stats.SummaryMarkdown(described),
	})
}

func (s *Server) correlationHandler(w http.ResponseWriter, r *http.Request) {
	s.sendResponse(w, r, stats.CorrelationMatrix(s.Dataset()))
}

func (s *Server) timeseriesHandler(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("column")
	if name == "" {
		s.badRequestResponse(w, r, "missing column parameter")
		return
	}

	ds := s.Dataset()
	col := ds.Column(name)
	if col == nil {
		s.badRequestResponse(w, r, "unknown column: "+name)
		return
	}

	s.sendResponse(w, r, struct {
		Name   string        `json:"name"`
		Dates  []string      `json:"dates"`
		Series models.Column `json:"series"`
	}{
		Name:   col.Name,
		Dates:  ds.Dates,
		Series: *col,
	})
}
