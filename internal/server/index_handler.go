package server

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed index.html
var templateFS embed.FS

type indexData struct {
	Title  string
	Source string
	Rows   int
}

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	tmpl, err := template.ParseFS(templateFS, "index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	ds := s.Dataset()
	data := indexData{
		Title:  "econagent — economic EDA assistant",
		Source: ds.Source,
		Rows:   ds.Rows(),
	}

	w.Header().Set("Content-Type", "text/html")
	if err := tmpl.Execute(w, data); err != nil {
		s.logger.Error().Err(err).Msg("failed to render index page")
	}
}
