package server

import (
	"fmt"
	"net/http"

	"github.com/Alias1177/econagent/internal/dataset"
	"github.com/Alias1177/econagent/internal/stats"
)

const maxUploadBytes = 20 << 20 // 20 MiB

func (s *Server) datasetHandler(w http.ResponseWriter, r *http.Request) {
	ds := s.Dataset()
	s.sendResponse(w, r, ds)
}

// uploadHandler replaces the dataset wholesale with a user-supplied CSV.
// The file must satisfy the minimum shape requirements; the response
// reports per-column missing-value counts so the page can show them.
func (s *Server) uploadHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.badRequestResponse(w, r, fmt.Sprintf("parsing upload: %v", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.badRequestResponse(w, r, "missing file field")
		return
	}
	defer file.Close()

	ds, err := dataset.ParseCSV(file)
	if err != nil {
		s.badRequestResponse(w, r, err.Error())
		return
	}
	if err := dataset.Validate(ds, s.cfg.MinUploadRows, s.cfg.MinUploadCols); err != nil {
		s.badRequestResponse(w, r, err.Error())
		return
	}

	s.ReplaceDataset(ds)
	s.logger.Info().
		Str("filename", header.Filename).
		Int("rows", ds.Rows()).
		Int("columns", len(ds.Columns)).
		Msg("dataset replaced by upload")

	s.sendResponse(w, r, struct {
		Source  string         `json:"source"`
		Rows    int            `json:"rows"`
		Columns int            `json:"columns"`
		Missing map[string]int `json:"missing"`
	}{
		Source:  ds.Source,
		Rows:    ds.Rows(),
		Columns: len(ds.Columns),
		Missing: stats.MissingCounts(ds),
	})
}
