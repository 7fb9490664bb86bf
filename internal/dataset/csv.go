package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Alias1177/econagent/models"
)

// ParseCSV reads a user-supplied CSV file into a Dataset, replacing the
// synthetic table wholesale. The first row must be a header. A non-numeric
// first column is treated as the date index; remaining non-numeric columns
// are dropped. Empty cells and NA/NaN/null markers become NaN so that
// missing-value counts can be reported.
func ParseCSV(r io.Reader) (*models.Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("CSV has no data rows")
	}

	header := records[0]
	rows := records[1:]

	numeric := make([]bool, len(header))
	for col := range header {
		numeric[col] = columnIsNumeric(rows, col)
	}

	dates := buildDateIndex(rows, numeric)

	columns := make([]models.Column, 0, len(header))
	for col, name := range header {
		if !numeric[col] {
			continue
		}
		values := make([]float64, len(rows))
		for i, row := range rows {
			values[i] = parseCell(cellAt(row, col))
		}
		columns = append(columns, models.Column{Name: name, Values: values})
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("CSV contains no numeric columns")
	}

	return &models.Dataset{
		Source:  "upload",
		Dates:   dates,
		Columns: columns,
		Created: time.Now(),
	}, nil
}

// Validate enforces the upload shape requirements: at least minRows
// observations and minCols numeric columns.
func Validate(ds *models.Dataset, minRows, minCols int) error {
	if ds.Rows() < minRows {
		return fmt.Errorf("dataset has %d rows, need at least %d", ds.Rows(), minRows)
	}
	if len(ds.Columns) < minCols {
		return fmt.Errorf("dataset has %d numeric columns, need at least %d", len(ds.Columns), minCols)
	}
	return nil
}

// columnIsNumeric reports whether the first non-missing cell of the column
// parses as a float.
func columnIsNumeric(rows [][]string, col int) bool {
	for _, row := range rows {
		cell := cellAt(row, col)
		if isMissing(cell) {
			continue
		}
		_, err := strconv.ParseFloat(cell, 64)
		return err == nil
	}
	// All cells missing: treat as numeric so the missing counts show up.
	return true
}

// buildDateIndex uses the first non-numeric column as the date index when
// one exists, otherwise falls back to 1-based row numbers.
func buildDateIndex(rows [][]string, numeric []bool) []string {
	dateCol := -1
	for col, isNum := range numeric {
		if !isNum {
			dateCol = col
			break
		}
	}

	dates := make([]string, len(rows))
	for i, row := range rows {
		if dateCol >= 0 {
			dates[i] = cellAt(row, dateCol)
		} else {
			dates[i] = strconv.Itoa(i + 1)
		}
	}
	return dates
}

func cellAt(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func isMissing(cell string) bool {
	switch strings.ToLower(cell) {
	case "", "na", "n/a", "nan", "null":
		return true
	}
	return false
}

func parseCell(cell string) float64 {
	if isMissing(cell) {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
