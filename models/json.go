package models

import (
	"encoding/json"
	"math"
)

// JSON has no NaN literal, so missing cells and undefined statistics are
// encoded as null.

func nullableFloat(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func nullableFloats(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i, v := range values {
		out[i] = nullableFloat(v)
	}
	return out
}

func (c Column) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name   string     `json:"name"`
		Values []*float64 `json:"values"`
	}{
		Name:   c.Name,
		Values: nullableFloats(c.Values),
	})
}

func (s ColumnStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name    string   `json:"name"`
		Mean    *float64 `json:"mean"`
		Std     *float64 `json:"std"`
		Min     *float64 `json:"min"`
		Median  *float64 `json:"median"`
		Max     *float64 `json:"max"`
		Missing int      `json:"missing"`
	}{
		Name:    s.Name,
		Mean:    nullableFloat(s.Mean),
		Std:     nullableFloat(s.Std),
		Min:     nullableFloat(s.Min),
		Median:  nullableFloat(s.Median),
		Max:     nullableFloat(s.Max),
		Missing: s.Missing,
	})
}

func (m CorrelationMatrix) MarshalJSON() ([]byte, error) {
	cells := make([][]*float64, len(m.Cells))
	for i, row := range m.Cells {
		cells[i] = nullableFloats(row)
	}
	return json.Marshal(struct {
		Names []string     `json:"names"`
		Cells [][]*float64 `json:"cells"`
	}{
		Names: m.Names,
		Cells: cells,
	})
}
