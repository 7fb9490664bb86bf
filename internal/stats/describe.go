package stats

import (
	"math"
	"sort"

	"github.com/Alias1177/econagent/models"
)

// Describe computes mean, sample standard deviation, min, median and max
// for every column of the dataset, skipping NaN cells. Results are rounded
// to 4 decimals. Column order is preserved.
func Describe(ds *models.Dataset) []models.ColumnStats {
	out := make([]models.ColumnStats, 0, len(ds.Columns))
	for _, col := range ds.Columns {
		out = append(out, describeColumn(col))
	}
	return out
}

func describeColumn(col models.Column) models.ColumnStats {
	values := make([]float64, 0, len(col.Values))
	for _, v := range col.Values {
		if !math.IsNaN(v) {
			values = append(values, v)
		}
	}

	stats := models.ColumnStats{
		Name:    col.Name,
		Missing: len(col.Values) - len(values),
	}
	if len(values) == 0 {
		stats.Mean = math.NaN()
		stats.Std = math.NaN()
		stats.Min = math.NaN()
		stats.Median = math.NaN()
		stats.Max = math.NaN()
		return stats
	}

	stats.Mean = round4(mean(values))
	stats.Std = round4(sampleStd(values))
	stats.Min = round4(minOf(values))
	stats.Median = round4(median(values))
	stats.Max = round4(maxOf(values))
	return stats
}

// MissingCounts returns the number of NaN cells per column, in column order.
func MissingCounts(ds *models.Dataset) map[string]int {
	counts := make(map[string]int, len(ds.Columns))
	for i := range ds.Columns {
		counts[ds.Columns[i].Name] = ds.Columns[i].MissingCount()
	}
	return counts
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStd uses the n-1 denominator. A single observation has no spread.
func sampleStd(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
