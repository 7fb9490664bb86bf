package stats

import (
	"math"

	"github.com/Alias1177/econagent/models"
)

// CorrelationMatrix computes pairwise Pearson correlations between all
// columns of the dataset. Rows where either value is NaN are excluded
// pairwise. Pairs with fewer than two complete observations, or with a
// constant series, yield NaN.
func CorrelationMatrix(ds *models.Dataset) models.CorrelationMatrix {
	n := len(ds.Columns)
	matrix := models.CorrelationMatrix{
		Names: make([]string, n),
		Cells: make([][]float64, n),
	}
	for i := range ds.Columns {
		matrix.Names[i] = ds.Columns[i].Name
		matrix.Cells[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		matrix.Cells[i][i] = 1
		for j := i + 1; j < n; j++ {
			r := pearson(ds.Columns[i].Values, ds.Columns[j].Values)
			matrix.Cells[i][j] = r
			matrix.Cells[j][i] = r
		}
	}
	return matrix
}

func pearson(xs, ys []float64) float64 {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}

	var sumX, sumY float64
	count := 0
	for k := 0; k < n; k++ {
		if math.IsNaN(xs[k]) || math.IsNaN(ys[k]) {
			continue
		}
		sumX += xs[k]
		sumY += ys[k]
		count++
	}
	if count < 2 {
		return math.NaN()
	}
	meanX := sumX / float64(count)
	meanY := sumY / float64(count)

	var cov, varX, varY float64
	for k := 0; k < n; k++ {
		if math.IsNaN(xs[k]) || math.IsNaN(ys[k]) {
			continue
		}
		dx := xs[k] - meanX
		dy := ys[k] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return math.NaN()
	}
	return round4(cov / math.Sqrt(varX*varY))
}
