package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/Alias1177/econagent/models"
)

const daysPerYear = 365

// ColumnSpec describes the seasonal signal of one synthetic column:
// base + amplitude*sin(2*pi*(t+phase)/365) + N(0, sigma). Cumulative
// columns accumulate the daily signal instead (random-walk behaviour)
// and add a constant offset.
type ColumnSpec struct {
	Name       string  `yaml:"name"`
	Base       float64 `yaml:"base"`
	Amplitude  float64 `yaml:"amplitude"`
	PhaseDays  int     `yaml:"phaseDays"`
	NoiseSigma float64 `yaml:"noiseSigma"`
	Cumulative bool    `yaml:"cumulative"`
	Offset     float64 `yaml:"offset"`
}

// DefaultColumns returns the six hypothetical economic indicators the
// service generates out of the box.
func DefaultColumns() []ColumnSpec {
	return []ColumnSpec{
		{Name: "GDP_Growth", Base: 2, Amplitude: 0.5, PhaseDays: 0, NoiseSigma: 0.2},
		{Name: "Inflation_Rate", Base: 3, Amplitude: 0.3, PhaseDays: 30, NoiseSigma: 0.1},
		{Name: "Unemployment_Rate", Base: 5, Amplitude: -0.2, PhaseDays: 60, NoiseSigma: 0.15},
		{Name: "Interest_Rate", Base: 4, Amplitude: 0.1, PhaseDays: 90, NoiseSigma: 0.05},
		{Name: "Consumer_Sentiment", Base: 100, Amplitude: 5, PhaseDays: 120, NoiseSigma: 2},
		{Name: "Stock_Index", Base: 0.1, Amplitude: 0.02, PhaseDays: 0, NoiseSigma: 1, Cumulative: true, Offset: 3000},
	}
}

// GenerateSynthetic builds the synthetic daily dataset: one row per day
// starting at cfg.DatasetStart, one column per spec. The RNG is seeded from
// config so the same configuration always produces the same table. Passing
// nil specs uses DefaultColumns.
func GenerateSynthetic(cfg *models.Config, specs []ColumnSpec) (*models.Dataset, error) {
	if cfg.DatasetDays <= 0 {
		return nil, fmt.Errorf("invalid dataset size: %d days", cfg.DatasetDays)
	}
	start, err := time.Parse("2006-01-02", cfg.DatasetStart)
	if err != nil {
		return nil, fmt.Errorf("parsing start date %q: %w", cfg.DatasetStart, err)
	}
	if specs == nil {
		specs = DefaultColumns()
	}

	rng := rand.New(rand.NewSource(int64(cfg.DatasetSeed)))

	dates := make([]string, cfg.DatasetDays)
	for t := 0; t < cfg.DatasetDays; t++ {
		dates[t] = start.AddDate(0, 0, t).Format("2006-01-02")
	}

	columns := make([]models.Column, 0, len(specs))
	for _, spec := range specs {
		values := make([]float64, cfg.DatasetDays)
		sum := 0.0
		for t := 0; t < cfg.DatasetDays; t++ {
			season := spec.Amplitude * math.Sin(2*math.Pi*float64(t+spec.PhaseDays)/daysPerYear)
			signal := spec.Base + season + rng.NormFloat64()*spec.NoiseSigma
			if spec.Cumulative {
				sum += signal
				values[t] = sum + spec.Offset
			} else {
				values[t] = signal
			}
		}
		columns = append(columns, models.Column{Name: spec.Name, Values: values})
	}

	return &models.Dataset{
		Source:  "synthetic",
		Dates:   dates,
		Columns: columns,
		Created: time.Now(),
	}, nil
}
