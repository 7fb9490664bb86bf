package stats

import (
	"fmt"
	"math"
	"strings"

	"github.com/Alias1177/econagent/models"
)

// SummaryMarkdown renders descriptive statistics as a pipe-style Markdown
// table. The same rendering serves the stats display and the context block
// handed to the language model.
func SummaryMarkdown(stats []models.ColumnStats) string {
	if len(stats) == 0 {
		return "No data available"
	}

	var sb strings.Builder
	sb.WriteString("| column | mean | std | min | median | max | missing |\n")
	sb.WriteString("|---|---|---|---|---|---|---|\n")
	for _, s := range stats {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s | %d |\n",
			s.Name,
			formatCell(s.Mean),
			formatCell(s.Std),
			formatCell(s.Min),
			formatCell(s.Median),
			formatCell(s.Max),
			s.Missing,
		))
	}
	return sb.String()
}

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", v)
}
