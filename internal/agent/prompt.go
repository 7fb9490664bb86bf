package agent

import (
	"fmt"
	"strings"

	"github.com/Alias1177/econagent/internal/stats"
	"github.com/Alias1177/econagent/models"
)

// BuildPrompt composes the final prompt. Separator blocks encourage the
// model to answer the question instead of continuing the context.
func BuildPrompt(question, summary string) string {
	if summary == "" {
		return fmt.Sprintf("Question:\n%s\n\nAnswer:", question)
	}
	return fmt.Sprintf("Context:\n%s\n\nQuestion:\n%s\n\nAnswer:", summary, question)
}

// DatasetSummary renders the EDA context passed along with every question:
// the descriptive-statistics table plus a one-line description of what it
// shows.
func DatasetSummary(ds *models.Dataset) string {
	table := stats.SummaryMarkdown(stats.Describe(ds))

	var sb strings.Builder
	sb.WriteString("EDA summary:\n")
	sb.WriteString(table)
	sb.WriteString("\nDescription: the table above shows summary statistics ")
	sb.WriteString("(mean, standard deviation, minimum, median and maximum) ")
	sb.WriteString(fmt.Sprintf("for each numeric column of the %s dataset (%d rows).", ds.Source, ds.Rows()))
	return sb.String()
}
