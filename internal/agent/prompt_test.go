package agent

import (
	"strings"
	"testing"

	"github.com/Alias1177/econagent/models"
)

func TestBuildPrompt(t *testing.T) {
	tests := []struct {
		name     string
		question string
		summary  string
		want     string
	}{
		{
			name:     "with context",
			question: "What drives inflation?",
			summary:  "mean inflation 3.0",
			want:     "Context:\nmean inflation 3.0\n\nQuestion:\nWhat drives inflation?\n\nAnswer:",
		},
		{
			name:     "without context",
			question: "Define deflation.",
			summary:  "",
			want:     "Question:\nDefine deflation.\n\nAnswer:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPrompt(tt.question, tt.summary)
			if got != tt.want {
				t.Errorf("BuildPrompt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDatasetSummary(t *testing.T) {
	ds := &models.Dataset{
		Source: "synthetic",
		Dates:  []string{"2023-01-01", "2023-01-02"},
		Columns: []models.Column{
			{Name: "GDP_Growth", Values: []float64{2.0, 2.2}},
		},
	}

	summary := DatasetSummary(ds)
	if !strings.HasPrefix(summary, "EDA summary:") {
		t.Errorf("summary should start with the EDA header:\n%s", summary)
	}
	if !strings.Contains(summary, "GDP_Growth") {
		t.Errorf("summary missing column name:\n%s", summary)
	}
	if !strings.Contains(summary, "synthetic dataset (2 rows)") {
		t.Errorf("summary missing dataset description:\n%s", summary)
	}
}
