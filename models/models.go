package models

import (
	"math"
	"time"
)

type Config struct {
	Port            int     `env:"PORT" envDefault:"4000"`
	Env             string  `env:"ENV" envDefault:"development"`
	OpenAIAPIKey    string  `env:"OPENAI_API_KEY" envDefault:"-"`
	OpenAIModel     string  `env:"OPENAI_MODEL" envDefault:"gpt-4"`
	MaxAnswerTokens int     `env:"MAX_ANSWER_TOKENS" envDefault:"200"`
	Temperature     float64 `env:"TEMPERATURE" envDefault:"0.7"`
	DatasetDays     int     `env:"DATASET_DAYS" envDefault:"400"`
	DatasetStart    string  `env:"DATASET_START" envDefault:"2023-01-01"`
	DatasetSeed     int     `env:"DATASET_SEED" envDefault:"42"`
	ColumnsFile     string  `env:"COLUMNS_FILE" envDefault:""`
	MinUploadRows   int     `env:"MIN_UPLOAD_ROWS" envDefault:"300"`
	MinUploadCols   int     `env:"MIN_UPLOAD_COLS" envDefault:"6"`
	LogLevel        string  `env:"LOG_LEVEL" envDefault:"info"`
	RequestTimeout  int     `env:"REQUEST_TIMEOUT" envDefault:"30"` // seconds
	RateLimit       int     `env:"RATE_LIMIT" envDefault:"5"`       // requests per second per client
	SessionTTL      int     `env:"SESSION_TTL" envDefault:"30"`     // minutes of idle time before a chat session is dropped
}

// Column is a single numeric series of the dataset. Missing cells are NaN.
type Column struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Dataset is the in-memory tabular dataset: one date per row plus a set of
// numeric columns. It is built once (synthetic or uploaded), read-only
// afterward, and discarded when the process exits.
type Dataset struct {
	Source  string    `json:"source"`
	Dates   []string  `json:"dates"` // ISO dates, one per row
	Columns []Column  `json:"columns"`
	Created time.Time `json:"created"`
}

// Rows returns the number of observations in the dataset.
func (d *Dataset) Rows() int {
	return len(d.Dates)
}

// Column returns the named column, or nil when it does not exist.
func (d *Dataset) Column(name string) *Column {
	for i := range d.Columns {
		if d.Columns[i].Name == name {
			return &d.Columns[i]
		}
	}
	return nil
}

// MissingCount returns the number of NaN cells in the column.
func (c *Column) MissingCount() int {
	count := 0
	for _, v := range c.Values {
		if math.IsNaN(v) {
			count++
		}
	}
	return count
}

// ColumnStats holds the descriptive statistics for one numeric column.
type ColumnStats struct {
	Name    string  `json:"name"`
	Mean    float64 `json:"mean"`
	Std     float64 `json:"std"`
	Min     float64 `json:"min"`
	Median  float64 `json:"median"`
	Max     float64 `json:"max"`
	Missing int     `json:"missing"`
}

// CorrelationMatrix holds pairwise Pearson correlations between numeric
// columns. Cells[i][j] corresponds to Names[i] vs Names[j].
type CorrelationMatrix struct {
	Names []string    `json:"names"`
	Cells [][]float64 `json:"cells"`
}

// ChatMessage is a single entry of a conversation transcript.
type ChatMessage struct {
	Role    string    `json:"role"` // "user" or "assistant"
	Content string    `json:"content"`
	SentAt  time.Time `json:"sentAt"`
}

// ChatSession holds the conversation transcript for one session. The
// transcript lives in memory only and is dropped when the session expires.
type ChatSession struct {
	ID           string        `json:"id"`
	Messages     []ChatMessage `json:"messages"`
	LastActivity time.Time     `json:"lastActivity"`
}
