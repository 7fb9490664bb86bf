package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/econagent/internal/agent"
	"github.com/Alias1177/econagent/internal/config"
	"github.com/Alias1177/econagent/internal/dataset"
	"github.com/Alias1177/econagent/internal/stats"
	"github.com/Alias1177/econagent/models"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}
}

// The analyzer is the CLI front-end to the same EDA pipeline the server
// runs: generate or load a dataset, print the statistics tables, and
// optionally ask the model a single question about them.
func main() {
	csvPath := flag.String("csv", "", "analyze a CSV file instead of the synthetic dataset")
	question := flag.String("ask", "", "question to send to the model along with the EDA summary")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	setupLogging(cfg.LogLevel)

	ds, err := loadDataset(cfg, *csvPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load dataset")
	}

	described := stats.Describe(ds)
	fmt.Printf("Dataset: %s (%d rows, %d columns)\n\n", ds.Source, ds.Rows(), len(ds.Columns))
	fmt.Println(stats.SummaryMarkdown(described))
	printCorrelation(stats.CorrelationMatrix(ds))

	if *question == "" {
		return
	}

	completer := agent.NewClient(agent.ClientOptions{
		APIKey:      cfg.OpenAIAPIKey,
		Model:       cfg.OpenAIModel,
		MaxTokens:   cfg.MaxAnswerTokens,
		Temperature: cfg.Temperature,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.RequestTimeout)*time.Second)
	defer cancel()

	answer, err := completer.Answer(ctx, *question, agent.DatasetSummary(ds))
	if err != nil {
		log.Fatal().Err(err).Msg("Model request failed")
	}
	fmt.Printf("\nQ: %s\nA: %s\n", *question, answer)
}

func loadDataset(cfg *models.Config, csvPath string) (*models.Dataset, error) {
	if csvPath == "" {
		var specs []dataset.ColumnSpec
		if cfg.ColumnsFile != "" {
			var err error
			specs, err = dataset.LoadColumnsFile(cfg.ColumnsFile)
			if err != nil {
				return nil, err
			}
		}
		return dataset.GenerateSynthetic(cfg, specs)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dataset.ParseCSV(f)
}

func printCorrelation(matrix models.CorrelationMatrix) {
	fmt.Println("Correlation matrix:")
	fmt.Printf("%-20s", "")
	for _, name := range matrix.Names {
		fmt.Printf("%12s", truncate(name, 11))
	}
	fmt.Println()
	for i, row := range matrix.Cells {
		fmt.Printf("%-20s", truncate(matrix.Names[i], 19))
		for _, cell := range row {
			fmt.Printf("%12.2f", cell)
		}
		fmt.Println()
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// setupLogging configures the logger
func setupLogging(logLevel string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Logger.Level(level)
}
