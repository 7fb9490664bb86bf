package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/econagent/internal/agent"
	"github.com/Alias1177/econagent/internal/chat"
	"github.com/Alias1177/econagent/internal/config"
	"github.com/Alias1177/econagent/internal/dataset"
	"github.com/Alias1177/econagent/internal/stats"
	"github.com/Alias1177/econagent/models"
)

// chatSessions maps Telegram chat IDs to agent session IDs so that every
// chat keeps its own transcript.
var chatSessions = make(map[int64]string)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}
}

// The Telegram bot is a second front-end to the chat agent: every incoming
// message is answered with the same EDA-summary context the web page uses.
func main() {
	lvl, _ := zerolog.ParseLevel("info")
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	botToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	if botToken == "" {
		logger.Fatal().Msg("TELEGRAM_BOT_TOKEN not set in environment")
	}

	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize Telegram bot")
	}
	logger.Info().Str("username", bot.Self.UserName).Msg("Authorized on Telegram")

	var specs []dataset.ColumnSpec
	if cfg.ColumnsFile != "" {
		specs, err = dataset.LoadColumnsFile(cfg.ColumnsFile)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to load columns file")
		}
	}
	ds, err := dataset.GenerateSynthetic(cfg, specs)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to generate dataset")
	}

	completer := agent.NewClient(agent.ClientOptions{
		APIKey:      cfg.OpenAIAPIKey,
		Model:       cfg.OpenAIModel,
		MaxTokens:   cfg.MaxAnswerTokens,
		Temperature: cfg.Temperature,
	})

	sessions := chat.NewStore(time.Duration(cfg.SessionTTL) * time.Minute)
	defer sessions.Close()

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := bot.GetUpdatesChan(updateConfig)

	for update := range updates {
		if update.Message == nil {
			continue
		}
		handleMessage(bot, update.Message, cfg, ds, completer, sessions, &logger)
	}
}

func handleMessage(
	bot *tgbotapi.BotAPI,
	message *tgbotapi.Message,
	cfg *models.Config,
	ds *models.Dataset,
	completer models.Completer,
	sessions *chat.Store,
	logger *zerolog.Logger,
) {
	chatID := message.Chat.ID
	text := strings.TrimSpace(message.Text)

	switch {
	case text == "/start":
		delete(chatSessions, chatID)
		reply(bot, chatID, "Welcome to the econagent bot! Ask me about the dataset or any economic concept. Send /stats for the summary table.", logger)
		return
	case text == "/stats":
		table := stats.SummaryMarkdown(stats.Describe(ds))
		reply(bot, chatID, fmt.Sprintf("Dataset: %s (%d rows)\n\n%s", ds.Source, ds.Rows(), table), logger)
		return
	case text == "":
		return
	}

	session := sessions.Get(chatSessions[chatID])
	chatSessions[chatID] = session.ID

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.RequestTimeout)*time.Second)
	defer cancel()

	answer, err := completer.Answer(ctx, text, agent.DatasetSummary(ds))
	if err != nil {
		logger.Error().Err(err).Int64("chat_id", chatID).Msg("Model request failed")
		reply(bot, chatID, "Sorry, I could not get an answer right now. Try again in a moment.", logger)
		return
	}

	sessions.Append(session.ID, "user", text)
	sessions.Append(session.ID, "assistant", answer)
	reply(bot, chatID, answer, logger)
}

func reply(bot *tgbotapi.BotAPI, chatID int64, text string, logger *zerolog.Logger) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := bot.Send(msg); err != nil {
		logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send message")
	}
}
