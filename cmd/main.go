package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wikisummary/internal/article"
	"wikisummary/internal/bot"
	"wikisummary/internal/config"
	"wikisummary/internal/scheduler"
	"wikisummary/internal/server"
	"wikisummary/internal/summarizer"
	"wikisummary/internal/wiki"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.WarnContext(ctx, "Failed to load .env file",
			"error", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.ErrorContext(ctx, "Failed to load config",
			"error", err)

		return
	}

	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(log)

	s := initSummarizer(ctx, cfg, log)
	wikiClient := wiki.NewClient(cfg.WikiBaseURL, &http.Client{}, log)
	svc := article.NewService(wikiClient, s, log)

	gin.SetMode(gin.ReleaseMode)
	srv := server.New(cfg.Port, server.NewRouter(svc, log))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()
	log.InfoContext(ctx, "Server is running",
		"addr", srv.Addr(),
		"wikiBaseURL", cfg.WikiBaseURL,
		"model", cfg.LLMModel)

	if cfg.BotEnabled() {
		stopBot, botErr := startBot(ctx, cfg, svc, log)
		if botErr != nil {
			log.ErrorContext(ctx, "Failed to start bot",
				"error", botErr,
				"allowedUsersCount", len(cfg.AllowedUsers))

			return
		}
		defer stopBot()
	} else {
		log.InfoContext(ctx, "TELEGRAM_TOKEN is missing so bot is disabled",
			"envVar", "TELEGRAM_TOKEN")
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-c:
		log.InfoContext(ctx, "Shutdown signal is received",
			"signal", sig.String())
	case err = <-errCh:
		log.ErrorContext(ctx, "Server is stopped unexpectedly",
			"error", err,
			"addr", srv.Addr())
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = srv.Stop(shutdownCtx); err != nil {
		log.ErrorContext(shutdownCtx, "Failed to stop server",
			"error", err)
	}

	log.InfoContext(shutdownCtx, "Exiting...",
		"uptimeSeconds", time.Since(start).Seconds())
}

func initSummarizer(ctx context.Context, cfg config.Config, log *slog.Logger) summarizer.Summarizer {
	if cfg.GroqAPIKey == "" {
		log.WarnContext(ctx, "GROQ_API_KEY is missing so summary requests will fail",
			"envVar", "GROQ_API_KEY")
	}

	s, err := summarizer.NewOpenAISummarizer(cfg.GroqAPIKey, cfg.LLMBaseURL, cfg.LLMModel)
	if err != nil {
		log.ErrorContext(ctx, "Failed to create summarizer so summary requests will fail",
			"error", err,
			"model", cfg.LLMModel)

		return nil
	}

	log.InfoContext(ctx, "Summarizer is initialized",
		"baseURL", cfg.LLMBaseURL,
		"model", cfg.LLMModel)

	return s
}

func startBot(
	ctx context.Context,
	cfg config.Config,
	svc *article.Service,
	log *slog.Logger,
) (func(), error) {
	botInst, err := bot.New(cfg.TelegramToken, svc, cfg.AllowedUsers, log)
	if err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "Bot is initialized",
		"allowedUsersCount", len(cfg.AllowedUsers))

	sched := scheduler.New(ctx, cfg.DigestSpec, cfg.DigestChatIDs, svc, botInst, log)
	if err = sched.Start(); err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "Scheduler is started",
		"spec", cfg.DigestSpec,
		"timezone", scheduler.Timezone,
		"digestChatCount", len(cfg.DigestChatIDs))

	go botInst.Start(ctx)
	log.InfoContext(ctx, "Bot is started")

	return sched.Stop, nil
}
