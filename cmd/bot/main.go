package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"

	"github.com/vpbots/presentation_bot/internal/app"
	"github.com/vpbots/presentation_bot/internal/client"
	"github.com/vpbots/presentation_bot/internal/config"
	"github.com/vpbots/presentation_bot/internal/controller"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting presentation bot",
		"environment", cfg.Environment,
		"http_timeout", cfg.HTTPTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Общий клиент внешних сервисов, живёт весь процесс
	remote := client.New(cfg.IngestAPIBase, cfg.PresentonAPIBase, cfg.PresentonAPIKey, cfg.HTTPTimeout, logger)
	defer remote.Close()

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Sugar().Fatalw("Failed to create bot", "error", err)
	}

	botController := controller.NewBotController(b, remote, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Sugar().Fatalw("Failed to register handlers", "error", err)
	}

	// Сервер мониторинга опционален
	if cfg.MetricsAddr != "" {
		metricsServer := app.NewMetricsServer(cfg.MetricsAddr, logger)
		metricsServer.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			metricsServer.Stop(shutdownCtx)
		}()
	}

	// Блокируется до SIGINT/SIGTERM
	if err := botController.Start(ctx); err != nil {
		logger.Sugar().Errorw("Bot stopped with error", "error", err)
	}

	logger.Info("Bot stopped")
}
