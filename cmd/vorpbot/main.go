package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/kiratsb/vorpbot/internal/api/espn"
	"github.com/kiratsb/vorpbot/internal/api/fantasy"
	"github.com/kiratsb/vorpbot/internal/bot"
	"github.com/kiratsb/vorpbot/internal/config"
	"github.com/kiratsb/vorpbot/internal/projections"
	"github.com/kiratsb/vorpbot/internal/repository/memory"
	"github.com/kiratsb/vorpbot/internal/scheduler"
	"github.com/kiratsb/vorpbot/internal/seed"
	"github.com/kiratsb/vorpbot/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	registry := projections.NewRegistry(projections.NewMockSource())
	repo := memory.NewRepository()

	var importer service.Importer
	if cfg.ESPNAPI.LeagueID != "" {
		espnClient := espn.NewClient(cfg.ESPNAPI)
		espnAPI := espn.NewAPI(espnClient)
		importer = fantasy.NewAPI(espnAPI)
	} else {
		slog.Info("No ESPN league configured, using mock league")
		importer = seed.NewSource()
	}

	advisor := service.NewAdvisorService(importer, repo, registry, cfg.League.Source, cfg.League.MyTeamID, cfg.League.TeamsCount)

	telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, advisor)
	if err != nil {
		return err
	}

	sched, err := scheduler.NewScheduler(advisor, telegramBot.SendMessage, cfg.League.SyncCron)
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	http.HandleFunc("/", healthCheckHandler)

	go func() {
		if err := http.ListenAndServe(":80", nil); err != nil {
			slog.Error("Error starting HTTP server", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := telegramBot.Start(ctx); err != nil {
			slog.Error("Error running telegram bot", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	return nil
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
