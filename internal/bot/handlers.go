package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/kiratsb/vorpbot/internal/service"
)

const (
	defaultPickupCount = 10
	defaultTradeOffers = 2
)

type Handler struct {
	advisor *service.AdvisorService
}

func NewHandler(advisor *service.AdvisorService) *Handler {
	return &Handler{advisor: advisor}
}

func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := update.Message.CommandArguments()
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome to VorpBot! Use /help to see available commands."
	case "help":
		msg.Text = "Available commands:\n/lineup [team] - Optimal starting lineup\n/score [team] - Score the lineup as currently set\n/pickups [team] [n] - Top waiver-wire upgrades\n/trades [team] - One-for-one trade ideas\n/whohas <player> - Find who rosters a player\n/sources - List projection sources\n/sync - Refresh league data"
	case "lineup":
		h.handleLineup(ctx, &msg, args)
	case "score":
		h.handleScore(ctx, &msg, args)
	case "pickups":
		h.handlePickups(ctx, &msg, args)
	case "trades":
		h.handleTrades(ctx, &msg, args)
	case "whohas":
		h.handleWhoHas(ctx, &msg, args)
	case "sources":
		msg.Text = h.advisor.ListSources()
	case "sync":
		h.handleSync(ctx, &msg)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) handleLineup(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	report, err := h.advisor.OptimalLineup(ctx, args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error building lineup: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleScore(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	report, err := h.advisor.TeamScore(ctx, args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error scoring team: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handlePickups(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	teamQuery, topN := splitCountArg(args, defaultPickupCount)
	report, err := h.advisor.FreeAgentPickups(ctx, teamQuery, topN)
	if err != nil {
		msg.Text = fmt.Sprintf("Error finding pickups: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleTrades(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	report, err := h.advisor.TradeFinder(ctx, args, defaultTradeOffers)
	if err != nil {
		msg.Text = fmt.Sprintf("Error finding trades: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleWhoHas(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a player name. Usage: /whohas <player name>"
		return
	}
	result, err := h.advisor.WhoHas(ctx, args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error checking who has player: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleSync(ctx context.Context, msg *tgbotapi.MessageConfig) {
	report, err := h.advisor.SyncLeague(ctx)
	if err != nil {
		msg.Text = fmt.Sprintf("Error syncing league: %v", err)
	} else {
		msg.Text = report
	}
}

// splitCountArg peels a trailing integer off the arguments, so
// "/pickups Kirat FC 5" asks for five suggestions for "Kirat FC".
func splitCountArg(args string, fallback int) (string, int) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return "", fallback
	}
	if n, err := strconv.Atoi(fields[len(fields)-1]); err == nil && n > 0 {
		return strings.Join(fields[:len(fields)-1], " "), n
	}
	return args, fallback
}
