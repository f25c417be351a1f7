package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"

	"github.com/kiratsb/vorpbot/internal/service"
)

// Scheduler pushes recurring advisor reports into the league chat and
// keeps the synced snapshot fresh.
type Scheduler struct {
	s           gocron.Scheduler
	advisor     *service.AdvisorService
	sendMessage func(string) error
	syncCron    string
}

func NewScheduler(advisor *service.AdvisorService, sendMessage func(string) error, syncCron string) (*Scheduler, error) {
	if _, err := cron.ParseStandard(syncCron); err != nil {
		return nil, fmt.Errorf("invalid sync cron expression %q: %w", syncCron, err)
	}

	location, err := time.LoadLocation("America/Chicago")
	if err != nil {
		slog.Error("Failed to load location", "error", err)
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:           s,
		advisor:     advisor,
		sendMessage: sendMessage,
		syncCron:    syncCron,
	}, nil
}

func (s *Scheduler) Start() error {
	var err error

	// League resync on the configured cron expression
	_, err = s.s.NewJob(
		gocron.CronJob(s.syncCron, false),
		gocron.NewTask(s.resyncLeague),
	)
	if err != nil {
		return fmt.Errorf("failed to create sync job: %w", err)
	}

	// Waiver targets - Tuesday 7:30, before most waivers clear
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Tuesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.sendPickups),
	)
	if err != nil {
		return fmt.Errorf("failed to create pickups job: %w", err)
	}

	// Trade ideas - Wednesday 7:30
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Wednesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.sendTradeIdeas),
	)
	if err != nil {
		return fmt.Errorf("failed to create trade ideas job: %w", err)
	}

	// Lineup check - Thursday 17:30, ahead of the early game
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Thursday), gocron.NewAtTimes(gocron.NewAtTime(17, 30, 0))),
		gocron.NewTask(s.sendLineup),
	)
	if err != nil {
		return fmt.Errorf("failed to create lineup job: %w", err)
	}

	// Sunday morning last call - lineup plus waiver leftovers
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Sunday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.sendLineup),
	)
	if err != nil {
		return fmt.Errorf("failed to create Sunday lineup job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) resyncLeague() {
	if _, err := s.advisor.SyncLeague(context.Background()); err != nil {
		slog.Error("Failed to resync league", "error", err)
	}
}

func (s *Scheduler) sendPickups() {
	report, err := s.advisor.FreeAgentPickups(context.Background(), "", 10)
	if err != nil {
		slog.Error("Failed to get waiver targets", "error", err)
		return
	}
	s.sendMessage(report)
}

func (s *Scheduler) sendTradeIdeas() {
	report, err := s.advisor.TradeFinder(context.Background(), "", 2)
	if err != nil {
		slog.Error("Failed to get trade ideas", "error", err)
		return
	}
	s.sendMessage(report)
}

func (s *Scheduler) sendLineup() {
	report, err := s.advisor.OptimalLineup(context.Background(), "")
	if err != nil {
		slog.Error("Failed to get optimal lineup", "error", err)
		return
	}
	s.sendMessage(report)
}
