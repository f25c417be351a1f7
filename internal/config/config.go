package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	TelegramBot TelegramBot
	ESPNAPI     ESPNAPI
	League      League
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN" required:"true"`
	ChatID int64  `envconfig:"CHAT_ID" required:"true"`
}

// ESPNAPI credentials are optional; without a league id the bot runs
// against the built-in mock league.
type ESPNAPI struct {
	Year     string `envconfig:"YEAR"`
	LeagueID string `envconfig:"LEAGUE_ID"`
	SWID     string `envconfig:"SWID"`
	ESPNS2   string `envconfig:"ESPN_S2"`
}

type League struct {
	MyTeamID   string `envconfig:"MY_TEAM_ID"`
	TeamsCount int    `envconfig:"TEAMS_COUNT" default:"12"`
	Source     string `envconfig:"PROJECTION_SOURCE" default:"mock"`
	SyncCron   string `envconfig:"SYNC_CRON" default:"30 6 * * 2"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
