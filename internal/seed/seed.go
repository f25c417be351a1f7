// Package seed provides a small deterministic league so the bot can
// run without ESPN credentials.
package seed

import (
	"context"
	"time"

	"github.com/kiratsb/vorpbot/internal/models"
)

// Source satisfies the service's importer dependency with canned data.
type Source struct{}

func NewSource() *Source {
	return &Source{}
}

func (s *Source) FetchLeague(_ context.Context) (*models.LeagueSnapshot, error) {
	return Snapshot(), nil
}

// Snapshot builds a fresh mock league: twenty-one players across all
// positions, your roster, and one thin opponent.
func Snapshot() *models.LeagueSnapshot {
	players := []models.Player{
		{ID: "QB1", Name: "Quentin Ball", Pos: "QB", Team: "BUF"},
		{ID: "QB2", Name: "Kyle Laser", Pos: "QB", Team: "LAC"},
		{ID: "RB1", Name: "Ricky Burst", Pos: "RB", Team: "SF"},
		{ID: "RB2", Name: "Randy Breaker", Pos: "RB", Team: "KC"},
		{ID: "RB3", Name: "Rico Backup", Pos: "RB", Team: "JAX"},
		{ID: "RB4", Name: "Ronan Cutter", Pos: "RB", Team: "DET"},
		{ID: "RB5", Name: "Robbie Burst", Pos: "RB", Team: "BUF"},
		{ID: "WR1", Name: "Walt Rocket", Pos: "WR", Team: "DAL"},
		{ID: "WR2", Name: "Wes Runner", Pos: "WR", Team: "MIA"},
		{ID: "WR3", Name: "Wade Slot", Pos: "WR", Team: "NYJ"},
		{ID: "WR4", Name: "Wayne Streak", Pos: "WR", Team: "SEA"},
		{ID: "WR5", Name: "Will Zippy", Pos: "WR", Team: "CIN"},
		{ID: "WR6", Name: "Wiley Deep", Pos: "WR", Team: "JAX"},
		{ID: "TE1", Name: "Terry Edge", Pos: "TE", Team: "KC"},
		{ID: "TE2", Name: "Tony Blocker", Pos: "TE", Team: "LAR"},
		{ID: "TE3", Name: "Toby Chip", Pos: "TE", Team: "MIN"},
		{ID: "K1", Name: "Ken Boots", Pos: "K", Team: "BAL"},
		{ID: "K2", Name: "Kurt Aim", Pos: "K", Team: "DAL"},
		{ID: "D1", Name: "Niners D/ST", Pos: "DST", Team: "SF"},
		{ID: "D2", Name: "Jets D/ST", Pos: "DST", Team: "NYJ"},
	}

	playerMap := make(map[string]models.Player, len(players))
	for _, p := range players {
		playerMap[p.ID] = p
	}

	rosters := map[string][]models.RosterAssignment{
		"t-001": assignments("t-001", [][2]string{
			{"QB1", models.SlotQB},
			{"RB1", models.SlotRB},
			{"RB2", models.SlotRB},
			{"WR1", models.SlotWR},
			{"WR2", models.SlotWR},
			{"TE1", models.SlotTE},
			{"RB3", models.SlotBN},
			{"WR3", models.SlotBN},
			{"TE2", models.SlotBN},
		}),
		"t-002": assignments("t-002", [][2]string{
			{"QB2", models.SlotQB},
			{"RB4", models.SlotRB},
			{"WR4", models.SlotWR},
			{"TE3", models.SlotTE},
			{"RB5", models.SlotBN},
			{"WR5", models.SlotBN},
		}),
	}

	return &models.LeagueSnapshot{
		Players: playerMap,
		Teams: map[string]models.Team{
			"t-001": {ID: "t-001", Name: "Kirat FC", Manager: "Kirat"},
			"t-002": {ID: "t-002", Name: "Opponent A", Manager: "Alex"},
		},
		Rosters: rosters,
		Settings: models.LeagueSettings{
			RosterRules: map[string]int{
				models.SlotQB: 1, models.SlotRB: 2, models.SlotWR: 2,
				models.SlotTE: 1, models.SlotFlex: 1, models.SlotBN: 6,
			},
			FAABBudget: 200,
		},
		CurrentWeek: 1,
		LastUpdated: time.Now(),
	}
}

func assignments(teamID string, pairs [][2]string) []models.RosterAssignment {
	out := make([]models.RosterAssignment, 0, len(pairs))
	for _, pair := range pairs {
		out = append(out, models.RosterAssignment{TeamID: teamID, PlayerID: pair[0], Slot: pair[1]})
	}
	return out
}
