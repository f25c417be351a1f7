package espn

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kiratsb/vorpbot/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

// FetchLeague pulls settings, teams, and rosters for the configured
// league and normalizes them into one snapshot for the engine.
func (a *API) FetchLeague(ctx context.Context) (*models.LeagueSnapshot, error) {
	endpoint := fmt.Sprintf("/seasons/%s/segments/0/leagues/%s", a.client.Config.Year, a.client.Config.LeagueID)

	var settingsResp leagueResponse
	if err := a.client.Get(ctx, endpoint, map[string]string{"view": "mSettings"}, nil, &settingsResp); err != nil {
		return nil, fmt.Errorf("fetching league settings: %w", err)
	}

	var rosterResp leagueResponse
	params := map[string]string{
		"view":            "mTeam,mRoster",
		"scoringPeriodId": strconv.Itoa(settingsResp.ScoringPeriodID),
	}
	if err := a.client.Get(ctx, endpoint, params, nil, &rosterResp); err != nil {
		return nil, fmt.Errorf("fetching league rosters: %w", err)
	}

	byeWeeks, err := a.fetchProByeWeeks(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching pro schedule: %w", err)
	}

	snapshot := &models.LeagueSnapshot{
		Players:     make(map[string]models.Player),
		Teams:       make(map[string]models.Team),
		Rosters:     make(map[string][]models.RosterAssignment),
		Settings:    rosterRules(settingsResp.Settings),
		CurrentWeek: settingsResp.Status.CurrentMatchupPeriod,
		LastUpdated: time.Now(),
	}

	for _, t := range rosterResp.Teams {
		teamID := strconv.Itoa(t.ID)
		snapshot.Teams[teamID] = models.Team{ID: teamID, Name: t.Name}

		for _, entry := range t.Roster.Entries {
			p := entry.PlayerPoolEntry.Player
			pid := strconv.Itoa(p.ID)

			domainPlayer := models.Player{
				ID:   pid,
				Name: p.FullName,
				Pos:  positionString(p.DefaultPositionID),
				Team: proTeamString(p.ProTeamID),
			}
			if bye, ok := byeWeeks[p.ProTeamID]; ok {
				domainPlayer.ByeWeek = &bye
			}
			snapshot.Players[pid] = domainPlayer

			snapshot.Rosters[teamID] = append(snapshot.Rosters[teamID], models.RosterAssignment{
				TeamID:   teamID,
				PlayerID: pid,
				Slot:     slotString(entry.LineupSlotID),
			})
		}
	}

	return snapshot, nil
}

// rosterRules translates ESPN lineup-slot counts (keyed by numeric
// slot id) into the engine's slot-label rules.
func rosterRules(s settings) models.LeagueSettings {
	rules := make(map[string]int)
	for rawID, count := range s.RosterSettings.LineupSlotCounts {
		if count <= 0 {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(rawID))
		if err != nil {
			continue
		}
		if label := slotString(id); label != "" {
			rules[label] += count
		}
	}
	return models.LeagueSettings{
		RosterRules: rules,
		FAABBudget:  s.AcquisitionSettings.AcquisitionBudget,
	}
}

func slotString(slotID int) string {
	switch slotID {
	case 0:
		return models.SlotQB
	case 2:
		return models.SlotRB
	case 4:
		return models.SlotWR
	case 6:
		return models.SlotTE
	case 16:
		return "DST"
	case 17:
		return "K"
	case 20:
		return models.SlotBN
	case 21:
		return models.SlotIR
	case 23:
		return models.SlotFlex
	default:
		return ""
	}
}

func positionString(positionID int) string {
	positions := map[int]string{
		1: "QB", 2: "RB", 3: "WR", 4: "TE", 5: "K", 16: "DST",
	}
	if pos, ok := positions[positionID]; ok {
		return pos
	}
	return "Unknown"
}

func proTeamString(proTeamID int) string {
	teams := map[int]string{
		1: "ATL", 2: "BUF", 3: "CHI", 4: "CIN", 5: "CLE", 6: "DAL", 7: "DEN", 8: "DET",
		9: "GB", 10: "TEN", 11: "IND", 12: "KC", 13: "LV", 14: "LAR", 15: "MIA", 16: "MIN",
		17: "NE", 18: "NO", 19: "NYG", 20: "NYJ", 21: "PHI", 22: "ARI", 23: "PIT", 24: "LAC",
		25: "SF", 26: "SEA", 27: "TB", 28: "WSH", 29: "CAR", 30: "JAX", 33: "BAL", 34: "HOU",
	}
	if t, ok := teams[proTeamID]; ok {
		return t
	}
	return "FA"
}

func (a *API) fetchProByeWeeks(ctx context.Context) (map[int]int, error) {
	var scheduleResponse struct {
		Settings struct {
			ProTeams []proTeamInfo `json:"proTeams"`
		} `json:"settings"`
	}

	endpoint := fmt.Sprintf("/seasons/%s", a.client.Config.Year)
	params := map[string]string{
		"view": "proTeamSchedules_wl",
	}

	if err := a.client.Get(ctx, endpoint, params, nil, &scheduleResponse); err != nil {
		return nil, err
	}

	byeWeeks := make(map[int]int)
	for _, t := range scheduleResponse.Settings.ProTeams {
		if t.ByeWeek > 0 {
			byeWeeks[t.ID] = t.ByeWeek
		}
	}

	return byeWeeks, nil
}
