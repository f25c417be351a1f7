package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/kiratsb/vorpbot/internal/lineup"
	"github.com/kiratsb/vorpbot/internal/models"
	"github.com/kiratsb/vorpbot/internal/projections"
	"github.com/kiratsb/vorpbot/internal/recommend"
	"github.com/kiratsb/vorpbot/internal/repository/memory"
	"github.com/kiratsb/vorpbot/internal/valuation"
)

var ErrTeamNotFound = errors.New("team not found")

const snapshotTTL = 24 * time.Hour

// Importer pulls a full league snapshot from the external provider.
type Importer interface {
	FetchLeague(ctx context.Context) (*models.LeagueSnapshot, error)
}

// AdvisorService wires the valuation engine to the synced league state
// and formats its outputs as chat reports.
type AdvisorService struct {
	importer   Importer
	repo       *memory.Repository
	registry   *projections.Registry
	sourceID   string
	teamsCount int
	myTeamID   string
}

func NewAdvisorService(importer Importer, repo *memory.Repository, registry *projections.Registry, sourceID, myTeamID string, teamsCount int) *AdvisorService {
	if teamsCount <= 0 {
		teamsCount = valuation.DefaultTeamsCount
	}
	return &AdvisorService{
		importer:   importer,
		repo:       repo,
		registry:   registry,
		sourceID:   sourceID,
		teamsCount: teamsCount,
		myTeamID:   myTeamID,
	}
}

// SyncLeague forces a fresh import regardless of snapshot age.
func (s *AdvisorService) SyncLeague(ctx context.Context) (string, error) {
	snapshot, err := s.sync(ctx)
	if err != nil {
		return "", fmt.Errorf("error syncing league: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("🔄 *League Synced*\n\n")
	sb.WriteString(fmt.Sprintf("Teams: %d\n", len(snapshot.Teams)))
	sb.WriteString(fmt.Sprintf("Players: %d\n", len(snapshot.Players)))
	sb.WriteString(fmt.Sprintf("Current week: %d\n", snapshot.CurrentWeek))
	return sb.String(), nil
}

func (s *AdvisorService) sync(ctx context.Context) (*models.LeagueSnapshot, error) {
	syncID := uuid.NewString()
	slog.Info("Syncing league", "sync_id", syncID)

	snapshot, err := s.importer.FetchLeague(ctx)
	if err != nil {
		return nil, err
	}
	s.repo.SaveSnapshot(snapshot)

	slog.Info("League synced", "sync_id", syncID, "teams", len(snapshot.Teams), "players", len(snapshot.Players))
	return snapshot, nil
}

func (s *AdvisorService) ensureSnapshot(ctx context.Context) (*models.LeagueSnapshot, error) {
	snapshot := s.repo.Snapshot()
	if snapshot == nil || time.Since(snapshot.LastUpdated) > snapshotTTL {
		return s.sync(ctx)
	}
	return snapshot, nil
}

// valuationsFor computes (or reuses) this week's valuations under the
// configured projection source.
func (s *AdvisorService) valuationsFor(snapshot *models.LeagueSnapshot, week int) (map[string]models.Valuation, error) {
	if vals, ok := s.repo.Valuations(week, s.sourceID); ok {
		return vals, nil
	}

	src, err := s.registry.Get(s.sourceID)
	if err != nil {
		return nil, err
	}

	points := src.WeeklyPoints(snapshot.Players, week)
	vals := valuation.ComputeVORPForWeek(snapshot.Players, points, snapshot.Settings, week, s.teamsCount)
	s.repo.SaveValuations(week, s.sourceID, vals)
	return vals, nil
}

func (s *AdvisorService) rosterView(snapshot *models.LeagueSnapshot, teamID string, vals map[string]models.Valuation) []models.RosterItem {
	assignments := snapshot.Rosters[teamID]
	items := make([]models.RosterItem, 0, len(assignments))
	for _, a := range assignments {
		p, ok := snapshot.Players[a.PlayerID]
		if !ok {
			continue
		}
		item := models.RosterItem{Player: p, Slot: a.Slot}
		if v, ok := vals[a.PlayerID]; ok {
			item.Valuation = &v
		}
		items = append(items, item)
	}
	return items
}

// resolveTeam accepts an exact team id, a fuzzy team name, or nothing
// (which means the configured home team).
func (s *AdvisorService) resolveTeam(snapshot *models.LeagueSnapshot, query string) (models.Team, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		query = s.myTeamID
	}
	if t, ok := snapshot.Teams[query]; ok {
		return t, nil
	}

	bestScore := -1.0
	var best *models.Team
	for id := range snapshot.Teams {
		t := snapshot.Teams[id]
		distance := fuzzy.LevenshteinDistance(strings.ToLower(query), strings.ToLower(t.Name))
		maxLen := float64(max(len(query), len(t.Name)))
		similarity := 1 - float64(distance)/maxLen
		if similarity > 0.6 && similarity > bestScore {
			bestScore = similarity
			best = &t
		}
	}
	if best == nil {
		return models.Team{}, fmt.Errorf("%w: %s", ErrTeamNotFound, query)
	}
	return *best, nil
}

// OptimalLineup runs the greedy slot filler for a team and formats the
// chosen starters, the leftover bench, and the lineup's total VORP.
func (s *AdvisorService) OptimalLineup(ctx context.Context, teamQuery string) (string, error) {
	snapshot, err := s.ensureSnapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("error loading league: %w", err)
	}
	team, err := s.resolveTeam(snapshot, teamQuery)
	if err != nil {
		return "", err
	}
	vals, err := s.valuationsFor(snapshot, snapshot.CurrentWeek)
	if err != nil {
		return "", fmt.Errorf("error computing valuations: %w", err)
	}

	lu := lineup.Recommend(s.rosterView(snapshot, team.ID, vals))

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 *Optimal Lineup — %s (Week %d)*\n\n", team.Name, snapshot.CurrentWeek))
	sb.WriteString("*Starters:*\n")
	for _, st := range lu.Starters {
		sb.WriteString(fmt.Sprintf("▫️ %s %s (%s) — %s VORP\n", st.Slot, st.Player.Name, st.Player.Pos, vorpLabel(st.Valuation)))
	}
	if len(lu.Bench) > 0 {
		sb.WriteString("\n*Bench:*\n")
		for _, b := range lu.Bench {
			sb.WriteString(fmt.Sprintf("▫️ %s (%s) — %s VORP\n", b.Player.Name, b.Player.Pos, vorpLabel(b.Valuation)))
		}
	}
	sb.WriteString(fmt.Sprintf("\nTotal starter VORP: %.2f", lu.TotalVORP))
	return sb.String(), nil
}

// TeamScore scores the lineup as currently set, not the optimal one.
func (s *AdvisorService) TeamScore(ctx context.Context, teamQuery string) (string, error) {
	snapshot, err := s.ensureSnapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("error loading league: %w", err)
	}
	team, err := s.resolveTeam(snapshot, teamQuery)
	if err != nil {
		return "", err
	}
	vals, err := s.valuationsFor(snapshot, snapshot.CurrentWeek)
	if err != nil {
		return "", fmt.Errorf("error computing valuations: %w", err)
	}

	score := lineup.TeamScore(s.rosterView(snapshot, team.ID, vals), models.FlexPositions)
	return fmt.Sprintf("🏈 *%s* scores %.2f VORP with its current starters (week %d).", team.Name, score, snapshot.CurrentWeek), nil
}

// FreeAgentPickups ranks waiver-wire upgrades for a team.
func (s *AdvisorService) FreeAgentPickups(ctx context.Context, teamQuery string, topN int) (string, error) {
	snapshot, err := s.ensureSnapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("error loading league: %w", err)
	}
	team, err := s.resolveTeam(snapshot, teamQuery)
	if err != nil {
		return "", err
	}
	src, err := s.registry.Get(s.sourceID)
	if err != nil {
		return "", err
	}

	points := src.WeeklyPoints(snapshot.Players, snapshot.CurrentWeek)
	suggestions := recommend.FreeAgents(
		snapshot.Players,
		snapshot.Rosters[team.ID],
		s.repo.FreeAgentPool(),
		points,
		snapshot.Settings,
		snapshot.CurrentWeek,
		topN,
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🎯 *Waiver Targets — %s (Week %d)*\n\n", team.Name, snapshot.CurrentWeek))
	if len(suggestions) == 0 {
		sb.WriteString("No upgrades on the wire right now.")
		return sb.String(), nil
	}
	for i, sug := range suggestions {
		p := snapshot.Players[sug.PlayerID]
		sb.WriteString(fmt.Sprintf("%d. *%s* (%s, %s) +%.2f VORP — bid %d FAAB\n", i+1, p.Name, p.Pos, p.Team, sug.DeltaValue, sug.SuggestedFAAB))
		sb.WriteString(fmt.Sprintf("   %s\n", sug.Rationale))
	}
	return sb.String(), nil
}

// TradeFinder proposes one-for-one swaps against every opponent.
func (s *AdvisorService) TradeFinder(ctx context.Context, teamQuery string, maxOffersPerOpponent int) (string, error) {
	snapshot, err := s.ensureSnapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("error loading league: %w", err)
	}
	team, err := s.resolveTeam(snapshot, teamQuery)
	if err != nil {
		return "", err
	}
	vals, err := s.valuationsFor(snapshot, snapshot.CurrentWeek)
	if err != nil {
		return "", fmt.Errorf("error computing valuations: %w", err)
	}

	opponentIDs := make([]string, 0, len(snapshot.Teams))
	for id := range snapshot.Teams {
		if id != team.ID {
			opponentIDs = append(opponentIDs, id)
		}
	}
	sort.Strings(opponentIDs)

	var offers []models.TradeOffer
	for _, oppID := range opponentIDs {
		offers = append(offers, recommend.OneForOneTrades(
			snapshot.Players,
			snapshot.Rosters[team.ID],
			snapshot.Rosters[oppID],
			vals,
			maxOffersPerOpponent,
		)...)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🤝 *Trade Ideas — %s (Week %d)*\n\n", team.Name, snapshot.CurrentWeek))
	if len(offers) == 0 {
		sb.WriteString("No palatable one-for-one swaps found.")
		return sb.String(), nil
	}
	for _, offer := range offers {
		opp := snapshot.Teams[offer.OpponentTeamID]
		sb.WriteString(fmt.Sprintf("*vs %s*: %s\n", opp.Name, offer.Rationale))
	}
	return sb.String(), nil
}

// ListSources formats the registered projection sources.
func (s *AdvisorService) ListSources() string {
	var sb strings.Builder
	sb.WriteString("📡 *Projection Sources*\n\n")
	for _, info := range s.registry.List() {
		marker := ""
		if info.ID == s.sourceID {
			marker = " (active)"
		}
		sb.WriteString(fmt.Sprintf("▫️ *%s*%s — %s\n", info.ID, marker, info.Description))
	}
	return sb.String()
}

// WhoHas fuzzy-matches a player name and reports where they sit.
func (s *AdvisorService) WhoHas(ctx context.Context, playerName string) (string, error) {
	snapshot, err := s.ensureSnapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("error loading league: %w", err)
	}

	bestScore := -1.0
	var best *models.Player
	for id := range snapshot.Players {
		p := snapshot.Players[id]
		distance := fuzzy.LevenshteinDistance(strings.ToLower(playerName), strings.ToLower(p.Name))
		maxLen := float64(max(len(playerName), len(p.Name)))
		similarity := 1 - float64(distance)/maxLen
		if similarity > 0.7 && similarity > bestScore {
			bestScore = similarity
			best = &p
		}
	}
	if best == nil {
		return fmt.Sprintf("🔍 No player found matching '%s'.", playerName), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s* (%s - %s)\n", best.Name, best.Pos, best.Team))
	sb.WriteString("━━━━━━━━━━━━━━━━\n")

	found := false
	for teamID, assignments := range snapshot.Rosters {
		for _, a := range assignments {
			if a.PlayerID != best.ID {
				continue
			}
			found = true
			sb.WriteString(fmt.Sprintf("*%s*\n", snapshot.Teams[teamID].Name))
			if models.IsStarterSlot(a.Slot) {
				sb.WriteString("Starting\n")
			} else {
				sb.WriteString(fmt.Sprintf("%s\n", a.Slot))
			}
		}
	}
	if !found {
		sb.WriteString("Free Agent\n")
	}

	if vals, err := s.valuationsFor(snapshot, snapshot.CurrentWeek); err == nil {
		if v, ok := vals[best.ID]; ok {
			sb.WriteString(fmt.Sprintf("\n%.2f VORP (#%d overall, %s%d)", v.VORP, v.RankOverall, best.Pos, v.RankPos))
		}
	}
	return sb.String(), nil
}

func vorpLabel(v *models.Valuation) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v.VORP)
}
