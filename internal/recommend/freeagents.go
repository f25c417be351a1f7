// Package recommend ranks free-agent pickups and searches simple
// one-for-one trades using VORP valuations.
package recommend

import (
	"fmt"
	"math"
	"sort"

	"github.com/kiratsb/vorpbot/internal/models"
	"github.com/kiratsb/vorpbot/internal/valuation"
)

type starterVorp struct {
	playerID string
	vorp     float64
}

// FreeAgents scores each free agent by the VORP gained over the
// roster's weakest starter at the same position. When the roster
// starts nobody at that position, a FLEX-eligible free agent is
// compared against the weakest FLEX-eligible starter instead; other
// positions are skipped. Only genuine upgrades (delta > 0) surface,
// sorted descending and truncated to topN. The FAAB bid is a linear
// heuristic, clamp(round(delta*3), 1, 25), independent of budget state.
func FreeAgents(players map[string]models.Player, currentRoster []models.RosterAssignment, freeAgents []string, projections map[string]float64, settings models.LeagueSettings, week, topN int) []models.FreeAgentSuggestion {
	valuations := valuation.ComputeVORPForWeek(players, projections, settings, week, valuation.DefaultTeamsCount)

	type rosterEntry struct {
		player models.Player
		slot   string
	}
	roster := make([]rosterEntry, 0, len(currentRoster))
	for _, a := range currentRoster {
		p, ok := players[a.PlayerID]
		if !ok {
			continue
		}
		roster = append(roster, rosterEntry{player: p, slot: a.Slot})
	}

	starterVorps := func(pos string) []starterVorp {
		var out []starterVorp
		for _, e := range roster {
			if models.IsFixedStarterSlot(e.slot) && e.player.Pos == pos {
				out = append(out, starterVorp{playerID: e.player.ID, vorp: vorpOf(valuations, e.player.ID)})
			}
		}
		return out
	}

	var suggestions []models.FreeAgentSuggestion
	for _, pid := range freeAgents {
		p, ok := players[pid]
		if !ok {
			continue
		}
		faVorp := vorpOf(valuations, pid)

		replaceVorp := 0.0
		flexFallback := false
		if same := starterVorps(p.Pos); len(same) > 0 {
			replaceVorp = weakest(same).vorp
		} else {
			if !models.IsFlexEligible(p.Pos) {
				continue
			}
			flexFallback = true
			var flexable []starterVorp
			for _, pos := range models.FlexPositions {
				flexable = append(flexable, starterVorps(pos)...)
			}
			if len(flexable) > 0 {
				replaceVorp = weakest(flexable).vorp
			}
		}

		delta := round2(math.Max(0.0, faVorp-replaceVorp))
		if delta <= 0 {
			continue
		}

		faab := int(math.Round(delta * 3))
		if faab < 1 {
			faab = 1
		} else if faab > 25 {
			faab = 25
		}

		rationale := fmt.Sprintf("%s (%s) beats your worst %s by +%.2f VORP.", p.Name, p.Pos, p.Pos, delta)
		if flexFallback {
			rationale = fmt.Sprintf("%s (%s) improves your FLEX over your weakest starter by +%.2f VORP.", p.Name, p.Pos, delta)
		}

		suggestions = append(suggestions, models.FreeAgentSuggestion{
			PlayerID:      pid,
			DeltaValue:    delta,
			SuggestedFAAB: faab,
			Rationale:     rationale,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].DeltaValue > suggestions[j].DeltaValue
	})
	if topN > 0 && len(suggestions) > topN {
		suggestions = suggestions[:topN]
	}
	return suggestions
}

func weakest(vorps []starterVorp) starterVorp {
	w := vorps[0]
	for _, v := range vorps[1:] {
		if v.vorp < w.vorp {
			w = v
		}
	}
	return w
}

func vorpOf(valuations map[string]models.Valuation, pid string) float64 {
	if v, ok := valuations[pid]; ok {
		return v.VORP
	}
	return 0.0
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
