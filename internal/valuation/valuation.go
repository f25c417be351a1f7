// Package valuation derives per-player value over replacement (VORP)
// from weekly point projections and league roster rules.
package valuation

import (
	"math"
	"sort"

	"github.com/kiratsb/vorpbot/internal/models"
)

// DefaultTeamsCount is the assumed league size when the caller has none.
const DefaultTeamsCount = 12

type playerPoints struct {
	id     string
	points float64
}

// sortedByPoints orders projections descending by points. Ties fall
// back to player id so ranks are reproducible across calls regardless
// of map iteration order.
func sortedByPoints(projections map[string]float64) []playerPoints {
	arr := make([]playerPoints, 0, len(projections))
	for pid, pts := range projections {
		arr = append(arr, playerPoints{id: pid, points: pts})
	}
	sort.Slice(arr, func(i, j int) bool {
		if arr[i].points != arr[j].points {
			return arr[i].points > arr[j].points
		}
		return arr[i].id < arr[j].id
	})
	return arr
}

// startersRequired estimates league-wide starter slots per position.
// The FLEX allotment is spread evenly across RB/WR/TE and rounded
// down. That is an approximation of FLEX contention, kept deliberately
// simple, not an exact simulation.
func startersRequired(settings models.LeagueSettings, pos string) int {
	base := settings.SlotCount(pos)
	if models.IsFlexEligible(pos) {
		flex := settings.SlotCount(models.SlotFlex)
		if flex == 0 {
			flex = settings.SlotCount("FLX")
		}
		return base + flex/3
	}
	return base
}

// ComputeReplacementLevels returns, per position, the projected points
// of the last fantasy-relevant starter league-wide: the Nth-best
// projection where N = startersRequired(pos) * teamsCount, clamped to
// the available pool. Positions with no projected players get no entry;
// consumers treat absent positions as 0.0.
func ComputeReplacementLevels(players map[string]models.Player, projections map[string]float64, settings models.LeagueSettings, teamsCount int) map[string]float64 {
	byPos := make(map[string][]playerPoints)
	for _, pp := range sortedByPoints(projections) {
		p, ok := players[pp.id]
		if !ok {
			continue
		}
		byPos[p.Pos] = append(byPos[p.Pos], pp)
	}

	repl := make(map[string]float64, len(byPos))
	for pos, arr := range byPos {
		n := startersRequired(settings, pos) * teamsCount
		if n < 1 {
			n = 1
		}
		idx := n - 1
		if idx > len(arr)-1 {
			idx = len(arr) - 1
		}
		repl[pos] = arr[idx].points
	}
	return repl
}

// ComputeVORPForWeek produces a Valuation for every projected player:
// VORP relative to the positional replacement level plus 1-based
// overall and positional ranks. Players without a projection are
// absent from the result. Output is deterministic for identical input.
func ComputeVORPForWeek(players map[string]models.Player, projections map[string]float64, settings models.LeagueSettings, week, teamsCount int) map[string]models.Valuation {
	repl := ComputeReplacementLevels(players, projections, settings, teamsCount)

	ranked := sortedByPoints(projections)
	rankOverall := make(map[string]int, len(ranked))
	for i, pp := range ranked {
		rankOverall[pp.id] = i + 1
	}

	rankPos := make(map[string]int, len(ranked))
	posSeen := make(map[string]int)
	for _, pp := range ranked {
		p, ok := players[pp.id]
		if !ok {
			continue
		}
		posSeen[p.Pos]++
		rankPos[pp.id] = posSeen[p.Pos]
	}

	out := make(map[string]models.Valuation, len(projections))
	for _, pp := range ranked {
		p, ok := players[pp.id]
		if !ok {
			continue
		}
		out[pp.id] = models.Valuation{
			PlayerID:    pp.id,
			Week:        week,
			VORP:        round2(pp.points - repl[p.Pos]),
			RankPos:     rankPos[pp.id],
			RankOverall: rankOverall[pp.id],
		}
	}
	return out
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
