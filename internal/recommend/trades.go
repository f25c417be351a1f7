package recommend

import (
	"fmt"
	"math"
	"sort"

	"github.com/kiratsb/vorpbot/internal/models"
)

// OneForOneTrades searches a deliberately narrow space: your single
// weakest fixed-slot starter offered for each player on the opponent's
// bench (BN or IR). The opponent's side is approximated with a fixed
// cost, -min(0.5, vorp*0.1), rather than re-optimizing their lineup; a
// candidate survives only if you gain (delta_you > 0) and the cost is
// near-neutral for them (delta_them >= -0.1). Offers are sorted by
// your gain, then by their cost, and capped at maxOffers. Either side
// having no eligible players yields no offers.
func OneForOneTrades(players map[string]models.Player, yourRoster, oppRoster []models.RosterAssignment, valuations map[string]models.Valuation, maxOffers int) []models.TradeOffer {
	vorp := func(pid string) float64 { return vorpOf(valuations, pid) }

	var yourStarters []string
	for _, a := range yourRoster {
		if models.IsFixedStarterSlot(a.Slot) {
			yourStarters = append(yourStarters, a.PlayerID)
		}
	}
	var theirBench []string
	oppTeamID := ""
	for _, a := range oppRoster {
		oppTeamID = a.TeamID
		if a.Slot == models.SlotBN || a.Slot == models.SlotIR {
			theirBench = append(theirBench, a.PlayerID)
		}
	}
	if len(yourStarters) == 0 || len(theirBench) == 0 {
		return nil
	}

	weakest := yourStarters[0]
	for _, pid := range yourStarters[1:] {
		if vorp(pid) < vorp(weakest) {
			weakest = pid
		}
	}
	weakestVorp := vorp(weakest)

	type candidate struct {
		get       string
		deltaYou  float64
		deltaThem float64
	}
	var candidates []candidate
	for _, pid := range theirBench {
		getVorp := vorp(pid)
		deltaYou := math.Max(0.0, getVorp-weakestVorp)
		deltaThem := -math.Min(0.5, math.Max(0.0, getVorp*0.1))
		if deltaYou > 0 && deltaThem >= -0.1 {
			candidates = append(candidates, candidate{
				get:       pid,
				deltaYou:  round2(deltaYou),
				deltaThem: round2(deltaThem),
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].deltaYou != candidates[j].deltaYou {
			return candidates[i].deltaYou > candidates[j].deltaYou
		}
		return candidates[i].deltaThem < candidates[j].deltaThem
	})
	if maxOffers > 0 && len(candidates) > maxOffers {
		candidates = candidates[:maxOffers]
	}

	offers := make([]models.TradeOffer, 0, len(candidates))
	for _, c := range candidates {
		offers = append(offers, models.TradeOffer{
			OpponentTeamID: oppTeamID,
			Give:           []string{weakest},
			Get:            []string{c.get},
			DeltaYou:       c.deltaYou,
			DeltaThem:      c.deltaThem,
			Rationale: fmt.Sprintf("Swap %s for %s: you +%.2f VORP; them %.2f.",
				playerName(players, weakest), playerName(players, c.get), c.deltaYou, c.deltaThem),
		})
	}
	return offers
}

func playerName(players map[string]models.Player, pid string) string {
	if p, ok := players[pid]; ok {
		return p.Name
	}
	return pid
}
