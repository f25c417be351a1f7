// Package lineup fills starting slots from a roster view and scores
// already-set lineups.
package lineup

import (
	"math"
	"sort"
	"strings"

	"github.com/kiratsb/vorpbot/internal/models"
)

// missingScore ranks players without a valuation behind everyone else
// without ever failing the optimization.
const missingScore = -999.0

type pooled struct {
	pos   string
	score float64
	item  models.RosterItem
}

type slotSpec struct {
	name     string
	eligible func(pos string) bool
}

// Slot fill order is fixed: QB, RB, RB, WR, WR, TE, FLEX. The greedy
// scan is not an assignment-problem solver; downstream consumers rely
// on its tie-breaks, so the order must not change.
var slotOrder = []slotSpec{
	{models.SlotQB, exactly(models.SlotQB)},
	{models.SlotRB, exactly(models.SlotRB)},
	{models.SlotRB, exactly(models.SlotRB)},
	{models.SlotWR, exactly(models.SlotWR)},
	{models.SlotWR, exactly(models.SlotWR)},
	{models.SlotTE, exactly(models.SlotTE)},
	{models.SlotFlex, models.IsFlexEligible},
}

func exactly(pos string) func(string) bool {
	return func(p string) bool { return p == pos }
}

// Recommend picks the highest-VORP legal starter for each slot in the
// fixed priority order. IR players are excluded up front; the player's
// current slot is otherwise ignored. Slots with no eligible player
// left are simply not emitted. Leftovers become the bench in score
// order.
func Recommend(items []models.RosterItem) models.Lineup {
	pool := make([]pooled, 0, len(items))
	for _, it := range items {
		if strings.EqualFold(it.Slot, models.SlotIR) {
			continue
		}
		score := missingScore
		if it.Valuation != nil {
			score = it.Valuation.VORP
		}
		pool = append(pool, pooled{pos: it.Player.Pos, score: score, item: it})
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].score > pool[j].score
	})

	var lu models.Lineup
	for _, slot := range slotOrder {
		for i, c := range pool {
			if !slot.eligible(c.pos) {
				continue
			}
			lu.Starters = append(lu.Starters, models.LineupEntry{
				Slot:      slot.name,
				Player:    c.item.Player,
				Valuation: c.item.Valuation,
			})
			pool = append(pool[:i], pool[i+1:]...)
			break
		}
	}

	total := 0.0
	for _, s := range lu.Starters {
		if s.Valuation != nil {
			total += s.Valuation.VORP
		}
	}
	lu.TotalVORP = round2(total)

	lu.Bench = make([]models.RosterItem, 0, len(pool))
	for _, c := range pool {
		lu.Bench = append(lu.Bench, c.item)
	}
	return lu
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
