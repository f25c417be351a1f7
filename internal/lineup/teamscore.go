package lineup

import (
	"sort"

	"github.com/kiratsb/vorpbot/internal/models"
)

// TeamScore sums starter VORP for a lineup as given, without
// reassigning anyone. Fixed slots (QB/RB/WR/TE) count directly; of the
// FLEX-slotted entries whose position is in flexPositions, only the
// single best not already counted is added. Below-replacement starters
// contribute zero rather than subtracting. BN and IR never count.
func TeamScore(items []models.RosterItem, flexPositions []string) float64 {
	allowed := make(map[string]bool, len(flexPositions))
	for _, p := range flexPositions {
		allowed[p] = true
	}

	total := 0.0
	used := make(map[string]bool)
	var flexCandidates []models.RosterItem

	for _, it := range items {
		vorp := 0.0
		if it.Valuation != nil {
			vorp = it.Valuation.VORP
		}
		switch {
		case models.IsFixedStarterSlot(it.Slot):
			total += max(0.0, vorp)
			used[it.Player.ID] = true
		case it.Slot == models.SlotFlex && allowed[it.Player.Pos]:
			flexCandidates = append(flexCandidates, it)
		}
	}

	sort.SliceStable(flexCandidates, func(i, j int) bool {
		return itemVORP(flexCandidates[i]) > itemVORP(flexCandidates[j])
	})
	for _, it := range flexCandidates {
		if used[it.Player.ID] {
			continue
		}
		total += max(0.0, itemVORP(it))
		break
	}

	return round2(total)
}

func itemVORP(it models.RosterItem) float64 {
	if it.Valuation == nil {
		return 0.0
	}
	return it.Valuation.VORP
}
