package recommend

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiratsb/vorpbot/internal/models"
)

func faSettings() models.LeagueSettings {
	return models.LeagueSettings{
		RosterRules: map[string]int{
			"QB": 1, "RB": 2, "WR": 2, "TE": 1, "FLEX": 1, "BN": 6,
		},
	}
}

func pool(entries map[string]string) map[string]models.Player {
	players := make(map[string]models.Player, len(entries))
	for id, pos := range entries {
		players[id] = models.Player{ID: id, Name: "Player " + id, Pos: pos, Team: "FA"}
	}
	return players
}

func assign(slots map[string]string) []models.RosterAssignment {
	var out []models.RosterAssignment
	for _, pid := range sortedKeys(slots) {
		out = append(out, models.RosterAssignment{TeamID: "t-001", PlayerID: pid, Slot: slots[pid]})
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestFreeAgents_BeatsWeakerOfTwoStarters(t *testing.T) {
	players := pool(map[string]string{"RBA": "RB", "RBB": "RB", "RBF": "RB"})
	roster := assign(map[string]string{"RBA": models.SlotRB, "RBB": models.SlotRB})
	projections := map[string]float64{"RBA": 20, "RBB": 10, "RBF": 15}

	suggestions := FreeAgents(players, roster, []string{"RBF"}, projections, faSettings(), 1, 10)

	require.Len(t, suggestions, 1)
	sug := suggestions[0]
	assert.Equal(t, "RBF", sug.PlayerID)
	// Replacement level is the lowest RB (10), so the FA's VORP of 5
	// is measured against the weaker starter's 0.
	assert.Equal(t, 5.0, sug.DeltaValue)
	assert.Equal(t, 15, sug.SuggestedFAAB)
	assert.Contains(t, sug.Rationale, "worst RB")
}

func TestFreeAgents_NoUpgradesDropped(t *testing.T) {
	players := pool(map[string]string{"RBA": "RB", "RBB": "RB", "RBF": "RB"})
	roster := assign(map[string]string{"RBA": models.SlotRB, "RBB": models.SlotRB})
	projections := map[string]float64{"RBA": 20, "RBB": 15, "RBF": 10}

	suggestions := FreeAgents(players, roster, []string{"RBF"}, projections, faSettings(), 1, 10)

	assert.Empty(t, suggestions)
}

func TestFreeAgents_FlexFallbackWhenPositionNotStarted(t *testing.T) {
	players := pool(map[string]string{"RBA": "RB", "RBB": "RB", "WRF": "WR", "WRX": "WR"})
	roster := assign(map[string]string{"RBA": models.SlotRB, "RBB": models.SlotRB})
	projections := map[string]float64{"RBA": 20, "RBB": 10, "WRF": 15, "WRX": 5}

	suggestions := FreeAgents(players, roster, []string{"WRF"}, projections, faSettings(), 1, 10)

	require.Len(t, suggestions, 1)
	// WRF's VORP (10) against the weakest flex-eligible starter (RBB, 0).
	assert.Equal(t, 10.0, suggestions[0].DeltaValue)
	assert.Contains(t, suggestions[0].Rationale, "FLEX")
}

func TestFreeAgents_SkipsWhenNoComparableStarter(t *testing.T) {
	players := pool(map[string]string{"RBA": "RB", "QBF": "QB", "KF": "K"})
	roster := assign(map[string]string{"RBA": models.SlotRB})
	projections := map[string]float64{"RBA": 20, "QBF": 25, "KF": 9}

	suggestions := FreeAgents(players, roster, []string{"QBF", "KF"}, projections, faSettings(), 1, 10)

	assert.Empty(t, suggestions)
}

func TestFreeAgents_FAABClamped(t *testing.T) {
	tests := []struct {
		name     string
		faPoints float64
		wantFAAB int
	}{
		{name: "LargeDeltaCapsAt25", faPoints: 40, wantFAAB: 25},
		{name: "TinyDeltaFloorsAt1", faPoints: 10.1, wantFAAB: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			players := pool(map[string]string{"RBA": "RB", "RBB": "RB", "RBF": "RB"})
			roster := assign(map[string]string{"RBA": models.SlotRB, "RBB": models.SlotRB})
			projections := map[string]float64{"RBA": 10, "RBB": 12, "RBF": tc.faPoints}

			suggestions := FreeAgents(players, roster, []string{"RBF"}, projections, faSettings(), 1, 10)

			require.Len(t, suggestions, 1)
			assert.Equal(t, tc.wantFAAB, suggestions[0].SuggestedFAAB)
		})
	}
}

func TestFreeAgents_SortedAndTruncated(t *testing.T) {
	players := pool(map[string]string{
		"RBA": "RB", "RBB": "RB",
		"RBF1": "RB", "RBF2": "RB", "RBF3": "RB",
	})
	roster := assign(map[string]string{"RBA": models.SlotRB, "RBB": models.SlotRB})
	projections := map[string]float64{
		"RBA": 20, "RBB": 10,
		"RBF1": 12, "RBF2": 18, "RBF3": 14,
	}

	suggestions := FreeAgents(players, roster, []string{"RBF1", "RBF2", "RBF3"}, projections, faSettings(), 1, 2)

	require.Len(t, suggestions, 2)
	assert.Equal(t, "RBF2", suggestions[0].PlayerID)
	assert.Equal(t, "RBF3", suggestions[1].PlayerID)
	assert.Greater(t, suggestions[0].DeltaValue, suggestions[1].DeltaValue)
	for _, s := range suggestions {
		assert.Greater(t, s.DeltaValue, 0.0)
	}
}
