package lineup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiratsb/vorpbot/internal/models"
)

func item(id, pos, slot string, vorp float64) models.RosterItem {
	return models.RosterItem{
		Player:    models.Player{ID: id, Name: id, Pos: pos, Team: "FA"},
		Slot:      slot,
		Valuation: &models.Valuation{PlayerID: id, VORP: vorp},
	}
}

func unvalued(id, pos, slot string) models.RosterItem {
	return models.RosterItem{
		Player: models.Player{ID: id, Name: id, Pos: pos, Team: "FA"},
		Slot:   slot,
	}
}

func fullRoster() []models.RosterItem {
	return []models.RosterItem{
		item("QB1", "QB", models.SlotQB, 6.0),
		item("RB1", "RB", models.SlotRB, 10.0),
		item("RB2", "RB", models.SlotRB, 4.0),
		item("WR1", "WR", models.SlotWR, 8.0),
		item("WR2", "WR", models.SlotWR, 3.0),
		item("TE1", "TE", models.SlotTE, 2.0),
		item("RB3", "RB", models.SlotBN, 5.0),
		item("WR3", "WR", models.SlotBN, 1.0),
		item("TE2", "TE", models.SlotBN, 0.5),
	}
}

func starterIDs(lu models.Lineup) map[string]string {
	out := make(map[string]string)
	for _, s := range lu.Starters {
		out[s.Player.ID] = s.Slot
	}
	return out
}

func TestRecommend_FillsAllSlots(t *testing.T) {
	lu := Recommend(fullRoster())

	require.Len(t, lu.Starters, 7)
	ids := starterIDs(lu)

	assert.Equal(t, models.SlotQB, ids["QB1"])
	assert.Equal(t, models.SlotRB, ids["RB1"])
	assert.Equal(t, models.SlotRB, ids["RB3"]) // benched RB3 (5.0) beats rostered RB2 (4.0)
	assert.Equal(t, models.SlotWR, ids["WR1"])
	assert.Equal(t, models.SlotWR, ids["WR2"])
	assert.Equal(t, models.SlotTE, ids["TE1"])
	assert.Equal(t, models.SlotFlex, ids["RB2"]) // best remaining flex-eligible

	require.Len(t, lu.Bench, 2)
	assert.Equal(t, "WR3", lu.Bench[0].Player.ID)
	assert.Equal(t, "TE2", lu.Bench[1].Player.ID)

	// 6 + 10 + 5 + 8 + 3 + 2 + 4
	assert.Equal(t, 38.0, lu.TotalVORP)
}

func TestRecommend_FourPlayersNoFlex(t *testing.T) {
	items := []models.RosterItem{
		item("QB1", "QB", models.SlotQB, 5.0),
		item("RB1", "RB", models.SlotRB, 4.0),
		item("WR1", "WR", models.SlotWR, 3.0),
		item("TE1", "TE", models.SlotTE, 2.0),
	}

	lu := Recommend(items)

	require.Len(t, lu.Starters, 4)
	assert.Empty(t, lu.Bench)
	for _, s := range lu.Starters {
		assert.NotEqual(t, models.SlotFlex, s.Slot)
	}
}

func TestRecommend_ExcludesIR(t *testing.T) {
	items := []models.RosterItem{
		item("QB1", "QB", models.SlotIR, 20.0),
		item("QB2", "QB", models.SlotBN, 1.0),
	}

	lu := Recommend(items)

	require.Len(t, lu.Starters, 1)
	assert.Equal(t, "QB2", lu.Starters[0].Player.ID)
	assert.Empty(t, lu.Bench)
}

func TestRecommend_MissingValuationPickedLast(t *testing.T) {
	items := []models.RosterItem{
		unvalued("RB0", "RB", models.SlotRB),
		item("RB1", "RB", models.SlotBN, 2.0),
		item("RB2", "RB", models.SlotBN, 1.0),
		item("RB3", "RB", models.SlotBN, 0.5),
	}

	lu := Recommend(items)

	ids := starterIDs(lu)
	// RB0 has no valuation, so it fills nothing ahead of valued players.
	assert.Equal(t, models.SlotRB, ids["RB1"])
	assert.Equal(t, models.SlotRB, ids["RB2"])
	assert.Equal(t, models.SlotFlex, ids["RB3"])
	require.Len(t, lu.Bench, 1)
	assert.Equal(t, "RB0", lu.Bench[0].Player.ID)
}

func TestRecommend_Idempotent(t *testing.T) {
	first := Recommend(fullRoster())

	rewrapped := make([]models.RosterItem, 0)
	for _, s := range first.Starters {
		rewrapped = append(rewrapped, models.RosterItem{Player: s.Player, Slot: s.Slot, Valuation: s.Valuation})
	}
	rewrapped = append(rewrapped, first.Bench...)

	second := Recommend(rewrapped)

	assert.Equal(t, starterIDs(first), starterIDs(second))
}

func TestRecommend_NoPlayerStartsAndBenches(t *testing.T) {
	lu := Recommend(fullRoster())

	assert.LessOrEqual(t, len(lu.Starters), 7)
	started := starterIDs(lu)
	for _, b := range lu.Bench {
		_, dup := started[b.Player.ID]
		assert.False(t, dup, "player %s in both starters and bench", b.Player.ID)
	}
}
