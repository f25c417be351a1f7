package projections

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiratsb/vorpbot/internal/models"
)

func TestMockSource_Deterministic(t *testing.T) {
	players := map[string]models.Player{
		"QB1": {ID: "QB1", Name: "Quentin Ball", Pos: "QB", Team: "BUF"},
		"RB1": {ID: "RB1", Name: "Ricky Burst", Pos: "RB", Team: "SF"},
		"D1":  {ID: "D1", Name: "Niners D/ST", Pos: "DST", Team: "SF"},
	}
	src := NewMockSource()

	first := src.WeeklyPoints(players, 4)
	second := src.WeeklyPoints(players, 4)

	require.Equal(t, first, second)
	require.Len(t, first, 3)
}

func TestMockSource_BasePointsPlusNoise(t *testing.T) {
	players := map[string]models.Player{
		"QB1": {ID: "QB1", Name: "Quentin Ball", Pos: "QB", Team: "BUF"},
		"TE1": {ID: "TE1", Name: "Terry Edge", Pos: "TE", Team: "KC"},
		"D1":  {ID: "D1", Name: "Niners D/ST", Pos: "DST", Team: "SF"},
	}
	points := NewMockSource().WeeklyPoints(players, 1)

	assert.GreaterOrEqual(t, points["QB1"], 18.0)
	assert.Less(t, points["QB1"], 24.0)
	assert.GreaterOrEqual(t, points["TE1"], 8.0)
	assert.Less(t, points["TE1"], 14.0)
	// Positions without a base score only get noise.
	assert.GreaterOrEqual(t, points["D1"], 0.0)
	assert.Less(t, points["D1"], 6.0)
}

func TestMockSource_WeekChangesPoints(t *testing.T) {
	players := map[string]models.Player{
		"RB1": {ID: "RB1", Name: "Ricky Burst", Pos: "RB", Team: "SF"},
	}
	src := NewMockSource()

	week1 := src.WeeklyPoints(players, 1)
	week2 := src.WeeklyPoints(players, 2)

	assert.NotEqual(t, week1["RB1"], week2["RB1"])
}

func TestRegistry_GetUnknownSource(t *testing.T) {
	registry := NewRegistry(NewMockSource())

	_, err := registry.Get("espn")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceNotFound))
}

func TestRegistry_ListInRegistrationOrder(t *testing.T) {
	registry := NewRegistry(NewMockSource())

	infos := registry.List()

	require.Len(t, infos, 1)
	assert.Equal(t, "mock", infos[0].ID)
	assert.Equal(t, "Mock", infos[0].Name)
	assert.NotEmpty(t, infos[0].Description)

	src, err := registry.Get("mock")
	require.NoError(t, err)
	assert.Equal(t, "mock", src.ID())
}
