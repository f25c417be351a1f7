package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiratsb/vorpbot/internal/models"
	"github.com/kiratsb/vorpbot/internal/seed"
)

func TestRepository_FreeAgentPool(t *testing.T) {
	repo := NewRepository()
	assert.Empty(t, repo.FreeAgentPool())

	repo.SaveSnapshot(seed.Snapshot())
	pool := repo.FreeAgentPool()

	// Everyone outside the two seeded rosters, in sorted order.
	assert.Equal(t, []string{"D1", "D2", "K1", "K2", "WR6"}, pool)
}

func TestRepository_ValuationCache(t *testing.T) {
	repo := NewRepository()
	vals := map[string]models.Valuation{
		"RB1": {PlayerID: "RB1", Week: 3, VORP: 4.2},
	}

	_, ok := repo.Valuations(3, "mock")
	assert.False(t, ok)

	repo.SaveValuations(3, "mock", vals)

	got, ok := repo.Valuations(3, "mock")
	require.True(t, ok)
	assert.Equal(t, vals, got)

	_, ok = repo.Valuations(4, "mock")
	assert.False(t, ok)
	_, ok = repo.Valuations(3, "espn")
	assert.False(t, ok)
}

func TestRepository_NewSnapshotInvalidatesCache(t *testing.T) {
	repo := NewRepository()
	repo.SaveValuations(1, "mock", map[string]models.Valuation{"RB1": {PlayerID: "RB1"}})

	repo.SaveSnapshot(seed.Snapshot())

	_, ok := repo.Valuations(1, "mock")
	assert.False(t, ok)
	require.NotNil(t, repo.Snapshot())
}
