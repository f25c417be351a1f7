package lineup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kiratsb/vorpbot/internal/models"
)

func TestTeamScore_SumsFixedStarters(t *testing.T) {
	items := []models.RosterItem{
		item("QB1", "QB", models.SlotQB, 5.0),
		item("RB1", "RB", models.SlotRB, 3.25),
		item("WR1", "WR", models.SlotWR, 2.0),
	}

	assert.Equal(t, 10.25, TeamScore(items, models.FlexPositions))
}

func TestTeamScore_NegativeVORPContributesNothing(t *testing.T) {
	items := []models.RosterItem{
		item("QB1", "QB", models.SlotQB, 5.0),
		item("RB1", "RB", models.SlotRB, -4.0),
	}

	assert.Equal(t, 5.0, TeamScore(items, models.FlexPositions))
}

func TestTeamScore_SingleBestFlexCounts(t *testing.T) {
	items := []models.RosterItem{
		item("RB1", "RB", models.SlotRB, 3.0),
		item("WR1", "WR", models.SlotFlex, 2.0),
		item("WR2", "WR", models.SlotFlex, 4.0),
	}

	// Only the best uncounted FLEX candidate is added.
	assert.Equal(t, 7.0, TeamScore(items, models.FlexPositions))
}

func TestTeamScore_FlexSkipsAlreadyCountedPlayer(t *testing.T) {
	items := []models.RosterItem{
		item("RB1", "RB", models.SlotRB, 3.0),
		item("RB1", "RB", models.SlotFlex, 3.0),
		item("WR1", "WR", models.SlotFlex, 1.0),
	}

	assert.Equal(t, 4.0, TeamScore(items, models.FlexPositions))
}

func TestTeamScore_IgnoresBenchIRAndIneligibleFlex(t *testing.T) {
	items := []models.RosterItem{
		item("QB1", "QB", models.SlotQB, 5.0),
		item("RB9", "RB", models.SlotBN, 9.0),
		item("WR9", "WR", models.SlotIR, 9.0),
		item("QB2", "QB", models.SlotFlex, 9.0), // QB is not flex-eligible
	}

	assert.Equal(t, 5.0, TeamScore(items, models.FlexPositions))
}

func TestTeamScore_MissingValuationScoresZero(t *testing.T) {
	items := []models.RosterItem{
		item("QB1", "QB", models.SlotQB, 5.0),
		unvalued("RB1", "RB", models.SlotRB),
	}

	assert.Equal(t, 5.0, TeamScore(items, models.FlexPositions))
}
