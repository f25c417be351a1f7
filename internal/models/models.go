package models

import "time"

// Roster slot labels. BN and IR never count as starters.
const (
	SlotQB   = "QB"
	SlotRB   = "RB"
	SlotWR   = "WR"
	SlotTE   = "TE"
	SlotFlex = "FLEX"
	SlotBN   = "BN"
	SlotIR   = "IR"
)

// FlexPositions are the positions eligible for the FLEX slot.
var FlexPositions = []string{"RB", "WR", "TE"}

// Player is immutable reference data for one league sync.
type Player struct {
	ID      string
	Name    string
	Pos     string // QB/RB/WR/TE/K/DST
	Team    string // NFL team abbreviation, "FA" if unrostered
	ByeWeek *int
}

// RosterAssignment places a player in a slot on a fantasy team.
type RosterAssignment struct {
	TeamID   string
	PlayerID string
	Slot     string
}

type Team struct {
	ID      string
	Name    string
	Manager string
}

// LeagueSettings holds roster composition rules, e.g.
// {"QB":1, "RB":2, "WR":2, "TE":1, "FLEX":1, "BN":6}.
type LeagueSettings struct {
	RosterRules map[string]int
	FAABBudget  int
}

// SlotCount looks up a rule with a zero default for absent slots.
func (s LeagueSettings) SlotCount(slot string) int {
	return s.RosterRules[slot]
}

// Valuation is a derived per-(player, week) record. VORP is projected
// points minus the positional replacement level. Valuations computed
// under different settings or team counts must not be compared.
type Valuation struct {
	PlayerID    string
	Week        int
	VORP        float64
	RankPos     int
	RankOverall int
}

// RosterItem is one entry of a roster view handed to the lineup and
// scoring functions. Valuation is nil when the player has no projection.
type RosterItem struct {
	Player    Player
	Slot      string
	Valuation *Valuation
}

// LineupEntry is a starter chosen by the optimizer.
type LineupEntry struct {
	Slot      string
	Player    Player
	Valuation *Valuation
}

// Lineup is the optimizer's output: chosen starters, leftover bench,
// and the rounded sum of starter VORP.
type Lineup struct {
	Starters  []LineupEntry
	Bench     []RosterItem
	TotalVORP float64
}

// FreeAgentSuggestion ranks a waiver pickup by the VORP it adds over
// the roster's weakest comparable starter.
type FreeAgentSuggestion struct {
	PlayerID      string
	DeltaValue    float64
	SuggestedFAAB int
	Rationale     string
}

// TradeOffer is a one-for-one swap proposal. DeltaThem is a fixed-cost
// approximation, not a re-simulation of the opponent's lineup.
type TradeOffer struct {
	OpponentTeamID string
	Give           []string
	Get            []string
	DeltaYou       float64
	DeltaThem      float64
	Rationale      string
}

// LeagueSnapshot is one sync of the external league state.
type LeagueSnapshot struct {
	Players     map[string]Player
	Teams       map[string]Team
	Rosters     map[string][]RosterAssignment
	Settings    LeagueSettings
	CurrentWeek int
	LastUpdated time.Time
}

// IsStarterSlot reports whether a slot counts toward the team score.
func IsStarterSlot(slot string) bool {
	switch slot {
	case SlotQB, SlotRB, SlotWR, SlotTE, SlotFlex:
		return true
	}
	return false
}

// IsFixedStarterSlot excludes FLEX, which has its own eligibility rule.
func IsFixedStarterSlot(slot string) bool {
	switch slot {
	case SlotQB, SlotRB, SlotWR, SlotTE:
		return true
	}
	return false
}

// IsFlexEligible reports whether a position can fill the FLEX slot.
func IsFlexEligible(pos string) bool {
	for _, p := range FlexPositions {
		if pos == p {
			return true
		}
	}
	return false
}
