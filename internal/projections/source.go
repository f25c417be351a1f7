package projections

import "github.com/kiratsb/vorpbot/internal/models"

// Source produces weekly fantasy-point projections per player. Sources
// must be deterministic per (player, week, source id): the valuation
// engine relies on identical inputs yielding identical outputs.
type Source interface {
	ID() string
	Name() string
	Description() string
	WeeklyPoints(players map[string]models.Player, week int) map[string]float64
}

// SourceInfo describes a registered source for listing.
type SourceInfo struct {
	ID          string
	Name        string
	Description string
}
