package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/kiratsb/vorpbot/internal/models"
)

// Repository holds the latest league snapshot and a short-lived
// valuation cache keyed by (week, source). Nothing is persisted;
// valuations are recomputed on demand and the cache only spares
// repeated computation within one snapshot's lifetime.
type Repository struct {
	mu         sync.RWMutex
	snapshot   *models.LeagueSnapshot
	valuations map[string]map[string]models.Valuation
}

func NewRepository() *Repository {
	return &Repository{
		valuations: make(map[string]map[string]models.Valuation),
	}
}

func (r *Repository) SaveSnapshot(snapshot *models.LeagueSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = snapshot
	// Cached valuations were derived from the previous snapshot.
	r.valuations = make(map[string]map[string]models.Valuation)
}

func (r *Repository) Snapshot() *models.LeagueSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

func (r *Repository) SaveValuations(week int, source string, vals map[string]models.Valuation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.valuations[valuationKey(week, source)] = vals
}

func (r *Repository) Valuations(week int, source string) (map[string]models.Valuation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	vals, ok := r.valuations[valuationKey(week, source)]
	return vals, ok
}

// FreeAgentPool returns ids of players in the directory not rostered
// by any team, sorted for reproducible recommendation order.
func (r *Repository) FreeAgentPool() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.snapshot == nil {
		return nil
	}

	rostered := make(map[string]bool)
	for _, assignments := range r.snapshot.Rosters {
		for _, a := range assignments {
			rostered[a.PlayerID] = true
		}
	}

	var pool []string
	for pid := range r.snapshot.Players {
		if !rostered[pid] {
			pool = append(pool, pid)
		}
	}
	sort.Strings(pool)
	return pool
}

func valuationKey(week int, source string) string {
	return fmt.Sprintf("%d:%s", week, source)
}
