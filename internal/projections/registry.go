package projections

import (
	"errors"
	"fmt"
	"sync"
)

// ErrSourceNotFound is returned when a lookup references an unknown
// source identifier. It is the only caller-visible failure on the
// computation path.
var ErrSourceNotFound = errors.New("projection source not found")

// Registry maps source identifiers to implementations. It is passed
// explicitly into the service layer rather than held as package state.
type Registry struct {
	mu      sync.RWMutex
	sources map[string]Source
	order   []string
}

func NewRegistry(sources ...Source) *Registry {
	r := &Registry{sources: make(map[string]Source)}
	for _, s := range sources {
		r.Register(s)
	}
	return r
}

func (r *Registry) Register(s Source) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sources[s.ID()]; !ok {
		r.order = append(r.order, s.ID())
	}
	r.sources[s.ID()] = s
}

func (r *Registry) Get(id string) (Source, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sources[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, id)
	}
	return s, nil
}

// List returns registered sources in registration order.
func (r *Registry) List() []SourceInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	infos := make([]SourceInfo, 0, len(r.order))
	for _, id := range r.order {
		s := r.sources[id]
		infos = append(infos, SourceInfo{ID: s.ID(), Name: s.Name(), Description: s.Description()})
	}
	return infos
}
