package placements

import (
	"fmt"
	"sync/atomic"
)

// snapshot is an immutable view of the catalog.
type snapshot struct {
	placements []Placement
	index      map[string]*Placement
}

// Store provides lock-free reads of the placement catalog. Replace swaps the
// whole snapshot so readers never see a partial reload.
type Store struct {
	data atomic.Pointer[snapshot]
}

// NewStore creates an empty Store.
func NewStore() *Store {
	s := &Store{}
	s.data.Store(&snapshot{
		placements: make([]Placement, 0),
		index:      make(map[string]*Placement),
	})
	return s
}

// Get returns the placement with the given name or nil.
func (s *Store) Get(name string) *Placement {
	if p, ok := s.data.Load().index[name]; ok {
		cp := *p
		return &cp
	}
	return nil
}

// All returns the placements in catalog order.
func (s *Store) All() []Placement {
	data := s.data.Load()
	result := make([]Placement, len(data.placements))
	copy(result, data.placements)
	return result
}

// Len returns the number of placements.
func (s *Store) Len() int {
	return len(s.data.Load().placements)
}

// Replace installs a new catalog atomically.
func (s *Store) Replace(ps []Placement) error {
	placements := make([]Placement, len(ps))
	copy(placements, ps)

	index := make(map[string]*Placement, len(placements))
	for i := range placements {
		name := placements[i].Name
		if _, dup := index[name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		index[name] = &placements[i]
	}

	s.data.Store(&snapshot{placements: placements, index: index})
	return nil
}
