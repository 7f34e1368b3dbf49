// Package viewstate holds the presentation layer's ephemeral expand/collapse
// state, keyed by node ID.
//
// The set is owned and mutated exclusively by the presentation surface; the
// engine pipeline never reads or clears it, which is what lets it survive
// recomputations. It is safe for concurrent use.
package viewstate

import "sync"

// Set tracks which node IDs are currently expanded.
type Set struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

// New creates an empty expand/collapse set.
func New() *Set {
	return &Set{ids: make(map[string]struct{})}
}

// Expand marks a node as expanded.
func (s *Set) Expand(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[id] = struct{}{}
}

// Collapse marks a node as collapsed.
func (s *Set) Collapse(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ids, id)
}

// Toggle flips a node's state and returns true if it is now expanded.
func (s *Set) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// Expanded reports whether a node is expanded.
func (s *Set) Expanded(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of expanded nodes.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// Clear collapses everything. Only the presentation surface calls this; the
// engine pipeline never does.
func (s *Set) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = make(map[string]struct{})
}
