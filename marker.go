package postcap

import "sync"

// MarkerSet tracks inputs already processed within one capture pass. It is
// passed explicitly by the caller rather than kept as ambient state, so
// concurrent capture pipelines each own their marking. MarkerSet is safe
// for concurrent use.
type MarkerSet struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewMarkerSet creates an empty MarkerSet.
func NewMarkerSet() *MarkerSet {
	return &MarkerSet{seen: make(map[string]struct{})}
}

// Mark records key as processed.
// Returns false if the key was already marked.
func (s *MarkerSet) Mark(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	return true
}

// Seen returns true if the key has been marked.
func (s *MarkerSet) Seen(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.seen[key]
	return ok
}

// Len returns the number of marked keys.
func (s *MarkerSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}
