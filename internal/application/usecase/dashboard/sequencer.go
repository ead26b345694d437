// Package dashboard contains dashboard-related use cases.
package dashboard

import "sync"

// Sequencer orders dashboard refreshes so the last issued request wins.
// Each refresh takes a ticket; a refresh whose ticket has been superseded by
// the time its queries finish must discard its result instead of overwriting
// a fresher one. Supersession is decided by issue order, not completion
// order.
type Sequencer struct {
	mu     sync.Mutex
	latest uint64
}

// NewSequencer creates a new Sequencer.
func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// Next issues the next ticket, superseding all earlier ones.
func (s *Sequencer) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest++
	return s.latest
}

// Superseded reports whether a newer ticket has been issued since seq.
func (s *Sequencer) Superseded(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return seq < s.latest
}
