// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"sync"
	"testing"
)

func TestSequencerLastTicketWins(t *testing.T) {
	s := NewSequencer()

	first := s.Next()
	second := s.Next()

	if s.Superseded(second) {
		t.Error("expected the newest ticket not to be superseded")
	}
	if !s.Superseded(first) {
		t.Error("expected the older ticket to be superseded")
	}
}

func TestSequencerFreshTicketNotSuperseded(t *testing.T) {
	s := NewSequencer()
	if s.Superseded(s.Next()) {
		t.Error("expected a lone ticket not to be superseded")
	}
}

func TestSequencerConcurrentTickets(t *testing.T) {
	s := NewSequencer()

	const n = 100
	tickets := make([]uint64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tickets[i] = s.Next()
		}(i)
	}
	wg.Wait()

	// Tickets are unique, and exactly one of them survives as the latest.
	seen := make(map[uint64]bool, n)
	live := 0
	for _, ticket := range tickets {
		if seen[ticket] {
			t.Fatalf("duplicate ticket %d", ticket)
		}
		seen[ticket] = true
		if !s.Superseded(ticket) {
			live++
		}
	}
	if live != 1 {
		t.Errorf("expected exactly 1 live ticket, got %d", live)
	}
}
