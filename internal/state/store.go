package state

import (
	"fmt"
	"sync"
	"time"

	"gazetteer/internal/countries"
)

// Snapshot represents the latest rendered data available to the UI.
type Snapshot struct {
	Page                countries.Page
	Summary             string
	HasPage             bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // number of consecutive refresh failures
}

// IsOffline returns true when the endpoint has been unreachable for multiple
// refreshes in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot. It implements the
// controller's Renderer contract: a successful render replaces the rows
// wholesale, a failed refresh records the error but keeps the previous rows
// intact.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// RenderPage replaces the displayed rows with the given page.
func (s *Store) RenderPage(page countries.Page) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Page = countries.Page{
		Items:      cloneItems(page.Items),
		TotalCount: page.TotalCount,
	}
	s.snapshot.HasPage = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
	s.snapshot.LastUpdated = time.Now()
}

// RenderSummary replaces the entries-summary line.
func (s *Store) RenderSummary(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Summary = text
}

// RenderError records a refresh failure for diagnostics. Previously rendered
// rows and summary are left untouched.
func (s *Store) RenderError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.LastError = err
	s.snapshot.ConsecutiveFailures++
	s.snapshot.LastUpdated = time.Now()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Page.Items = cloneItems(s.snapshot.Page.Items)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneItems(items []countries.Country) []countries.Country {
	if len(items) == 0 {
		return nil
	}
	dup := make([]countries.Country, len(items))
	copy(dup, items)
	return dup
}
