package store

import (
	"sync"

	"github.com/nijaru/yt-comments/models"
)

// Store keeps each session's current report in memory for the lifetime
// of the process. There is no durable persistence; restarting the
// service clears all reports.
type Store struct {
	mu      sync.RWMutex
	reports map[string]*models.Report
}

func New() *Store {
	return &Store{
		reports: make(map[string]*models.Report),
	}
}

// Put replaces the session's report wholesale.
func (s *Store) Put(sessionID string, report *models.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[sessionID] = report
}

func (s *Store) Get(sessionID string) (*models.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[sessionID]
	return report, ok
}

func (s *Store) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reports, sessionID)
}
