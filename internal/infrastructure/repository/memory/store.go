package memory

import (
	"sync"
	"time"

	"github.com/riskibarqy/hockey-league/internal/domain/match"
	"github.com/riskibarqy/hockey-league/internal/domain/playerstats"
	"github.com/riskibarqy/hockey-league/internal/domain/scoreevent"
)

type scoreEventRecord struct {
	event     scoreevent.ScoreEvent
	deletedAt *time.Time
}

type statsRecord struct {
	stats     playerstats.EventStats
	deletedAt *time.Time
}

type state struct {
	matches map[string]match.Match
	events  map[string]scoreEventRecord
	stats   map[string]statsRecord
}

func (s state) clone() state {
	out := state{
		matches: make(map[string]match.Match, len(s.matches)),
		events:  make(map[string]scoreEventRecord, len(s.events)),
		stats:   make(map[string]statsRecord, len(s.stats)),
	}
	for k, v := range s.matches {
		out.matches[k] = v
	}
	for k, v := range s.events {
		out.events[k] = v
	}
	for k, v := range s.stats {
		out.stats[k] = v
	}
	return out
}

// Store is the shared state behind the in-memory repositories. All writes are
// serialized by one lock, so a transaction sees no interleaving.
type Store struct {
	mu    sync.RWMutex
	state state
	now   func() time.Time
}

func NewStore(matches []match.Match) *Store {
	items := make(map[string]match.Match, len(matches))
	for _, m := range matches {
		m.Status = match.NormalizeStatus(m.Status)
		items[m.ID] = m
	}

	return &Store{
		state: state{
			matches: items,
			events:  make(map[string]scoreEventRecord),
			stats:   make(map[string]statsRecord),
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

// PutMatch inserts or replaces a match.
func (s *Store) PutMatch(m match.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.Status = match.NormalizeStatus(m.Status)
	s.state.matches[m.ID] = m
}

// Match returns the stored match row.
func (s *Store) Match(matchID string) (match.Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.state.matches[matchID]
	return m, ok
}
