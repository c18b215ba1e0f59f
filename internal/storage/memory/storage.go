package memory

import (
	"context"
	"sync"

	"github.com/mcoot/mockify/internal/model"
	"github.com/mcoot/mockify/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	items  map[model.ClientID]map[string]string
	stats  *model.InterviewStats
	resume *model.ResumeHistory
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		items: make(map[model.ClientID]map[string]string),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Client storage operations

func (s *Storage) GetItem(ctx context.Context, clientID model.ClientID, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.items[clientID][key]
	if !ok {
		return "", model.ErrItemNotFound
	}
	return value, nil
}

func (s *Storage) SetItem(ctx context.Context, clientID model.ClientID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ns, ok := s.items[clientID]
	if !ok {
		ns = make(map[string]string)
		s.items[clientID] = ns
	}
	ns[key] = value
	return nil
}

func (s *Storage) RemoveItem(ctx context.Context, clientID model.ClientID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ns, ok := s.items[clientID]
	if !ok {
		return nil
	}
	delete(ns, key)
	if len(ns) == 0 {
		delete(s.items, clientID)
	}
	return nil
}

// Stats operations

func (s *Storage) GetStats(ctx context.Context) (*model.InterviewStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stats == nil {
		return nil, model.ErrStatsNotFound
	}
	return copyStats(s.stats), nil
}

func (s *Storage) SaveStats(ctx context.Context, stats *model.InterviewStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = copyStats(stats)
	return nil
}

// Resume history operations

func (s *Storage) GetResumeHistory(ctx context.Context) (*model.ResumeHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.resume == nil {
		return nil, model.ErrResumeHistoryNotFound
	}
	return s.resume.Copy(), nil
}

func (s *Storage) SaveResumeHistory(ctx context.Context, history *model.ResumeHistory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resume = history.Copy()
	return nil
}

func copyStats(stats *model.InterviewStats) *model.InterviewStats {
	c := *stats
	c.History = append([]model.HistoryEntry{}, stats.History...)
	return &c
}
