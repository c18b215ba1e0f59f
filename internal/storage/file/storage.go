package file

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"github.com/mcoot/mockify/internal/model"
	"github.com/mcoot/mockify/internal/storage"
)

// document is the on-disk layout of the storage file
type document struct {
	Clients map[model.ClientID]map[string]string `json:"clients"`
	Stats   *model.InterviewStats                `json:"stats,omitempty"`
	Resume  *model.ResumeHistory                 `json:"resume_history,omitempty"`
}

// withClient returns a copy of d in which only clientID's namespace is fresh to modify
func (d document) withClient(clientID model.ClientID) (document, map[string]string) {
	next := d
	next.Clients = maps.Clone(d.Clients)
	ns := maps.Clone(d.Clients[clientID])
	if ns == nil {
		ns = make(map[string]string)
	}
	next.Clients[clientID] = ns
	return next, ns
}

// Storage keeps all data in a single JSON file.
// Every mutation rewrites the file; it suits a CLI install or a single-node demo backend.
type Storage struct {
	path string

	mu  sync.Mutex
	doc document
}

// New opens (or lazily creates) the storage file at path
func New(path string) (*Storage, error) {
	s := &Storage{
		path: path,
		doc:  document{Clients: make(map[model.ClientID]map[string]string)},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read storage file: %w", err)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.doc); err != nil {
			return nil, fmt.Errorf("parse storage file %s: %w", path, err)
		}
	}
	if s.doc.Clients == nil {
		s.doc.Clients = make(map[model.ClientID]map[string]string)
	}
	return s, nil
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Client storage operations

func (s *Storage) GetItem(ctx context.Context, clientID model.ClientID, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.doc.Clients[clientID][key]
	if !ok {
		return "", model.ErrItemNotFound
	}
	return value, nil
}

func (s *Storage) SetItem(ctx context.Context, clientID model.ClientID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ns := s.doc.withClient(clientID)
	ns[key] = value
	return s.commit(next)
}

func (s *Storage) RemoveItem(ctx context.Context, clientID model.ClientID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.doc.Clients[clientID][key]; !ok {
		return nil
	}
	next, ns := s.doc.withClient(clientID)
	delete(ns, key)
	if len(ns) == 0 {
		delete(next.Clients, clientID)
	}
	return s.commit(next)
}

// Stats operations

func (s *Storage) GetStats(ctx context.Context) (*model.InterviewStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc.Stats == nil {
		return nil, model.ErrStatsNotFound
	}
	c := *s.doc.Stats
	c.History = append([]model.HistoryEntry{}, s.doc.Stats.History...)
	return &c, nil
}

func (s *Storage) SaveStats(ctx context.Context, stats *model.InterviewStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *stats
	c.History = append([]model.HistoryEntry{}, stats.History...)
	next := s.doc
	next.Stats = &c
	return s.commit(next)
}

// Resume history operations

func (s *Storage) GetResumeHistory(ctx context.Context) (*model.ResumeHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc.Resume == nil {
		return nil, model.ErrResumeHistoryNotFound
	}
	return s.doc.Resume.Copy(), nil
}

func (s *Storage) SaveResumeHistory(ctx context.Context, history *model.ResumeHistory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.doc
	next.Resume = history.Copy()
	return s.commit(next)
}

// commit writes next to disk and only then makes it the in-memory state. Caller holds mu.
func (s *Storage) commit(next document) error {
	if err := s.write(next); err != nil {
		return err
	}
	s.doc = next
	return nil
}

// write stores doc via a temp file and rename
func (s *Storage) write(doc document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".mockify-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, s.path)
}
