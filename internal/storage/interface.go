package storage

import (
	"context"

	"github.com/mcoot/mockify/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Client storage operations (one namespace per client, localStorage semantics)
	GetItem(ctx context.Context, clientID model.ClientID, key string) (string, error)
	SetItem(ctx context.Context, clientID model.ClientID, key, value string) error
	RemoveItem(ctx context.Context, clientID model.ClientID, key string) error

	// Stats operations
	GetStats(ctx context.Context) (*model.InterviewStats, error)
	SaveStats(ctx context.Context, stats *model.InterviewStats) error

	// Resume history operations
	GetResumeHistory(ctx context.Context) (*model.ResumeHistory, error)
	SaveResumeHistory(ctx context.Context, history *model.ResumeHistory) error
}

// Local is a single client's view of client storage
type Local interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}

// Scope binds a Storage to one client namespace
func Scope(s Storage, clientID model.ClientID) Local {
	return &scoped{storage: s, clientID: clientID}
}

type scoped struct {
	storage  Storage
	clientID model.ClientID
}

func (s *scoped) GetItem(ctx context.Context, key string) (string, error) {
	return s.storage.GetItem(ctx, s.clientID, key)
}

func (s *scoped) SetItem(ctx context.Context, key, value string) error {
	return s.storage.SetItem(ctx, s.clientID, key, value)
}

func (s *scoped) RemoveItem(ctx context.Context, key string) error {
	return s.storage.RemoveItem(ctx, s.clientID, key)
}
