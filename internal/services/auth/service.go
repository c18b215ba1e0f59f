package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mcoot/mockify/internal/dependencies/clock"
	"github.com/mcoot/mockify/internal/model"
	"github.com/mcoot/mockify/internal/storage"
)

// Service fakes authentication by writing a marker into client storage.
// There is no credential check; presence of the marker is the whole session.
type Service struct {
	storage storage.Local
	clock   clock.Clock
}

// New creates an auth service over one client's storage
func New(storage storage.Local, clock clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
	}
}

// Login records a session for username. The password is ignored and login always succeeds
// unless the storage write fails.
func (s *Service) Login(ctx context.Context, username, password string) (bool, error) {
	_ = password
	if username == "" {
		username = model.DefaultUsername
	}

	session := model.Session{
		Username:   username,
		LoggedInAt: s.clock.Now(),
	}
	data, err := json.Marshal(session)
	if err != nil {
		return false, fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.storage.SetItem(ctx, model.AuthKey, string(data)); err != nil {
		return false, fmt.Errorf("failed to store session: %w", err)
	}
	return true, nil
}

// Logout removes the session marker. Navigating back to the index page is the caller's job.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.storage.RemoveItem(ctx, model.AuthKey); err != nil {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}

// IsLoggedIn reports whether the marker key is present, whatever its content
func (s *Service) IsLoggedIn(ctx context.Context) (bool, error) {
	_, err := s.storage.GetItem(ctx, model.AuthKey)
	if errors.Is(err, model.ErrItemNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CurrentUser decodes the stored session, returning nil when there is none
func (s *Service) CurrentUser(ctx context.Context) (*model.Session, error) {
	raw, err := s.storage.GetItem(ctx, model.AuthKey)
	if errors.Is(err, model.ErrItemNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrCorruptSession, err)
	}
	return &session, nil
}
