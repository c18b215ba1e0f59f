package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/mockify/internal/dependencies/clock"
	"github.com/mcoot/mockify/internal/model"
	"github.com/mcoot/mockify/internal/storage"
	"github.com/mcoot/mockify/internal/storage/memory"
	"github.com/mcoot/mockify/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	local   storage.Local
	clock   *clock.Fixed
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.local = storage.Scope(s.storage, "browser-1")
	s.clock = clock.NewFixed(testutil.ReferenceTime)
	s.service = New(s.local, s.clock)
	s.ctx = context.Background()
}

// Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	ok, err := s.service.Login(s.ctx, "alice", "hunter2")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *ServiceSuite) TestLoginWritesSessionRecord() {
	_, _ = s.service.Login(s.ctx, "alice", "")

	raw, err := s.local.GetItem(s.ctx, model.AuthKey)
	s.Require().NoError(err)
	s.JSONEq(`{"username":"alice","loggedInAt":"2024-01-01T12:00:00Z"}`, raw)
}

func (s *ServiceSuite) TestLoginEmptyUsernameUsesDemoUser() {
	_, _ = s.service.Login(s.ctx, "", "")

	user, err := s.service.CurrentUser(s.ctx)
	s.Require().NoError(err)
	s.Equal("demo_user", user.Username)
}

func (s *ServiceSuite) TestLoginOverwritesPreviousSession() {
	_, _ = s.service.Login(s.ctx, "alice", "")
	s.clock.Advance(time.Hour)
	_, _ = s.service.Login(s.ctx, "bob", "")

	user, err := s.service.CurrentUser(s.ctx)
	s.Require().NoError(err)
	s.Equal("bob", user.Username)
	s.Equal(testutil.ReferenceTime.Add(time.Hour), user.LoggedInAt)
}

// IsLoggedIn tests

func (s *ServiceSuite) TestIsLoggedInFalseInitially() {
	loggedIn, err := s.service.IsLoggedIn(s.ctx)
	s.Require().NoError(err)
	s.False(loggedIn)
}

func (s *ServiceSuite) TestIsLoggedInAfterLogin() {
	_, _ = s.service.Login(s.ctx, "alice", "")

	loggedIn, err := s.service.IsLoggedIn(s.ctx)
	s.Require().NoError(err)
	s.True(loggedIn)
}

func (s *ServiceSuite) TestIsLoggedInTrueForAnyValue() {
	s.Require().NoError(s.local.SetItem(s.ctx, model.AuthKey, "garbage"))

	loggedIn, err := s.service.IsLoggedIn(s.ctx)
	s.Require().NoError(err)
	s.True(loggedIn)
}

func (s *ServiceSuite) TestSessionsAreScopedPerClient() {
	_, _ = s.service.Login(s.ctx, "alice", "")

	other := New(storage.Scope(s.storage, "browser-2"), s.clock)
	loggedIn, err := other.IsLoggedIn(s.ctx)
	s.Require().NoError(err)
	s.False(loggedIn)
}

// Logout tests

func (s *ServiceSuite) TestLogoutRemovesKey() {
	_, _ = s.service.Login(s.ctx, "alice", "")

	s.Require().NoError(s.service.Logout(s.ctx))

	_, err := s.local.GetItem(s.ctx, model.AuthKey)
	s.ErrorIs(err, model.ErrItemNotFound)
	loggedIn, _ := s.service.IsLoggedIn(s.ctx)
	s.False(loggedIn)
}

func (s *ServiceSuite) TestLogoutWhenLoggedOutIsNoop() {
	s.NoError(s.service.Logout(s.ctx))
}

// CurrentUser tests

func (s *ServiceSuite) TestCurrentUserNilWhenAbsent() {
	user, err := s.service.CurrentUser(s.ctx)
	s.Require().NoError(err)
	s.Nil(user)
}

func (s *ServiceSuite) TestCurrentUserCorruptRecord() {
	s.Require().NoError(s.local.SetItem(s.ctx, model.AuthKey, "{not json"))

	user, err := s.service.CurrentUser(s.ctx)
	s.ErrorIs(err, model.ErrCorruptSession)
	s.Nil(user)
}

func (s *ServiceSuite) TestCurrentUserAcceptsForgedRecord() {
	s.Require().NoError(s.local.SetItem(s.ctx, model.AuthKey, `{"username":"admin","loggedInAt":"2020-05-05T00:00:00Z"}`))

	user, err := s.service.CurrentUser(s.ctx)
	s.Require().NoError(err)
	s.Equal("admin", user.Username)
}
