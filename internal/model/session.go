package model

import "time"

// AuthKey is the client storage key holding the session marker
const AuthKey = "mockify_auth"

// DefaultUsername is used when login is attempted with an empty username
const DefaultUsername = "demo_user"

// ClientID identifies one client's storage namespace (a browser or a CLI install)
type ClientID string

// Session is the unsigned "logged in" marker kept in client storage.
// Anything able to write client storage can forge one.
type Session struct {
	Username   string    `json:"username"`
	LoggedInAt time.Time `json:"loggedInAt"`
}
