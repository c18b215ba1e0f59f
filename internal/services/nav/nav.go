// Package nav derives navbar and login modal state from login status.
package nav

// Pages the client navigates between
const (
	IndexPage     = "/index.html"
	InterviewPage = "/interview.html"
	DashboardPage = "/dashboard.html"
)

// Action is what the login button does when clicked
type Action string

const (
	ActionLogout    Action = "logout"
	ActionOpenLogin Action = "open-login"
)

// Navbar is the state of the loginBtn and nav-dashboard elements
type Navbar struct {
	LoginButtonText string
	LoginAction     Action
	DashboardHidden bool
}

// NavbarFor returns the navbar state for the given login status
func NavbarFor(loggedIn bool) Navbar {
	if loggedIn {
		return Navbar{
			LoginButtonText: "Logout",
			LoginAction:     ActionLogout,
			DashboardHidden: false,
		}
	}
	return Navbar{
		LoginButtonText: "Log In",
		LoginAction:     ActionOpenLogin,
		DashboardHidden: true,
	}
}

// Modal is the login modal's visibility
type Modal struct {
	Open bool
}

// OpenModal returns an open modal
func OpenModal() Modal { return Modal{Open: true} }

// CloseModal returns a closed modal
func CloseModal() Modal { return Modal{Open: false} }

// Classes returns "flex" when open and "hidden" when closed
func (m Modal) Classes() string {
	if m.Open {
		return "flex"
	}
	return "hidden"
}
